package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# عنوان\n\nفقرة **مهمة** مع [رابط](https://example.com)")
	require.Contains(t, html, "<h1")
	require.Contains(t, html, "<strong>")
	require.Contains(t, html, `href="https://example.com"`)
}

func TestRenderMarkdown_StripsScript(t *testing.T) {
	html := RenderMarkdown("نص عادي\n\n<script>alert('x')</script>")
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "نص عادي")
}

func TestSanitizeComment(t *testing.T) {
	require.Equal(t, "تعليق نظيف", SanitizeComment("تعليق نظيف"))
	require.NotContains(t, SanitizeComment(`<img src=x onerror=alert(1)>تعليق`), "<img")
	require.Equal(t, "تعليق", SanitizeComment("<b>تعليق</b>"))
}
