package util

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	// postPolicy 文章正文允许常规富文本
	postPolicy = bluemonday.UGCPolicy()
	// commentPolicy 评论只留纯文本
	commentPolicy = bluemonday.StrictPolicy()
)

func init() {
	postPolicy.AllowImages()
	postPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	postPolicy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown 将文章 Markdown 渲染为净化后的 HTML
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return postPolicy.Sanitize(source) // 渲染失败时退回原文净化
	}
	return string(postPolicy.SanitizeBytes(buf.Bytes()))
}

// SanitizeComment 评论内容净化，剥掉所有标签
func SanitizeComment(content string) string {
	return commentPolicy.Sanitize(content)
}
