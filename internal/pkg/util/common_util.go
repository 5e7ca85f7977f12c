package util

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail 校验邮箱格式
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var slugInvalid = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slugify 生成 URL slug，保留 Unicode 字母（阿拉伯语标题直接可用）
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GetSafeContentType 通过文件头嗅探真实 MIME 类型，不信任客户端声明
func GetSafeContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return "", fmt.Errorf("failed to read file header: %w", err)
	}

	if _, err = file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// EstimateReadTime 按阿拉伯语约每分钟 180 词估算阅读时长（分钟），至少 1
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / 180
	if minutes < 1 {
		return 1
	}
	return minutes
}
