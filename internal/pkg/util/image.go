package util

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ImageVariant 压缩出的图片变体
type ImageVariant struct {
	Reader *bytes.Reader
	Size   int64
}

const (
	// WebImageWidth 正文展示宽度上限
	WebImageWidth = 1600
	// ThumbImageWidth 列表缩略图宽度
	ThumbImageWidth = 400

	jpegQuality = 82
)

// MakeImageVariants 从原图生成 web/thumb 两个 JPEG 变体。
// 只缩不放：原图比目标尺寸小时按原尺寸重新编码。
func MakeImageVariants(r io.Reader) (web, thumb *ImageVariant, err error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("decode image: %w", err)
	}

	var webImg image.Image = img
	if img.Bounds().Dx() > WebImageWidth {
		webImg = imaging.Resize(img, WebImageWidth, 0, imaging.Lanczos)
	}
	var thumbImg image.Image = img
	if img.Bounds().Dx() > ThumbImageWidth {
		thumbImg = imaging.Resize(img, ThumbImageWidth, 0, imaging.Lanczos)
	}

	web, err = encodeJPEG(webImg)
	if err != nil {
		return nil, nil, err
	}
	thumb, err = encodeJPEG(thumbImg)
	if err != nil {
		return nil, nil, err
	}
	return web, thumb, nil
}

func encodeJPEG(img image.Image) (*ImageVariant, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return &ImageVariant{
		Reader: bytes.NewReader(buf.Bytes()),
		Size:   int64(buf.Len()),
	}, nil
}
