package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/minio"
	"Mizan/internal/pkg/response"
	"Mizan/internal/pkg/util"
	"Mizan/internal/service"
	"context"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 后台上传图片。
// MIME 按文件头嗅探，只收图片；原图之外再压出 web/thumb 两个 JPEG 变体。
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	web, thumb, err := util.MakeImageVariants(reader)
	if err != nil {
		log.WarnContext(c.Request.Context(), "image variants failed", "filename", file.Filename, "err", err)
		response.Error(c, service.ErrFileNotSupported)
		return
	}
	if _, err := reader.Seek(0, 0); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	prefix := time.Now().Format("2006/01/02/") + uuid.NewString()
	objectName := prefix + strings.ToLower(path.Ext(file.Filename))

	ctx := c.Request.Context()
	fileKey, err := minio.UploadFile(ctx, objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	webKey, err := minio.UploadFile(ctx, prefix+"_web.jpg", web.Reader, web.Size, "image/jpeg")
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		cleanupObjects(ctx, fileKey)
		response.Error(c, service.UnExpectedError)
		return
	}
	thumbKey, err := minio.UploadFile(ctx, prefix+"_thumb.jpg", thumb.Reader, thumb.Size, "image/jpeg")
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		cleanupObjects(ctx, fileKey, webKey)
		response.Error(c, service.UnExpectedError)
		return
	}

	log.InfoContext(ctx, "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, &dto.MediaUploadDTO{
		URL:      minio.GetPublicURL(fileKey),
		WebURL:   minio.GetPublicURL(webKey),
		ThumbURL: minio.GetPublicURL(thumbKey),
		Mime:     contentType,
		Size:     file.Size,
	})
}

// Delete 删除已上传的原图对象，并顺带清理两个 JPEG 变体
func (s *MediaHandler) Delete(c *gin.Context) {
	key := c.Query("key")
	if key == "" || strings.Contains(key, "..") {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ctx := c.Request.Context()
	if err := minio.DeleteFile(ctx, key); err != nil {
		log.ErrorContext(ctx, "MinIO delete failed", "key", key, "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	prefix := strings.TrimSuffix(key, path.Ext(key))
	cleanupObjects(ctx, prefix+"_web.jpg", prefix+"_thumb.jpg")

	log.InfoContext(ctx, "media delete success", "fileKey", key)
	response.Success(c, nil)
}

// cleanupObjects 尽力删除，失败只记日志
func cleanupObjects(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := minio.DeleteFile(ctx, key); err != nil {
			log.WarnContext(ctx, "object cleanup failed", "key", key, "err", err)
		}
	}
}
