package dto

// MediaUploadDTO 上传结果，web/thumb 为服务端压缩出的变体
type MediaUploadDTO struct {
	URL      string `json:"url"`
	WebURL   string `json:"webUrl"`
	ThumbURL string `json:"thumbUrl"`
	Mime     string `json:"mime"`
	Size     int64  `json:"size"`
}
