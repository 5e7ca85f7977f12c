package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 博客评论
// status 为唯一权威审核状态（0 待审 1 通过 2 拒绝），
// 对外的 approved 布尔值只在 DTO 层派生，存储层不落库。
type Comment struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	PostID       primitive.ObjectID  `bson:"post_id"`
	Name         string              `bson:"name"`
	Email        string              `bson:"email"`
	Content      string              `bson:"content"`
	Status       int8                `bson:"status"`
	IsAdminReply bool                `bson:"is_admin_reply"`
	ParentID     *primitive.ObjectID `bson:"parent_id,omitempty"` // nil 表示根评论
	Likes        []string            `bson:"likes"`
	LikesCount   int                 `bson:"likes_count"`
	CreatedAt    time.Time           `bson:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at"`
}

// IsRoot 是否根评论
func (s *Comment) IsRoot() bool {
	return s.ParentID == nil
}

const (
	StatusLabelPending  = "pending"
	StatusLabelApproved = "approved"
	StatusLabelRejected = "rejected"
)

// StatusLabel int8 状态转对外字符串
func StatusLabel(status int8) string {
	switch status {
	case 1:
		return StatusLabelApproved
	case 2:
		return StatusLabelRejected
	default:
		return StatusLabelPending
	}
}

// ParseStatusLabel 对外字符串转内部状态
func ParseStatusLabel(label string) (int8, bool) {
	switch label {
	case StatusLabelPending:
		return 0, true
	case StatusLabelApproved:
		return 1, true
	case StatusLabelRejected:
		return 2, true
	default:
		return 0, false
	}
}
