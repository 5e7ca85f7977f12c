package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 案件类型与状态取值与前端展示一致，直接存阿拉伯语枚举值
var (
	CaseTypes    = []string{"تجاري", "مدني", "تحكيم", "جنائي", "أسرة", "عمل"}
	CaseStatuses = []string{"مكتملة", "جارية", "ملغاة"}
)

const CaseStatusDefault = "مكتملة"

// Case 律所案例（时间线展示）
type Case struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Year        string             `bson:"year"`
	Type        string             `bson:"type"`
	Result      string             `bson:"result"`
	Status      string             `bson:"status"`
	Client      string             `bson:"client"`
	Value       string             `bson:"value,omitempty"`
	Duration    string             `bson:"duration,omitempty"`
	Tags        []string           `bson:"tags"`
	Featured    bool               `bson:"featured"`
	Image       string             `bson:"image,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ValidCaseType 校验案件类型枚举
func ValidCaseType(t string) bool {
	for _, v := range CaseTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidCaseStatus 校验案件状态枚举
func ValidCaseStatus(s string) bool {
	for _, v := range CaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}
