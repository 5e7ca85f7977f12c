package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember 团队成员（律师/顾问）
type TeamMember struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Position       string             `bson:"position"`
	Bio            string             `bson:"bio"`
	Image          string             `bson:"image,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Specialization []string           `bson:"specialization"`
	Experience     string             `bson:"experience,omitempty"`
	Education      []string           `bson:"education"`
	Languages      []string           `bson:"languages"`
	Order          int                `bson:"order"` // 公开页排序键，升序
	Featured       bool               `bson:"featured"`
	Active         bool               `bson:"active"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}
