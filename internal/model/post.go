package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 博客文章，content 为 Markdown 原文，公开详情接口渲染为 HTML
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Excerpt   string             `bson:"excerpt"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Category  string             `bson:"category"`
	Slug      string             `bson:"slug"`
	Image     string             `bson:"image"`
	Published bool               `bson:"published"`
	ReadTime  int                `bson:"read_time"`
	Tags      []string           `bson:"tags"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
