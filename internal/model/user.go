package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 后台用户，Password 为 bcrypt 哈希，任何接口都不得返回
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
