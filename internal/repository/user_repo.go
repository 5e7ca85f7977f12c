package repository

import (
	"Mizan/internal/model"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection("users"),
	}
}

func (s *userRepoImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "insert user")
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetByIdentifier 按用户名或邮箱查找
func (s *userRepoImpl) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": identifier},
			bson.M{"email": identifier},
		},
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (s *userRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user by id")
	}
	return &user, nil
}

func (s *userRepoImpl) List(ctx context.Context) ([]*model.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetProjection(bson.M{"password": 0}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}
