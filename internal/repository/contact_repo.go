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

type ContactRepo interface {
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type contactRepoImpl struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) ContactRepo {
	return &contactRepoImpl{
		col: db.Collection("contact_messages"),
	}
}

func (s *contactRepoImpl) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	res, err := s.col.InsertOne(ctx, msg)
	if err != nil {
		return nil, errors.Wrap(err, "insert contact message")
	}
	msg.ID = res.InsertedID.(primitive.ObjectID)
	return msg, nil
}

func (s *contactRepoImpl) List(ctx context.Context, page, limit int) ([]*model.ContactMessage, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "count contact messages")
	}

	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(int64((page-1)*limit)).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list contact messages")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var messages []*model.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, errors.Wrap(err, "decode contact messages")
	}
	return messages, total, nil
}

func (s *contactRepoImpl) MarkRead(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, errors.Wrap(err, "mark contact message read")
	}
	return res.MatchedCount > 0, nil
}
