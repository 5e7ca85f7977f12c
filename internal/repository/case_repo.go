package repository

import (
	"Mizan/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CaseFilter 案例列表查询条件
type CaseFilter struct {
	Search   string
	Type     string
	Status   string
	Featured *bool
	Page     int
	Limit    int
}

type CaseRepo interface {
	Create(ctx context.Context, c *model.Case) (*model.Case, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]*model.Case, error)
	Count(ctx context.Context, filter CaseFilter) (int64, error)
	Update(ctx context.Context, c *model.Case) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type caseRepoImpl struct {
	col *mongo.Collection
}

func NewCaseRepo(db *mongo.Database) CaseRepo {
	return &caseRepoImpl{
		col: db.Collection("cases"),
	}
}

func (s *caseRepoImpl) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	res, err := s.col.InsertOne(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "insert case")
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (s *caseRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Case, error) {
	var c model.Case
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find case")
	}
	return &c, nil
}

func (s *caseRepoImpl) filterQuery(filter CaseFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"client": regex},
		}
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	return query
}

func (s *caseRepoImpl) List(ctx context.Context, filter CaseFilter) ([]*model.Case, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "year", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := s.col.Find(ctx, s.filterQuery(filter), findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "list cases")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var cases []*model.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, errors.Wrap(err, "decode cases")
	}
	return cases, nil
}

func (s *caseRepoImpl) Count(ctx context.Context, filter CaseFilter) (int64, error) {
	count, err := s.col.CountDocuments(ctx, s.filterQuery(filter))
	return count, errors.Wrap(err, "count cases")
}

func (s *caseRepoImpl) Update(ctx context.Context, c *model.Case) error {
	c.UpdatedAt = time.Now()
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return errors.Wrap(err, "update case")
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *caseRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete case")
	}
	return res.DeletedCount > 0, nil
}
