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

// TeamFilter 团队成员查询条件
type TeamFilter struct {
	Search         string
	Specialization string
	Active         *bool
	Page           int
	Limit          int
}

type TeamRepo interface {
	Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.TeamMember, error)
	List(ctx context.Context, filter TeamFilter) ([]*model.TeamMember, error)
	Count(ctx context.Context, filter TeamFilter) (int64, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type teamRepoImpl struct {
	col *mongo.Collection
}

func NewTeamRepo(db *mongo.Database) TeamRepo {
	return &teamRepoImpl{
		col: db.Collection("team_members"),
	}
}

func (s *teamRepoImpl) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	res, err := s.col.InsertOne(ctx, member)
	if err != nil {
		return nil, errors.Wrap(err, "insert team member")
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return member, nil
}

func (s *teamRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.TeamMember, error) {
	var member model.TeamMember
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find team member")
	}
	return &member, nil
}

func (s *teamRepoImpl) filterQuery(filter TeamFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"position": regex},
			bson.M{"bio": regex},
		}
	}
	if filter.Specialization != "" {
		query["specialization"] = bson.M{"$in": bson.A{filter.Specialization}}
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}
	return query
}

func (s *teamRepoImpl) List(ctx context.Context, filter TeamFilter) ([]*model.TeamMember, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := s.col.Find(ctx, s.filterQuery(filter), findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "list team members")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var members []*model.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, errors.Wrap(err, "decode team members")
	}
	return members, nil
}

func (s *teamRepoImpl) Count(ctx context.Context, filter TeamFilter) (int64, error) {
	count, err := s.col.CountDocuments(ctx, s.filterQuery(filter))
	return count, errors.Wrap(err, "count team members")
}

func (s *teamRepoImpl) Update(ctx context.Context, member *model.TeamMember) error {
	member.UpdatedAt = time.Now()
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		return errors.Wrap(err, "update team member")
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *teamRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete team member")
	}
	return res.DeletedCount > 0, nil
}
