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

// CommentFilter 列表查询条件，nil 字段表示不过滤
type CommentFilter struct {
	PostID    *primitive.ObjectID
	Status    *int8
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" / "desc"
}

// CommentUpdate 白名单可更新字段，nil 表示不改
type CommentUpdate struct {
	Content *string
	Name    *string
	Status  *int8
}

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	List(ctx context.Context, filter CommentFilter) ([]*model.Comment, error)
	Count(ctx context.Context, filter CommentFilter) (int64, error)
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update CommentUpdate) (*model.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByParent(ctx context.Context, parentID primitive.ObjectID) (int64, error)
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	ToggleLike(ctx context.Context, id primitive.ObjectID, identity string) (*model.Comment, bool, error)
	ApprovedCountsByPost(ctx context.Context) (map[primitive.ObjectID]int64, error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection("comments"),
	}
}

func (s *commentRepoImpl) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return comment, nil
}

func (s *commentRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find comment")
	}
	return &comment, nil
}

func (s *commentRepoImpl) filterQuery(filter CommentFilter) bson.M {
	query := bson.M{}
	if filter.PostID != nil {
		query["post_id"] = *filter.PostID
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	return query
}

func (s *commentRepoImpl) List(ctx context.Context, filter CommentFilter) ([]*model.Comment, error) {
	sortField := filter.SortBy
	if sortField == "" {
		sortField = "created_at"
	}
	sortDir := -1
	if filter.SortOrder == "asc" {
		sortDir = 1
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := s.col.Find(ctx, s.filterQuery(filter), findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, errors.Wrap(err, "decode comments")
	}
	return comments, nil
}

func (s *commentRepoImpl) Count(ctx context.Context, filter CommentFilter) (int64, error) {
	count, err := s.col.CountDocuments(ctx, s.filterQuery(filter))
	return count, errors.Wrap(err, "count comments")
}

func (s *commentRepoImpl) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"email":      email,
		"created_at": bson.M{"$gte": since},
	})
	return count, errors.Wrap(err, "count recent comments by email")
}

// Update 只落白名单字段，其余调用方已静默丢弃
func (s *commentRepoImpl) Update(ctx context.Context, id primitive.ObjectID, update CommentUpdate) (*model.Comment, error) {
	set := bson.M{"updated_at": time.Now()}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	var comment model.Comment
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update comment")
	}
	return &comment, nil
}

func (s *commentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete comment")
	}
	return res.DeletedCount > 0, nil
}

func (s *commentRepoImpl) DeleteByParent(ctx context.Context, parentID primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return 0, errors.Wrap(err, "delete replies")
	}
	return res.DeletedCount, nil
}

func (s *commentRepoImpl) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, errors.Wrap(err, "delete post comments")
	}
	return res.DeletedCount, nil
}

// ToggleLike 同一文档内原子翻转点赞状态，likes 与 likes_count 始终一起更新：
// 先按"已点赞"条件尝试撤销，未命中再按"未点赞"条件尝试添加，保证计数不漂移。
func (s *commentRepoImpl) ToggleLike(ctx context.Context, id primitive.ObjectID, identity string) (*model.Comment, bool, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment model.Comment
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": identity},
		bson.M{
			"$pull": bson.M{"likes": identity},
			"$inc":  bson.M{"likes_count": -1},
		},
		after,
	).Decode(&comment)
	if err == nil {
		return &comment, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, errors.Wrap(err, "unlike comment")
	}

	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": bson.M{"$ne": identity}},
		bson.M{
			"$addToSet": bson.M{"likes": identity},
			"$inc":      bson.M{"likes_count": 1},
		},
		after,
	).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil // 评论不存在
		}
		return nil, false, errors.Wrap(err, "like comment")
	}
	return &comment, true, nil
}

// ApprovedCountsByPost 统计每篇文章的已过审评论数（供缓存预热任务使用）
func (s *commentRepoImpl) ApprovedCountsByPost(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": int8(1)}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$post_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate comment counts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		PostID primitive.ObjectID `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode comment counts")
	}

	counts := make(map[primitive.ObjectID]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
