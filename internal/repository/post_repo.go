package repository

import (
	"Mizan/internal/model"
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostFilter 文章列表查询条件
type PostFilter struct {
	Published *bool
	Search    string
	Category  string
	Page      int
	Limit     int
}

// CategoryCount 分类及其已发布文章数
type CategoryCount struct {
	Name  string `bson:"name" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*model.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID, publishedOnly bool) (map[primitive.ObjectID]*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return nil, errors.Wrap(err, "insert post")
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return post, nil
}

func (s *postRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find post")
	}
	return &post, nil
}

func (s *postRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find post by slug")
	}
	return &post, nil
}

func (s *postRepoImpl) filterQuery(filter PostFilter) bson.M {
	query := bson.M{}
	if filter.Published != nil {
		query["published"] = *filter.Published
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		// 标题/摘要正则检索，阿拉伯语内容走不了英文分词，直接用不区分大小写的正则。
		// 检索词按字面量转义，避免用户输入当正则执行
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"excerpt": regex},
		}
	}
	return query
}

func (s *postRepoImpl) List(ctx context.Context, filter PostFilter) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit)).
		SetProjection(bson.M{"content": 0}) // 列表不带全文

	cursor, err := s.col.Find(ctx, s.filterQuery(filter), findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return posts, nil
}

func (s *postRepoImpl) Count(ctx context.Context, filter PostFilter) (int64, error) {
	count, err := s.col.CountDocuments(ctx, s.filterQuery(filter))
	return count, errors.Wrap(err, "count posts")
}

// GetByIDs 批量取文章，键为文章 ID，评论列表用它做"join 后过滤"：
// publishedOnly 时未发布/缺失的文章不会出现在返回里。
func (s *postRepoImpl) GetByIDs(ctx context.Context, ids []primitive.ObjectID, publishedOnly bool) (map[primitive.ObjectID]*model.Post, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]*model.Post{}, nil
	}

	query := bson.M{"_id": bson.M{"$in": ids}}
	if publishedOnly {
		query["published"] = true
	}
	cursor, err := s.col.Find(ctx, query,
		options.Find().SetProjection(bson.M{"title": 1, "slug": 1, "excerpt": 1, "published": 1}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find posts by ids")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts by ids")
	}

	result := make(map[primitive.ObjectID]*model.Post, len(posts))
	for _, p := range posts {
		result[p.ID] = p
	}
	return result, nil
}

func (s *postRepoImpl) Update(ctx context.Context, post *model.Post) error {
	post.UpdatedAt = time.Now()
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return errors.Wrap(err, "update post")
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *postRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete post")
	}
	return res.DeletedCount > 0, nil
}

// Categories 聚合各分类下已发布文章数，按数量倒序
func (s *postRepoImpl) Categories(ctx context.Context) ([]CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"published": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"name":  "$_id",
			"count": 1,
			"_id":   0,
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate categories")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var categories []CategoryCount
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errors.Wrap(err, "decode categories")
	}
	return categories, nil
}
