package service

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/util"
	"Mizan/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostListOptions 文章列表查询选项
type PostListOptions struct {
	Search        string
	Category      string
	Page          int
	Limit         int
	PublishedOnly bool
	WithCounts    bool
}

type PostService interface {
	CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailDTO, error)
	ListPosts(ctx context.Context, opts PostListOptions) (*dto.PostListDTO, error)
	UpdatePost(ctx context.Context, id string, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]repository.CategoryCount, error)
}

type postServiceImpl struct {
	postRepo       repository.PostRepo
	commentRepo    repository.CommentRepo
	commentService CommentService
}

func NewPostService(postRepo repository.PostRepo, commentRepo repository.CommentRepo, commentService CommentService) PostService {
	return &postServiceImpl{
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		commentService: commentService,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if existing, err := s.postRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrSlugExist
	}

	now := time.Now()
	post := &model.Post{
		Title:     strings.TrimSpace(req.Title),
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Slug:      slug,
		Image:     req.Image,
		Published: req.Published,
		ReadTime:  util.EstimateReadTime(req.Content),
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created, true), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	post, err := s.postRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post, true), nil
}

// GetPostBySlug 公开详情，只认已发布文章，正文渲染为净化后的 HTML
func (s *postServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, ErrPostNotFound
	}

	detail := &dto.PostDetailDTO{
		PostDTO: *toPostDTO(post, true),
		HTML:    util.RenderMarkdown(post.Content),
	}

	count, err := s.commentService.GetPostCommentCount(ctx, post.ID)
	if err != nil {
		log.WarnContext(ctx, "load post comment count failed", "post_id", post.ID.Hex(), "error", err.Error())
	} else {
		detail.CommentCount = count
	}
	return detail, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, opts PostListOptions) (*dto.PostListDTO, error) {
	if opts.Page < 1 || opts.Limit < 1 || opts.Limit > 100 {
		return nil, ErrPagingInvalid
	}

	filter := repository.PostFilter{
		Search:   opts.Search,
		Category: opts.Category,
		Page:     opts.Page,
		Limit:    opts.Limit,
	}
	if opts.PublishedOnly {
		published := true
		filter.Published = &published
	}

	posts, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		item := toPostDTO(post, false)
		if opts.WithCounts {
			count, err := s.commentService.GetPostCommentCount(ctx, post.ID)
			if err != nil {
				log.WarnContext(ctx, "load post comment count failed", "post_id", post.ID.Hex(), "error", err.Error())
			} else {
				item.CommentCount = count
			}
		}
		items = append(items, item)
	}

	return &dto.PostListDTO{
		Posts:      items,
		Pagination: dto.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id string, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	post, err := s.postRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug != post.Slug {
		if existing, err := s.postRepo.GetBySlug(ctx, slug); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, ErrSlugExist
		}
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.Author = req.Author
	post.Category = req.Category
	post.Slug = slug
	post.Image = req.Image
	post.Published = req.Published
	post.ReadTime = util.EstimateReadTime(req.Content)
	post.Tags = req.Tags

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return toPostDTO(post, true), nil
}

// DeletePost 删除文章并级联清掉其全部评论，评论清理失败只记日志
func (s *postServiceImpl) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	deleted, err := s.postRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	if n, err := s.commentRepo.DeleteByPost(ctx, oid); err != nil {
		log.ErrorContext(ctx, "cascade delete post comments failed", "post_id", id, "error", err.Error())
	} else if n > 0 {
		log.InfoContext(ctx, "post comments removed", "post_id", id, "count", n)
	}
	return nil
}

func (s *postServiceImpl) Categories(ctx context.Context) ([]repository.CategoryCount, error) {
	return s.postRepo.Categories(ctx)
}

func toPostDTO(post *model.Post, withContent bool) *dto.PostDTO {
	var item dto.PostDTO
	_ = copier.Copy(&item, post)
	item.ID = post.ID.Hex()
	item.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	item.UpdatedAt = post.UpdatedAt.Format(time.RFC3339)
	if !withContent {
		item.Content = ""
	}
	return &item
}
