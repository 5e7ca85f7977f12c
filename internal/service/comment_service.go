package service

import (
	"Mizan/internal/api/config"
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/pkg/redis"
	"Mizan/internal/pkg/util"
	"Mizan/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

const cacheExpiration = 7 * 24 * time.Hour

const (
	commentMinLen = 5
	commentMaxLen = 1000

	// 审核通过/待审时给前台的不同提示
	msgCommentApproved = "تم إضافة تعليقك بنجاح"
	msgCommentPending  = "تم إرسال تعليقك وسيظهر بعد المراجعة"
	msgDeletedCascade  = "تم حذف التعليق وجميع الردود المرتبطة به"
	msgDeletedOnly     = "تم حذف التعليق"
)

// CommentListOptions 列表查询选项。
// 公开接口由 handler 强制 ApprovedOnly + PublishedPostOnly，
// 后台接口按查询参数放开。
type CommentListOptions struct {
	PostID            string
	Status            *int8
	Page              int
	Limit             int
	SortBy            string
	SortOrder         string
	ApprovedOnly      bool
	PublishedPostOnly bool
	Threaded          bool
}

type CommentService interface {
	CreateComment(ctx context.Context, identity string, req *dto.CommentCreateDTO) (*dto.CommentDTO, string, error)
	CreateAdminReply(ctx context.Context, adminName, adminEmail, parentID string, req *dto.AdminReplyDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, opts CommentListOptions) (*dto.CommentListDTO, error)
	GetComment(ctx context.Context, id string) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, id string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, id string) (string, error)
	ToggleLike(ctx context.Context, id, identity string) (*dto.LikeResultDTO, error)
	GetPostCommentCount(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

type commentServiceImpl struct {
	commentRepo   repository.CommentRepo
	postRepo      repository.PostRepo
	createLimiter *ratelimit.Limiter
	likeLimiter   *ratelimit.Limiter
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	createLimiter *ratelimit.Limiter,
	likeLimiter *ratelimit.Limiter,
) CommentService {
	return &commentServiceImpl{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		createLimiter: createLimiter,
		likeLimiter:   likeLimiter,
	}
}

// CreateComment 公开提交评论。
// 校验顺序：限流 → 字段 → 文章 → 父评论 → 邮箱小时配额，
// 任一环节失败都不会落库。该路径永远不会产生管理员回复。
func (s *commentServiceImpl) CreateComment(ctx context.Context, identity string, req *dto.CommentCreateDTO) (*dto.CommentDTO, string, error) {
	if ok, retryAfter := s.createLimiter.Allow(identity); !ok {
		log.WarnContext(ctx, "comment create rate limited", "identity", identity, "retry_after", retryAfter.String())
		return nil, "", ErrRateLimited
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	content, err := normalizeCommentContent(req.Content)
	if err != nil {
		return nil, "", err
	}
	if name == "" || email == "" {
		return nil, "", ErrFieldsRequired
	}
	if !util.ValidEmail(email) {
		return nil, "", ErrEmailInvalid
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return nil, "", ErrParamInvalid
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, "", err
	}
	if post == nil || !post.Published {
		return nil, "", ErrPostNotFound
	}

	var parentID *primitive.ObjectID
	if req.ParentID != "" {
		pid, err := s.checkParent(ctx, req.ParentID, postID)
		if err != nil {
			return nil, "", err
		}
		parentID = pid
	}

	recent, err := s.commentRepo.CountRecentByEmail(ctx, email, time.Now().Add(-time.Hour))
	if err != nil {
		return nil, "", err
	}
	if recent >= int64(config.Cfg.Comments.EmailHourlyLimit) {
		return nil, "", ErrEmailRateLimited
	}

	status := consts.CommentStatusPending
	if config.Cfg.Comments.AutoApprove {
		status = consts.CommentStatusApproved
	}

	now := time.Now()
	comment, err := s.commentRepo.Create(ctx, &model.Comment{
		PostID:    postID,
		Name:      name,
		Email:     email,
		Content:   content,
		Status:    status,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, "", err
	}

	message := msgCommentPending
	if status == consts.CommentStatusApproved {
		message = msgCommentApproved
		s.invalidatePostCount(ctx, postID)
	}
	return toCommentDTO(comment, nil), message, nil
}

// CreateAdminReply 管理员回复：直接过审，身份来自登录态而不是请求体
func (s *commentServiceImpl) CreateAdminReply(ctx context.Context, adminName, adminEmail, parentID string, req *dto.AdminReplyDTO) (*dto.CommentDTO, error) {
	content, err := normalizeCommentContent(req.Content)
	if err != nil {
		return nil, err
	}

	pid, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	parent, err := s.commentRepo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	if !parent.IsRoot() {
		return nil, ErrParentNotRoot
	}

	now := time.Now()
	comment, err := s.commentRepo.Create(ctx, &model.Comment{
		PostID:       parent.PostID,
		Name:         adminName,
		Email:        adminEmail,
		Content:      content,
		Status:       consts.CommentStatusApproved,
		IsAdminReply: true,
		ParentID:     &pid,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePostCount(ctx, parent.PostID)
	return toCommentDTO(comment, nil), nil
}

// checkParent 校验父评论存在、属于同一篇文章且是根评论（回复只允许两层）
func (s *commentServiceImpl) checkParent(ctx context.Context, rawID string, postID primitive.ObjectID) (*primitive.ObjectID, error) {
	pid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, ErrParentNotFound
	}
	parent, err := s.commentRepo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if parent == nil || parent.PostID != postID {
		return nil, ErrParentNotFound
	}
	if !parent.IsRoot() {
		return nil, ErrParentNotRoot
	}
	return &pid, nil
}

// ListComments 评论列表。
// 评论与文章分库存放没有外键，先查评论再批量取文章做"join 后过滤"：
// PublishedPostOnly 时关联文章缺失/未发布的评论整条不返回。
// 统计口径与当前过滤条件一致，三路计数并行。
func (s *commentServiceImpl) ListComments(ctx context.Context, opts CommentListOptions) (*dto.CommentListDTO, error) {
	if opts.Page < 1 || opts.Limit < 1 || opts.Limit > 100 {
		return nil, ErrPagingInvalid
	}

	filter := repository.CommentFilter{
		Page:      opts.Page,
		Limit:     opts.Limit,
		SortBy:    opts.SortBy,
		SortOrder: opts.SortOrder,
	}
	if opts.PostID != "" {
		pid, err := primitive.ObjectIDFromHex(opts.PostID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.PostID = &pid
	}
	if opts.ApprovedOnly {
		approved := consts.CommentStatusApproved
		filter.Status = &approved
	} else if opts.Status != nil {
		filter.Status = opts.Status
	}
	if opts.Threaded {
		// 串联视图整页取回再按根分组，分页作用在全部评论上
		filter.Page = 1
		filter.Limit = 500
		filter.SortOrder = "asc"
	}

	comments, err := s.commentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats, err := s.collectStats(ctx, filter)
	if err != nil {
		return nil, err
	}

	posts, err := s.joinPosts(ctx, comments, opts.PublishedPostOnly)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		post, ok := posts[c.PostID]
		if opts.PublishedPostOnly && !ok {
			continue
		}
		item := toCommentDTO(c, post)
		if !ok {
			item.Post = nil
		}
		items = append(items, item)
	}

	pagination := dto.NewPagination(opts.Page, opts.Limit, stats.Total)
	if opts.Threaded {
		// 串联视图一次性返回全部根节点，分页元数据收敛为单页以与载荷一致
		items = threadComments(items)
		pagination = dto.PaginationDTO{
			Page:  1,
			Limit: len(items),
			Total: stats.Total,
			Pages: 1,
		}
	}

	return &dto.CommentListDTO{
		Comments:   items,
		Stats:      stats,
		Pagination: pagination,
	}, nil
}

func (s *commentServiceImpl) collectStats(ctx context.Context, filter repository.CommentFilter) (dto.CommentStatsDTO, error) {
	var stats dto.CommentStatsDTO

	base := repository.CommentFilter{PostID: filter.PostID, Status: filter.Status}
	approved := repository.CommentFilter{PostID: filter.PostID, Status: ptrInt8(consts.CommentStatusApproved)}
	pending := repository.CommentFilter{PostID: filter.PostID, Status: ptrInt8(consts.CommentStatusPending)}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.Total, err = s.commentRepo.Count(egCtx, base)
		return err
	})
	eg.Go(func() (err error) {
		stats.Approved, err = s.commentRepo.Count(egCtx, approved)
		return err
	})
	eg.Go(func() (err error) {
		stats.Pending, err = s.commentRepo.Count(egCtx, pending)
		return err
	})
	if err := eg.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *commentServiceImpl) joinPosts(ctx context.Context, comments []*model.Comment, publishedOnly bool) (map[primitive.ObjectID]*model.Post, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(comments))
	ids := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.PostID]; ok {
			continue
		}
		seen[c.PostID] = struct{}{}
		ids = append(ids, c.PostID)
	}
	return s.postRepo.GetByIDs(ctx, ids, publishedOnly)
}

// threadComments 按父评论分组成两层结构。
// 历史数据里可能存在指向回复的 parent_id（现在写入层已禁止），
// 渲染时沿父链折叠到最近的根下，找不到根的当根处理。
func threadComments(items []*dto.CommentDTO) []*dto.CommentDTO {
	byID := make(map[string]*dto.CommentDTO, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	rootOf := func(item *dto.CommentDTO) *dto.CommentDTO {
		cur := item
		for i := 0; cur.ParentID != nil && i < len(items); i++ {
			parent, ok := byID[*cur.ParentID]
			if !ok {
				return nil
			}
			cur = parent
		}
		return cur
	}

	roots := make([]*dto.CommentDTO, 0, len(items))
	for _, item := range items {
		if item.ParentID == nil {
			roots = append(roots, item)
			continue
		}
		if root := rootOf(item); root != nil && root != item {
			root.Replies = append(root.Replies, item)
		} else {
			roots = append(roots, item)
		}
	}
	return roots
}

// GetComment 后台取单条评论，连带文章摘要
func (s *commentServiceImpl) GetComment(ctx context.Context, id string) (*dto.CommentDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	comment, err := s.commentRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	posts, err := s.postRepo.GetByIDs(ctx, []primitive.ObjectID{comment.PostID}, false)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(comment, posts[comment.PostID]), nil
}

// UpdateComment 后台编辑。
// 只采纳白名单字段；status 与 approved 都传时以 status 为准，
// approved 单独出现时按布尔翻译成 approved/pending。
func (s *commentServiceImpl) UpdateComment(ctx context.Context, id string, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}

	var update repository.CommentUpdate
	if req.Content != nil {
		content, err := normalizeCommentContent(*req.Content)
		if err != nil {
			return nil, err
		}
		update.Content = &content
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrFieldsRequired
		}
		update.Name = &name
	}
	switch {
	case req.Status != nil:
		status, ok := model.ParseStatusLabel(*req.Status)
		if !ok {
			return nil, ErrCommentStatus
		}
		update.Status = &status
	case req.Approved != nil:
		status := consts.CommentStatusPending
		if *req.Approved {
			status = consts.CommentStatusApproved
		}
		update.Status = &status
	}

	comment, err := s.commentRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if update.Status != nil {
		s.invalidatePostCount(ctx, comment.PostID)
	}
	return toCommentDTO(comment, nil), nil
}

// DeleteComment 删除评论并级联删除其下回复。
// 级联是尽力而为：回复删除失败只记日志，主删除已经生效不回滚。
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", ErrParamInvalid
	}

	comment, err := s.commentRepo.GetByID(ctx, oid)
	if err != nil {
		return "", err
	}
	if comment == nil {
		return "", ErrCommentNotFound
	}

	deleted, err := s.commentRepo.Delete(ctx, oid)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", ErrCommentNotFound
	}

	message := msgDeletedOnly
	if comment.IsRoot() {
		if _, err := s.commentRepo.DeleteByParent(ctx, oid); err != nil {
			log.ErrorContext(ctx, "cascade delete replies failed", "comment_id", id, "error", err.Error())
		} else {
			message = msgDeletedCascade
		}
	}

	s.invalidatePostCount(ctx, comment.PostID)
	return message, nil
}

// ToggleLike 点赞/取消点赞翻转，幂等由存储层原子操作保证
func (s *commentServiceImpl) ToggleLike(ctx context.Context, id, identity string) (*dto.LikeResultDTO, error) {
	if ok, _ := s.likeLimiter.Allow(identity); !ok {
		return nil, ErrRateLimited
	}

	// 前端状态丢失时会把字面量 "undefined" 拼进路径
	if id == "" || id == "undefined" {
		return nil, ErrParamInvalid
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}

	comment, liked, err := s.commentRepo.ToggleLike(ctx, oid, identity)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if err := redis.SetWithExpiration(ctx, consts.CommentLikeCountKey+id, comment.LikesCount, cacheExpiration); err != nil {
		log.WarnContext(ctx, "cache comment like count failed", "comment_id", id, "error", err.Error())
	}
	return &dto.LikeResultDTO{LikesCount: comment.LikesCount, HasLiked: liked}, nil
}

// GetPostCommentCount 文章已过审评论数，优先读缓存，miss 时回源并写缓存
func (s *commentServiceImpl) GetPostCommentCount(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	key := consts.PostCommentCountKey + postID.Hex()
	if count, err := redis.GetInt64(ctx, key); err == nil {
		return count, nil
	}

	approved := consts.CommentStatusApproved
	count, err := s.commentRepo.Count(ctx, repository.CommentFilter{PostID: &postID, Status: &approved})
	if err != nil {
		return 0, err
	}
	if err := redis.SetWithExpiration(ctx, key, count, cacheExpiration); err != nil {
		log.WarnContext(ctx, "cache post comment count failed", "post_id", postID.Hex(), "error", err.Error())
	}
	return count, nil
}

func (s *commentServiceImpl) invalidatePostCount(ctx context.Context, postID primitive.ObjectID) {
	if err := redis.DeleteKey(ctx, consts.PostCommentCountKey+postID.Hex()); err != nil {
		log.WarnContext(ctx, "invalidate post comment count failed", "post_id", postID.Hex(), "error", err.Error())
	}
}

// normalizeCommentContent 去首尾空白、净化 HTML，并按净化后的长度卡上下限
func normalizeCommentContent(raw string) (string, error) {
	content := strings.TrimSpace(util.SanitizeComment(strings.TrimSpace(raw)))
	if content == "" {
		return "", ErrFieldsRequired
	}
	length := len([]rune(content))
	if length < commentMinLen {
		return "", ErrContentTooShort
	}
	if length > commentMaxLen {
		return "", ErrContentTooLong
	}
	return content, nil
}

func toCommentDTO(c *model.Comment, post *model.Post) *dto.CommentDTO {
	item := &dto.CommentDTO{
		ID:           c.ID.Hex(),
		PostID:       c.PostID.Hex(),
		Name:         c.Name,
		Email:        c.Email,
		Content:      c.Content,
		Status:       model.StatusLabel(c.Status),
		Approved:     c.Status == consts.CommentStatusApproved,
		IsAdminReply: c.IsAdminReply,
		LikesCount:   c.LikesCount,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
	if c.ParentID != nil {
		pid := c.ParentID.Hex()
		item.ParentID = &pid
	}
	if post != nil {
		item.Post = &dto.CommentPostDTO{
			ID:      post.ID.Hex(),
			Title:   post.Title,
			Slug:    post.Slug,
			Excerpt: post.Excerpt,
		}
	}
	return item
}

func ptrInt8(v int8) *int8 { return &v }
