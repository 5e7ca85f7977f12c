package service

import (
	"Mizan/internal/api/config"
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/pkg/redis"
	"Mizan/internal/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- 内存版仓储，语义对齐 Mongo 实现 ----

type fakeCommentRepo struct {
	comments map[primitive.ObjectID]*model.Comment

	failDeleteByParent bool
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[primitive.ObjectID]*model.Comment)}
}

func (s *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) (*model.Comment, error) {
	comment.ID = primitive.NewObjectID()
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	clone := *comment
	s.comments[comment.ID] = &clone
	return comment, nil
}

func (s *fakeCommentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (s *fakeCommentRepo) match(c *model.Comment, filter repository.CommentFilter) bool {
	if filter.PostID != nil && c.PostID != *filter.PostID {
		return false
	}
	if filter.Status != nil && c.Status != *filter.Status {
		return false
	}
	return true
}

func (s *fakeCommentRepo) List(_ context.Context, filter repository.CommentFilter) ([]*model.Comment, error) {
	var result []*model.Comment
	for _, c := range s.comments {
		if s.match(c, filter) {
			clone := *c
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if filter.SortOrder == "asc" {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	start := (filter.Page - 1) * filter.Limit
	if start >= len(result) {
		return nil, nil
	}
	end := start + filter.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (s *fakeCommentRepo) Count(_ context.Context, filter repository.CommentFilter) (int64, error) {
	var count int64
	for _, c := range s.comments {
		if s.match(c, filter) {
			count++
		}
	}
	return count, nil
}

func (s *fakeCommentRepo) CountRecentByEmail(_ context.Context, email string, since time.Time) (int64, error) {
	var count int64
	for _, c := range s.comments {
		if c.Email == email && !c.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *fakeCommentRepo) Update(_ context.Context, id primitive.ObjectID, update repository.CommentUpdate) (*model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	if update.Content != nil {
		c.Content = *update.Content
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	c.UpdatedAt = time.Now()
	clone := *c
	return &clone, nil
}

func (s *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := s.comments[id]; !ok {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

func (s *fakeCommentRepo) DeleteByParent(_ context.Context, parentID primitive.ObjectID) (int64, error) {
	if s.failDeleteByParent {
		return 0, errDeleteFailed
	}
	var removed int64
	for id, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			delete(s.comments, id)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeCommentRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var removed int64
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeCommentRepo) ToggleLike(_ context.Context, id primitive.ObjectID, identity string) (*model.Comment, bool, error) {
	c, ok := s.comments[id]
	if !ok {
		return nil, false, nil
	}
	for i, liked := range c.Likes {
		if liked == identity {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			c.LikesCount--
			clone := *c
			return &clone, false, nil
		}
	}
	c.Likes = append(c.Likes, identity)
	c.LikesCount++
	clone := *c
	return &clone, true, nil
}

func (s *fakeCommentRepo) ApprovedCountsByPost(_ context.Context) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64)
	for _, c := range s.comments {
		if c.Status == consts.CommentStatusApproved {
			counts[c.PostID]++
		}
	}
	return counts, nil
}

var errDeleteFailed = errors.New("delete failed")

type fakePostRepo struct {
	posts map[primitive.ObjectID]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*model.Post)}
}

func (s *fakePostRepo) addPost(published bool) primitive.ObjectID {
	id := primitive.NewObjectID()
	s.posts[id] = &model.Post{
		ID:        id,
		Title:     "مقال تجريبي",
		Slug:      "post-" + id.Hex(),
		Published: published,
	}
	return id
}

func (s *fakePostRepo) Create(_ context.Context, post *model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	s.posts[post.ID] = post
	return post, nil
}

func (s *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (s *fakePostRepo) GetBySlug(_ context.Context, slug string) (*model.Post, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakePostRepo) List(_ context.Context, _ repository.PostFilter) ([]*model.Post, error) {
	var result []*model.Post
	for _, p := range s.posts {
		result = append(result, p)
	}
	return result, nil
}

func (s *fakePostRepo) Count(_ context.Context, _ repository.PostFilter) (int64, error) {
	return int64(len(s.posts)), nil
}

func (s *fakePostRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID, publishedOnly bool) (map[primitive.ObjectID]*model.Post, error) {
	result := make(map[primitive.ObjectID]*model.Post)
	for _, id := range ids {
		if p, ok := s.posts[id]; ok && (!publishedOnly || p.Published) {
			result[id] = p
		}
	}
	return result, nil
}

func (s *fakePostRepo) Update(_ context.Context, post *model.Post) error {
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := s.posts[id]; !ok {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}

func (s *fakePostRepo) Categories(_ context.Context) ([]repository.CategoryCount, error) {
	return nil, nil
}

// ---- 测试环境 ----

func setupCommentService(t *testing.T) (CommentService, *fakeCommentRepo, *fakePostRepo) {
	t.Helper()

	config.Cfg = &config.Config{
		Comments: config.CommentsConfig{
			CreateWindowMs:   60_000,
			CreateLimit:      5,
			LikeWindowMs:     60_000,
			LikeLimit:        30,
			EmailHourlyLimit: 3,
		},
	}
	// 指向不存在的地址：缓存读写会失败但不会 panic，主流程照常
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:1"})

	commentRepo := newFakeCommentRepo()
	postRepo := newFakePostRepo()
	svc := NewCommentService(commentRepo, postRepo,
		ratelimit.NewLimiter(time.Minute, config.Cfg.Comments.CreateLimit),
		ratelimit.NewLimiter(time.Minute, config.Cfg.Comments.LikeLimit),
	)
	return svc, commentRepo, postRepo
}

func validCreateReq(postID primitive.ObjectID) *dto.CommentCreateDTO {
	return &dto.CommentCreateDTO{
		PostID:  postID.Hex(),
		Name:    "أحمد",
		Email:   "ahmed@example.com",
		Content: "تعليق تجريبي بطول مناسب",
	}
}

func TestCreateComment_PendingByDefault(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	postID := posts.addPost(true)

	comment, message, err := svc.CreateComment(context.Background(), "ip-1", validCreateReq(postID))
	require.NoError(t, err)
	require.Equal(t, "pending", comment.Status)
	require.False(t, comment.Approved)
	require.False(t, comment.IsAdminReply)
	require.Contains(t, message, "المراجعة")
	require.Len(t, repo.comments, 1)
}

func TestCreateComment_AutoApprove(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	config.Cfg.Comments.AutoApprove = true
	postID := posts.addPost(true)

	comment, message, err := svc.CreateComment(context.Background(), "ip-1", validCreateReq(postID))
	require.NoError(t, err)
	require.Equal(t, "approved", comment.Status)
	require.True(t, comment.Approved)
	require.NotContains(t, message, "المراجعة")
}

func TestCreateComment_Validation(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(true)

	tests := []struct {
		name    string
		mutate  func(req *dto.CommentCreateDTO)
		wantErr error
	}{
		{"邮箱非法", func(r *dto.CommentCreateDTO) { r.Email = "not-an-email" }, ErrEmailInvalid},
		{"邮箱缺域名点", func(r *dto.CommentCreateDTO) { r.Email = "a@b" }, ErrEmailInvalid},
		{"姓名空白", func(r *dto.CommentCreateDTO) { r.Name = "   " }, ErrFieldsRequired},
		{"内容太短", func(r *dto.CommentCreateDTO) { r.Content = "قصير" }, ErrContentTooShort},
		{"内容太长", func(r *dto.CommentCreateDTO) { r.Content = strings.Repeat("ط", 1001) }, ErrContentTooLong},
		{"内容全空白", func(r *dto.CommentCreateDTO) { r.Content = "   " }, ErrFieldsRequired},
		{"文章 ID 非法", func(r *dto.CommentCreateDTO) { r.PostID = "nope" }, ErrParamInvalid},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReq(postID)
			tt.mutate(req)
			// 每个用例换身份，避免触发限流
			_, _, err := svc.CreateComment(context.Background(), "case-"+string(rune('a'+i)), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateComment_ContentLengthAfterTrim(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(true)

	// 首尾空白不算長度：5 个实际字符恰好达标
	req := validCreateReq(postID)
	req.Content = "   تعليق   "
	comment, _, err := svc.CreateComment(context.Background(), "ip-trim", req)
	require.NoError(t, err)
	require.Equal(t, "تعليق", comment.Content)
}

func TestCreateComment_SanitizesHTML(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(true)

	req := validCreateReq(postID)
	req.Content = `تعليق <script>alert("x")</script> نظيف`
	comment, _, err := svc.CreateComment(context.Background(), "ip-xss", req)
	require.NoError(t, err)
	require.NotContains(t, comment.Content, "<script>")
	require.Contains(t, comment.Content, "تعليق")
}

func TestCreateComment_UnpublishedPost(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(false)

	_, _, err := svc.CreateComment(context.Background(), "ip-1", validCreateReq(postID))
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreateComment_RateLimit(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(true)

	for i := 0; i < 5; i++ {
		req := validCreateReq(postID)
		// 每次换邮箱绕开小时配额，只考 IP 限流
		req.Email = "user" + string(rune('a'+i)) + "@example.com"
		_, _, err := svc.CreateComment(context.Background(), "same-ip", req)
		require.NoError(t, err)
	}

	_, _, err := svc.CreateComment(context.Background(), "same-ip", validCreateReq(postID))
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestCreateComment_EmailHourlyCap(t *testing.T) {
	svc, _, posts := setupCommentService(t)
	postID := posts.addPost(true)

	for i := 0; i < 3; i++ {
		req := validCreateReq(postID)
		_, _, err := svc.CreateComment(context.Background(), "ip-"+string(rune('a'+i)), req)
		require.NoError(t, err)
	}

	// 第 4 条同邮箱（换 IP 也一样）被小时配额拦下
	_, _, err := svc.CreateComment(context.Background(), "ip-z", validCreateReq(postID))
	require.ErrorIs(t, err, ErrEmailRateLimited)

	// 邮箱大小写不影响配额口径
	req := validCreateReq(postID)
	req.Email = "AHMED@example.com"
	_, _, err = svc.CreateComment(context.Background(), "ip-y", req)
	require.ErrorIs(t, err, ErrEmailRateLimited)
}

func TestCreateComment_ParentRules(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	postID := posts.addPost(true)
	otherPostID := posts.addPost(true)

	root, _ := repo.Create(context.Background(), &model.Comment{
		PostID: postID, Status: consts.CommentStatusApproved, CreatedAt: time.Now(),
	})
	reply, _ := repo.Create(context.Background(), &model.Comment{
		PostID: postID, ParentID: &root.ID, Status: consts.CommentStatusApproved, CreatedAt: time.Now(),
	})

	// 回复根评论成功
	req := validCreateReq(postID)
	req.ParentID = root.ID.Hex()
	comment, _, err := svc.CreateComment(context.Background(), "ip-1", req)
	require.NoError(t, err)
	require.Equal(t, root.ID.Hex(), *comment.ParentID)

	// 回复回复被拒
	req = validCreateReq(postID)
	req.Email = "b@example.com"
	req.ParentID = reply.ID.Hex()
	_, _, err = svc.CreateComment(context.Background(), "ip-2", req)
	require.ErrorIs(t, err, ErrParentNotRoot)

	// 父评论不存在
	req = validCreateReq(postID)
	req.Email = "c@example.com"
	req.ParentID = primitive.NewObjectID().Hex()
	_, _, err = svc.CreateComment(context.Background(), "ip-3", req)
	require.ErrorIs(t, err, ErrParentNotFound)

	// 父评论属于另一篇文章
	req = validCreateReq(otherPostID)
	req.Email = "d@example.com"
	req.ParentID = root.ID.Hex()
	_, _, err = svc.CreateComment(context.Background(), "ip-4", req)
	require.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateAdminReply(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	postID := posts.addPost(true)
	root, _ := repo.Create(context.Background(), &model.Comment{
		PostID: postID, Status: consts.CommentStatusPending, CreatedAt: time.Now(),
	})

	reply, err := svc.CreateAdminReply(context.Background(), "admin", "admin@firm.com", root.ID.Hex(), &dto.AdminReplyDTO{
		Content: "شكراً لتواصلك معنا",
	})
	require.NoError(t, err)
	require.True(t, reply.IsAdminReply)
	require.True(t, reply.Approved, "管理员回复直接过审")
	require.Equal(t, "admin", reply.Name)
	require.Equal(t, root.ID.Hex(), *reply.ParentID)
	require.Equal(t, postID.Hex(), reply.PostID, "postId 继承父评论")
}

func TestListComments_PublicHidesUnapprovedAndUnpublished(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	publishedID := posts.addPost(true)
	draftID := posts.addPost(false)

	base := time.Now()
	mk := func(postID primitive.ObjectID, status int8, offset time.Duration) {
		_, _ = repo.Create(context.Background(), &model.Comment{
			PostID: postID, Status: status, Email: "x@example.com", CreatedAt: base.Add(offset),
		})
	}
	mk(publishedID, consts.CommentStatusApproved, 0)
	mk(publishedID, consts.CommentStatusPending, time.Second)
	mk(publishedID, consts.CommentStatusRejected, 2*time.Second)
	mk(draftID, consts.CommentStatusApproved, 3*time.Second)

	list, err := svc.ListComments(context.Background(), CommentListOptions{
		Page: 1, Limit: 10,
		ApprovedOnly:      true,
		PublishedPostOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, list.Comments, 1, "只剩已过审且文章已发布的一条")
	require.Equal(t, "approved", list.Comments[0].Status)
	require.NotNil(t, list.Comments[0].Post)
}

func TestListComments_AdminFilters(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	postID := posts.addPost(true)
	draftID := posts.addPost(false)

	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusPending, CreatedAt: time.Now()})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusApproved, CreatedAt: time.Now()})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: draftID, Status: consts.CommentStatusPending, CreatedAt: time.Now()})

	pending := consts.CommentStatusPending
	list, err := svc.ListComments(context.Background(), CommentListOptions{
		Page: 1, Limit: 10,
		Status: &pending,
	})
	require.NoError(t, err)
	require.Len(t, list.Comments, 2, "含未发布文章的待审评论")
	require.Equal(t, int64(2), list.Stats.Total)
	require.Equal(t, int64(1), list.Stats.Approved)
	require.Equal(t, int64(2), list.Stats.Pending)
}

func TestListComments_Threaded(t *testing.T) {
	svc, repo, posts := setupCommentService(t)
	postID := posts.addPost(true)

	base := time.Now()
	root1, _ := repo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusApproved, CreatedAt: base})
	root2, _ := repo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusApproved, CreatedAt: base.Add(time.Second)})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, ParentID: &root1.ID, Status: consts.CommentStatusApproved, CreatedAt: base.Add(2 * time.Second)})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, ParentID: &root1.ID, Status: consts.CommentStatusApproved, CreatedAt: base.Add(3 * time.Second)})

	list, err := svc.ListComments(context.Background(), CommentListOptions{
		PostID: postID.Hex(),
		Page:   1, Limit: 10,
		ApprovedOnly:      true,
		PublishedPostOnly: true,
		Threaded:          true,
	})
	require.NoError(t, err)
	require.Len(t, list.Comments, 2, "两条根评论")

	var found *dto.CommentDTO
	for _, c := range list.Comments {
		if c.ID == root1.ID.Hex() {
			found = c
		}
		if c.ID == root2.ID.Hex() {
			require.Empty(t, c.Replies)
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.Replies, 2)

	// 串联视图分页元数据与载荷一致：单页、limit 为实际根节点数
	require.Equal(t, 1, list.Pagination.Page)
	require.Equal(t, 2, list.Pagination.Limit)
	require.Equal(t, 1, list.Pagination.Pages)
	require.False(t, list.Pagination.HasNext)
	require.False(t, list.Pagination.HasPrev)
}

func TestListComments_InvalidPaging(t *testing.T) {
	svc, _, _ := setupCommentService(t)

	_, err := svc.ListComments(context.Background(), CommentListOptions{Page: 0, Limit: 10})
	require.ErrorIs(t, err, ErrPagingInvalid)
	_, err = svc.ListComments(context.Background(), CommentListOptions{Page: 1, Limit: 101})
	require.ErrorIs(t, err, ErrPagingInvalid)
}

func TestUpdateComment_StatusWinsOverApproved(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	c, _ := repo.Create(context.Background(), &model.Comment{
		PostID: primitive.NewObjectID(), Status: consts.CommentStatusPending, CreatedAt: time.Now(),
	})

	status := "rejected"
	approved := true
	updated, err := svc.UpdateComment(context.Background(), c.ID.Hex(), &dto.CommentUpdateDTO{
		Status:   &status,
		Approved: &approved,
	})
	require.NoError(t, err)
	require.Equal(t, "rejected", updated.Status, "status 与 approved 同传时以 status 为准")
	require.False(t, updated.Approved)
}

func TestUpdateComment_ApprovedBool(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	c, _ := repo.Create(context.Background(), &model.Comment{
		PostID: primitive.NewObjectID(), Status: consts.CommentStatusPending, CreatedAt: time.Now(),
	})

	approved := true
	updated, err := svc.UpdateComment(context.Background(), c.ID.Hex(), &dto.CommentUpdateDTO{Approved: &approved})
	require.NoError(t, err)
	require.Equal(t, "approved", updated.Status)

	approved = false
	updated, err = svc.UpdateComment(context.Background(), c.ID.Hex(), &dto.CommentUpdateDTO{Approved: &approved})
	require.NoError(t, err)
	require.Equal(t, "pending", updated.Status)
}

func TestUpdateComment_InvalidStatus(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	c, _ := repo.Create(context.Background(), &model.Comment{
		PostID: primitive.NewObjectID(), Status: consts.CommentStatusPending, CreatedAt: time.Now(),
	})

	status := "archived"
	_, err := svc.UpdateComment(context.Background(), c.ID.Hex(), &dto.CommentUpdateDTO{Status: &status})
	require.ErrorIs(t, err, ErrCommentStatus)
}

func TestUpdateComment_NotFound(t *testing.T) {
	svc, _, _ := setupCommentService(t)
	_, err := svc.UpdateComment(context.Background(), primitive.NewObjectID().Hex(), &dto.CommentUpdateDTO{})
	require.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_CascadesReplies(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	postID := primitive.NewObjectID()
	root, _ := repo.Create(context.Background(), &model.Comment{PostID: postID, CreatedAt: time.Now()})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, ParentID: &root.ID, CreatedAt: time.Now()})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, ParentID: &root.ID, CreatedAt: time.Now()})

	message, err := svc.DeleteComment(context.Background(), root.ID.Hex())
	require.NoError(t, err)
	require.Contains(t, message, "الردود")
	require.Empty(t, repo.comments)
}

func TestDeleteComment_CascadeFailureStillDeletesRoot(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	postID := primitive.NewObjectID()
	root, _ := repo.Create(context.Background(), &model.Comment{PostID: postID, CreatedAt: time.Now()})
	_, _ = repo.Create(context.Background(), &model.Comment{PostID: postID, ParentID: &root.ID, CreatedAt: time.Now()})
	repo.failDeleteByParent = true

	message, err := svc.DeleteComment(context.Background(), root.ID.Hex())
	require.NoError(t, err, "级联失败不把错误抛给调用方")
	require.NotContains(t, message, "الردود")
	require.Len(t, repo.comments, 1, "主评论已删，孤儿回复保留")
}

func TestToggleLike(t *testing.T) {
	svc, repo, _ := setupCommentService(t)
	c, _ := repo.Create(context.Background(), &model.Comment{PostID: primitive.NewObjectID(), CreatedAt: time.Now()})

	result, err := svc.ToggleLike(context.Background(), c.ID.Hex(), "ip-ua")
	require.NoError(t, err)
	require.True(t, result.HasLiked)
	require.Equal(t, 1, result.LikesCount)

	// 同一身份再点就是取消
	result, err = svc.ToggleLike(context.Background(), c.ID.Hex(), "ip-ua")
	require.NoError(t, err)
	require.False(t, result.HasLiked)
	require.Equal(t, 0, result.LikesCount)

	// 计数与集合长度保持一致
	stored := repo.comments[c.ID]
	require.Equal(t, stored.LikesCount, len(stored.Likes))
}

func TestToggleLike_BadIDs(t *testing.T) {
	svc, _, _ := setupCommentService(t)

	_, err := svc.ToggleLike(context.Background(), "undefined", "ip")
	require.ErrorIs(t, err, ErrParamInvalid)
	_, err = svc.ToggleLike(context.Background(), "", "ip")
	require.ErrorIs(t, err, ErrParamInvalid)
	_, err = svc.ToggleLike(context.Background(), primitive.NewObjectID().Hex(), "ip")
	require.ErrorIs(t, err, ErrCommentNotFound)
}

func TestThreadComments_DeepChainFoldsToRoot(t *testing.T) {
	rootID := "r"
	midID := "m"
	root := &dto.CommentDTO{ID: rootID}
	mid := &dto.CommentDTO{ID: midID, ParentID: &rootID}
	leaf := &dto.CommentDTO{ID: "l", ParentID: &midID}

	threaded := threadComments([]*dto.CommentDTO{root, mid, leaf})
	require.Len(t, threaded, 1)
	require.Len(t, threaded[0].Replies, 2, "三层链折叠为根下两条回复")
}
