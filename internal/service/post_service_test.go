package service

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupPostService(t *testing.T) (PostService, *fakeCommentRepo, *fakePostRepo) {
	t.Helper()
	commentSvc, commentRepo, postRepo := setupCommentService(t)
	return NewPostService(postRepo, commentRepo, commentSvc), commentRepo, postRepo
}

func validPostReq() *dto.PostCreateDTO {
	return &dto.PostCreateDTO{
		Title:     "قانون العمل الجديد",
		Excerpt:   "ملخص المقال",
		Content:   "# مقدمة\n\nمحتوى المقال التفصيلي هنا.",
		Author:    "المحامي أحمد",
		Category:  "قانون العمل",
		Image:     "https://cdn.example.com/a.jpg",
		Published: true,
	}
}

func TestCreatePost_SlugFromTitle(t *testing.T) {
	svc, _, _ := setupPostService(t)

	post, err := svc.CreatePost(context.Background(), validPostReq())
	require.NoError(t, err)
	require.Equal(t, "قانون-العمل-الجديد", post.Slug)
	require.GreaterOrEqual(t, post.ReadTime, 1)
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	svc, _, _ := setupPostService(t)

	_, err := svc.CreatePost(context.Background(), validPostReq())
	require.NoError(t, err)

	_, err = svc.CreatePost(context.Background(), validPostReq())
	require.ErrorIs(t, err, ErrSlugExist)
}

func TestGetPostBySlug_RendersHTML(t *testing.T) {
	svc, _, _ := setupPostService(t)

	created, err := svc.CreatePost(context.Background(), validPostReq())
	require.NoError(t, err)

	detail, err := svc.GetPostBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	require.Contains(t, detail.HTML, "<h1")
	require.Contains(t, detail.HTML, "محتوى المقال")
}

func TestGetPostBySlug_UnpublishedHidden(t *testing.T) {
	svc, _, _ := setupPostService(t)

	req := validPostReq()
	req.Published = false
	created, err := svc.CreatePost(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.GetPostBySlug(context.Background(), created.Slug)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePost_SlugConflictOnlyWhenChanged(t *testing.T) {
	svc, _, _ := setupPostService(t)

	first, err := svc.CreatePost(context.Background(), validPostReq())
	require.NoError(t, err)

	second := validPostReq()
	second.Title = "مقال آخر"
	other, err := svc.CreatePost(context.Background(), second)
	require.NoError(t, err)

	// 不改 slug 的更新不触发冲突
	req := validPostReq()
	_, err = svc.UpdatePost(context.Background(), first.ID, req)
	require.NoError(t, err)

	// 改成别人的 slug 被拒
	req = validPostReq()
	req.Slug = other.Slug
	_, err = svc.UpdatePost(context.Background(), first.ID, req)
	require.ErrorIs(t, err, ErrSlugExist)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	svc, commentRepo, postRepo := setupPostService(t)

	created, err := svc.CreatePost(context.Background(), validPostReq())
	require.NoError(t, err)
	postID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	otherPostID := postRepo.addPost(true)
	_, _ = commentRepo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusApproved, CreatedAt: time.Now()})
	_, _ = commentRepo.Create(context.Background(), &model.Comment{PostID: postID, Status: consts.CommentStatusPending, CreatedAt: time.Now()})
	keep, _ := commentRepo.Create(context.Background(), &model.Comment{PostID: otherPostID, CreatedAt: time.Now()})

	require.NoError(t, svc.DeletePost(context.Background(), created.ID))

	require.Len(t, commentRepo.comments, 1, "其他文章的评论不受影响")
	_, ok := commentRepo.comments[keep.ID]
	require.True(t, ok)
}

func TestDeletePost_NotFound(t *testing.T) {
	svc, _, _ := setupPostService(t)
	err := svc.DeletePost(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrPostNotFound)
}
