package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/pkg/response"
	"Mizan/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	userSvc    service.UserService
}

func NewCommentHandler(commentSvc service.CommentService, userSvc service.UserService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		userSvc:    userSvc,
	}
}

// Create 公开提交评论，身份串带 User-Agent 与点赞口径区分开
func (s *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	identity := ratelimit.IdentityWithAgent(c, consts.LikeIdentityMaxLen)
	comment, message, err := s.commentSvc.CreateComment(c.Request.Context(), identity, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, message, comment)
}

// List 公开评论列表，强制只返回已过审且文章已发布的评论
func (s *CommentHandler) List(c *gin.Context) {
	page, limit := pagingQuery(c)
	opts := service.CommentListOptions{
		PostID:            c.Query("postId"),
		Page:              page,
		Limit:             limit,
		SortBy:            c.Query("sortBy"),
		SortOrder:         c.DefaultQuery("sortOrder", "desc"),
		ApprovedOnly:      true,
		PublishedPostOnly: true,
		Threaded:          c.Query("threaded") == "true",
	}

	list, err := s.commentSvc.ListComments(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ToggleLike 点赞翻转，身份串同样是 IP+UA
func (s *CommentHandler) ToggleLike(c *gin.Context) {
	identity := ratelimit.IdentityWithAgent(c, consts.LikeIdentityMaxLen)
	result, err := s.commentSvc.ToggleLike(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AdminList 后台评论列表，支持按状态过滤并可带出未发布文章的评论
func (s *CommentHandler) AdminList(c *gin.Context) {
	page, limit := pagingQuery(c)
	opts := service.CommentListOptions{
		PostID:            c.Query("postId"),
		Page:              page,
		Limit:             limit,
		SortBy:            c.Query("sortBy"),
		SortOrder:         c.DefaultQuery("sortOrder", "desc"),
		PublishedPostOnly: c.Query("includeUnpublished") != "true",
	}
	if label := c.Query("status"); label != "" {
		status, ok := model.ParseStatusLabel(label)
		if !ok {
			response.Error(c, service.ErrCommentStatus)
			return
		}
		opts.Status = &status
	}

	list, err := s.commentSvc.ListComments(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *CommentHandler) AdminGet(c *gin.Context) {
	comment, err := s.commentSvc.GetComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) AdminUpdate(c *gin.Context) {
	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) AdminDelete(c *gin.Context) {
	message, err := s.commentSvc.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, message, nil)
}

// AdminReply 管理员回复：署名取登录账号资料，不信任请求体里的身份字段
func (s *CommentHandler) AdminReply(c *gin.Context) {
	var req dto.AdminReplyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.userSvc.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateAdminReply(c.Request.Context(), profile.Username, profile.Email, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// pagingQuery 解析 page/limit，非法值交给 service 层校验报错
func pagingQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 0
	}
	return page, limit
}
