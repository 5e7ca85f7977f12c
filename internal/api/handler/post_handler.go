package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/pkg/response"
	"Mizan/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// List 公开文章列表，只返回已发布文章并附带评论数
func (s *PostHandler) List(c *gin.Context) {
	page, limit := pagingQuery(c)
	posts, err := s.postSvc.ListPosts(c.Request.Context(), service.PostListOptions{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Page:          page,
		Limit:         limit,
		PublishedOnly: true,
		WithCounts:    true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetBySlug 公开文章详情，正文为渲染后的 HTML
func (s *PostHandler) GetBySlug(c *gin.Context) {
	post, err := s.postSvc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Categories(c *gin.Context) {
	categories, err := s.postSvc.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

// AdminList 后台文章列表，含未发布
func (s *PostHandler) AdminList(c *gin.Context) {
	page, limit := pagingQuery(c)
	posts, err := s.postSvc.ListPosts(c.Request.Context(), service.PostListOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) AdminGet(c *gin.Context) {
	post, err := s.postSvc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Create(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Update(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Delete(c *gin.Context) {
	if err := s.postSvc.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
