package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/pkg/response"
	"Mizan/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactSvc: contactSvc,
	}
}

// Submit 公开联系表单，按 IP 限流
func (s *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	msg, err := s.contactSvc.SubmitMessage(c.Request.Context(), ratelimit.IdentityFromRequest(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "تم استلام رسالتك وسنعاود التواصل معك قريباً", msg)
}

func (s *ContactHandler) AdminList(c *gin.Context) {
	page, limit := pagingQuery(c)
	messages, err := s.contactSvc.ListMessages(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *ContactHandler) MarkRead(c *gin.Context) {
	if err := s.contactSvc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
