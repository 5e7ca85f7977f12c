package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/pkg/response"
	"Mizan/internal/service"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	caseSvc service.CaseService
}

func NewCaseHandler(caseSvc service.CaseService) *CaseHandler {
	return &CaseHandler{
		caseSvc: caseSvc,
	}
}

func (s *CaseHandler) List(c *gin.Context) {
	page, limit := pagingQuery(c)
	opts := service.CaseListOptions{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		opts.Featured = &featured
	}

	cases, err := s.caseSvc.ListCases(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cases)
}

func (s *CaseHandler) Get(c *gin.Context) {
	item, err := s.caseSvc.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *CaseHandler) Create(c *gin.Context) {
	var req dto.CaseCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.caseSvc.CreateCase(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *CaseHandler) Update(c *gin.Context) {
	var req dto.CaseCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.caseSvc.UpdateCase(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *CaseHandler) Delete(c *gin.Context) {
	if err := s.caseSvc.DeleteCase(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
