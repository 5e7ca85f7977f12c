package handler

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/pkg/response"
	"Mizan/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
	}
}

// List 公开团队页，只展示 active 成员
func (s *TeamHandler) List(c *gin.Context) {
	page, limit := pagingQuery(c)
	members, err := s.teamSvc.ListMembers(c.Request.Context(), service.TeamListOptions{
		Search:         c.Query("search"),
		Specialization: c.Query("specialization"),
		Page:           page,
		Limit:          limit,
		ActiveOnly:     true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

func (s *TeamHandler) AdminList(c *gin.Context) {
	page, limit := pagingQuery(c)
	members, err := s.teamSvc.ListMembers(c.Request.Context(), service.TeamListOptions{
		Search:         c.Query("search"),
		Specialization: c.Query("specialization"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

func (s *TeamHandler) Get(c *gin.Context) {
	member, err := s.teamSvc.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *TeamHandler) Create(c *gin.Context) {
	var req dto.TeamMemberCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	member, err := s.teamSvc.CreateMember(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *TeamHandler) Update(c *gin.Context) {
	var req dto.TeamMemberCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	member, err := s.teamSvc.UpdateMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *TeamHandler) Delete(c *gin.Context) {
	if err := s.teamSvc.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
