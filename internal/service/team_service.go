package service

import (
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamListOptions 团队成员列表查询选项，公开接口强制 ActiveOnly
type TeamListOptions struct {
	Search         string
	Specialization string
	Page           int
	Limit          int
	ActiveOnly     bool
}

type TeamService interface {
	CreateMember(ctx context.Context, req *dto.TeamMemberCreateDTO) (*dto.TeamMemberDTO, error)
	GetMember(ctx context.Context, id string) (*dto.TeamMemberDTO, error)
	ListMembers(ctx context.Context, opts TeamListOptions) (*dto.TeamListDTO, error)
	UpdateMember(ctx context.Context, id string, req *dto.TeamMemberCreateDTO) (*dto.TeamMemberDTO, error)
	DeleteMember(ctx context.Context, id string) error
}

type teamServiceImpl struct {
	teamRepo repository.TeamRepo
}

func NewTeamService(teamRepo repository.TeamRepo) TeamService {
	return &teamServiceImpl{teamRepo: teamRepo}
}

func (s *teamServiceImpl) CreateMember(ctx context.Context, req *dto.TeamMemberCreateDTO) (*dto.TeamMemberDTO, error) {
	now := time.Now()
	member := &model.TeamMember{
		Name:           strings.TrimSpace(req.Name),
		Position:       strings.TrimSpace(req.Position),
		Bio:            strings.TrimSpace(req.Bio),
		Image:          req.Image,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Education:      req.Education,
		Languages:      req.Languages,
		Order:          req.Order,
		Featured:       req.Featured,
		Active:         true, // 新成员默认可见，除非显式关闭
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	created, err := s.teamRepo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	return toTeamMemberDTO(created), nil
}

func (s *teamServiceImpl) GetMember(ctx context.Context, id string) (*dto.TeamMemberDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	member, err := s.teamRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}
	return toTeamMemberDTO(member), nil
}

func (s *teamServiceImpl) ListMembers(ctx context.Context, opts TeamListOptions) (*dto.TeamListDTO, error) {
	if opts.Page < 1 || opts.Limit < 1 || opts.Limit > 100 {
		return nil, ErrPagingInvalid
	}

	filter := repository.TeamFilter{
		Search:         opts.Search,
		Specialization: opts.Specialization,
		Page:           opts.Page,
		Limit:          opts.Limit,
	}
	if opts.ActiveOnly {
		active := true
		filter.Active = &active
	}

	members, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.teamRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TeamMemberDTO, 0, len(members))
	for _, member := range members {
		items = append(items, toTeamMemberDTO(member))
	}
	return &dto.TeamListDTO{
		TeamMembers: items,
		Pagination:  dto.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *teamServiceImpl) UpdateMember(ctx context.Context, id string, req *dto.TeamMemberCreateDTO) (*dto.TeamMemberDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	member, err := s.teamRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}

	member.Name = strings.TrimSpace(req.Name)
	member.Position = strings.TrimSpace(req.Position)
	member.Bio = strings.TrimSpace(req.Bio)
	member.Image = req.Image
	member.Email = strings.ToLower(strings.TrimSpace(req.Email))
	member.Phone = req.Phone
	member.Specialization = req.Specialization
	member.Experience = req.Experience
	member.Education = req.Education
	member.Languages = req.Languages
	member.Order = req.Order
	member.Featured = req.Featured
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return toTeamMemberDTO(member), nil
}

func (s *teamServiceImpl) DeleteMember(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	deleted, err := s.teamRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTeamMemberNotFound
	}
	return nil
}

func toTeamMemberDTO(member *model.TeamMember) *dto.TeamMemberDTO {
	var item dto.TeamMemberDTO
	_ = copier.Copy(&item, member)
	item.ID = member.ID.Hex()
	item.CreatedAt = member.CreatedAt.Format(time.RFC3339)
	item.UpdatedAt = member.UpdatedAt.Format(time.RFC3339)
	return &item
}
