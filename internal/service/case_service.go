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

// CaseListOptions 案例列表查询选项
type CaseListOptions struct {
	Search   string
	Type     string
	Status   string
	Featured *bool
	Page     int
	Limit    int
}

type CaseService interface {
	CreateCase(ctx context.Context, req *dto.CaseCreateDTO) (*dto.CaseDTO, error)
	GetCase(ctx context.Context, id string) (*dto.CaseDTO, error)
	ListCases(ctx context.Context, opts CaseListOptions) (*dto.CaseListDTO, error)
	UpdateCase(ctx context.Context, id string, req *dto.CaseCreateDTO) (*dto.CaseDTO, error)
	DeleteCase(ctx context.Context, id string) error
}

type caseServiceImpl struct {
	caseRepo repository.CaseRepo
}

func NewCaseService(caseRepo repository.CaseRepo) CaseService {
	return &caseServiceImpl{caseRepo: caseRepo}
}

// normalizeCase 校验枚举并填默认状态
func normalizeCase(req *dto.CaseCreateDTO) (string, error) {
	if !model.ValidCaseType(req.Type) {
		return "", ErrCaseTypeInvalid
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.CaseStatusDefault
	}
	if !model.ValidCaseStatus(status) {
		return "", ErrCaseStatusInvalid
	}
	return status, nil
}

func (s *caseServiceImpl) CreateCase(ctx context.Context, req *dto.CaseCreateDTO) (*dto.CaseDTO, error) {
	status, err := normalizeCase(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &model.Case{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Year:        req.Year,
		Type:        req.Type,
		Result:      req.Result,
		Status:      status,
		Client:      req.Client,
		Value:       req.Value,
		Duration:    req.Duration,
		Tags:        req.Tags,
		Featured:    req.Featured,
		Image:       req.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.caseRepo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCaseDTO(created), nil
}

func (s *caseServiceImpl) GetCase(ctx context.Context, id string) (*dto.CaseDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	c, err := s.caseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return toCaseDTO(c), nil
}

func (s *caseServiceImpl) ListCases(ctx context.Context, opts CaseListOptions) (*dto.CaseListDTO, error) {
	if opts.Page < 1 || opts.Limit < 1 || opts.Limit > 100 {
		return nil, ErrPagingInvalid
	}

	filter := repository.CaseFilter{
		Search:   opts.Search,
		Type:     opts.Type,
		Status:   opts.Status,
		Featured: opts.Featured,
		Page:     opts.Page,
		Limit:    opts.Limit,
	}
	cases, err := s.caseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.caseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CaseDTO, 0, len(cases))
	for _, c := range cases {
		items = append(items, toCaseDTO(c))
	}
	return &dto.CaseListDTO{
		Cases:      items,
		Pagination: dto.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *caseServiceImpl) UpdateCase(ctx context.Context, id string, req *dto.CaseCreateDTO) (*dto.CaseDTO, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	c, err := s.caseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}

	status, err := normalizeCase(req)
	if err != nil {
		return nil, err
	}

	c.Title = strings.TrimSpace(req.Title)
	c.Description = strings.TrimSpace(req.Description)
	c.Year = req.Year
	c.Type = req.Type
	c.Result = req.Result
	c.Status = status
	c.Client = req.Client
	c.Value = req.Value
	c.Duration = req.Duration
	c.Tags = req.Tags
	c.Featured = req.Featured
	c.Image = req.Image

	if err := s.caseRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCaseDTO(c), nil
}

func (s *caseServiceImpl) DeleteCase(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	deleted, err := s.caseRepo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCaseNotFound
	}
	return nil
}

func toCaseDTO(c *model.Case) *dto.CaseDTO {
	var item dto.CaseDTO
	_ = copier.Copy(&item, c)
	item.ID = c.ID.Hex()
	item.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	item.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	return &item
}
