package service

import (
	"Mizan/internal/api/config"
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/pkg/util"
	"Mizan/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, identity string, req *dto.ContactCreateDTO) (*dto.ContactMessageDTO, error)
	ListMessages(ctx context.Context, page, limit int) (*dto.ContactListDTO, error)
	MarkRead(ctx context.Context, id string) error
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepo
	limiter     *ratelimit.Limiter
	client      *resty.Client
}

func NewContactService(contactRepo repository.ContactRepo, limiter *ratelimit.Limiter) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		limiter:     limiter,
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(time.Second),
	}
}

// SubmitMessage 公开提交联系表单，落库后异步通知 webhook
func (s *contactServiceImpl) SubmitMessage(ctx context.Context, identity string, req *dto.ContactCreateDTO) (*dto.ContactMessageDTO, error) {
	if ok, _ := s.limiter.Allow(identity); !ok {
		return nil, ErrRateLimited
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !util.ValidEmail(email) {
		return nil, ErrEmailInvalid
	}

	msg := &model.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	created, err := s.contactRepo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.notify(created)
	return toContactDTO(created), nil
}

// notify 向运营配置的 webhook 推送新留言，失败只记日志不影响主流程
func (s *contactServiceImpl) notify(msg *model.ContactMessage) {
	webhook := config.Cfg.Contact.WebhookURL
	if webhook == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{
				"id":      msg.ID.Hex(),
				"name":    msg.Name,
				"email":   msg.Email,
				"subject": msg.Subject,
			}).
			Post(webhook)
		if err != nil {
			log.Warn("contact webhook failed", "message_id", msg.ID.Hex(), "error", err.Error())
			return
		}
		if resp.IsError() {
			log.Warn("contact webhook rejected", "message_id", msg.ID.Hex(), "status", resp.StatusCode())
		}
	}()
}

func (s *contactServiceImpl) ListMessages(ctx context.Context, page, limit int) (*dto.ContactListDTO, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return nil, ErrPagingInvalid
	}

	messages, total, err := s.contactRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ContactMessageDTO, 0, len(messages))
	for _, msg := range messages {
		items = append(items, toContactDTO(msg))
	}
	return &dto.ContactListDTO{
		Messages:   items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	updated, err := s.contactRepo.MarkRead(ctx, oid)
	if err != nil {
		return err
	}
	if !updated {
		return ErrMessageNotFound
	}
	return nil
}

func toContactDTO(msg *model.ContactMessage) *dto.ContactMessageDTO {
	var item dto.ContactMessageDTO
	_ = copier.Copy(&item, msg)
	item.ID = msg.ID.Hex()
	item.CreatedAt = msg.CreatedAt.Format(time.RFC3339)
	return &item
}
