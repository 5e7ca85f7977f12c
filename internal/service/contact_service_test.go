package service

import (
	"Mizan/internal/api/config"
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/ratelimit"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeContactRepo struct {
	messages []*model.ContactMessage
}

func (s *fakeContactRepo) Create(_ context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	msg.ID = primitive.NewObjectID()
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *fakeContactRepo) List(_ context.Context, page, limit int) ([]*model.ContactMessage, int64, error) {
	return s.messages, int64(len(s.messages)), nil
}

func (s *fakeContactRepo) MarkRead(_ context.Context, id primitive.ObjectID) (bool, error) {
	for _, msg := range s.messages {
		if msg.ID == id {
			msg.Read = true
			return true, nil
		}
	}
	return false, nil
}

func setupContactService(t *testing.T) (ContactService, *fakeContactRepo) {
	t.Helper()
	config.Cfg = &config.Config{
		Contact: config.ContactConfig{WindowMs: 60_000, Limit: 3},
	}
	repo := &fakeContactRepo{}
	return NewContactService(repo, ratelimit.NewLimiter(time.Minute, 3)), repo
}

func validContactReq() *dto.ContactCreateDTO {
	return &dto.ContactCreateDTO{
		Name:    "سارة",
		Email:   "sara@example.com",
		Message: "أحتاج استشارة قانونية بخصوص عقد العمل",
	}
}

func TestSubmitMessage(t *testing.T) {
	svc, repo := setupContactService(t)

	msg, err := svc.SubmitMessage(context.Background(), "1.2.3.4", validContactReq())
	require.NoError(t, err)
	require.False(t, msg.Read)
	require.Len(t, repo.messages, 1)
}

func TestSubmitMessage_InvalidEmail(t *testing.T) {
	svc, repo := setupContactService(t)

	req := validContactReq()
	req.Email = "bad"
	_, err := svc.SubmitMessage(context.Background(), "1.2.3.4", req)
	require.ErrorIs(t, err, ErrEmailInvalid)
	require.Empty(t, repo.messages)
}

func TestSubmitMessage_RateLimited(t *testing.T) {
	svc, _ := setupContactService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitMessage(context.Background(), "1.2.3.4", validContactReq())
		require.NoError(t, err)
	}
	_, err := svc.SubmitMessage(context.Background(), "1.2.3.4", validContactReq())
	require.ErrorIs(t, err, ErrRateLimited)

	// 其他 IP 不受影响
	_, err = svc.SubmitMessage(context.Background(), "5.6.7.8", validContactReq())
	require.NoError(t, err)
}

func TestMarkRead(t *testing.T) {
	svc, repo := setupContactService(t)

	msg, err := svc.SubmitMessage(context.Background(), "1.2.3.4", validContactReq())
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), msg.ID))
	require.True(t, repo.messages[0].Read)

	require.ErrorIs(t, svc.MarkRead(context.Background(), primitive.NewObjectID().Hex()), ErrMessageNotFound)
	require.ErrorIs(t, svc.MarkRead(context.Background(), "bad"), ErrParamInvalid)
}
