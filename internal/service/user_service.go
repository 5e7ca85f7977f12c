package service

import (
	"Mizan/internal/api/config"
	"Mizan/internal/api/dto"
	"Mizan/internal/model"
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/redis"
	"Mizan/internal/pkg/security"
	"Mizan/internal/pkg/util"
	"Mizan/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserDTO, error)
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Login 用户名或邮箱 + 密码换取会话令牌。
// 账号不存在与密码错误返回同一个错误，不暴露哪个环节失败。
func (s *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))
	if identifier == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "admin login", "username", user.Username)
	return &dto.LoginResultDTO{
		Token: token,
		User:  *toUserDTO(user),
	}, nil
}

// Logout 把 Token 签名写入黑名单，TTL 与令牌剩余有效期一致
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	if claims, err := security.ValidateToken(token); err == nil && claims.ExpiresAt != nil {
		if remain := time.Until(claims.ExpiresAt.Time); remain > 0 {
			ttl = remain
		}
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", ttl)
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.UserCreateDTO) (*dto.UserDTO, error) {
	// 用户名统一小写存储，与 Login 的小写化标识符精确匹配
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !util.ValidEmail(email) {
		return nil, ErrEmailInvalid
	}

	if existing, err := s.userRepo.GetByIdentifier(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExist
	}
	if existing, err := s.userRepo.GetByIdentifier(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExist
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = consts.RoleEditor
	}
	if role != consts.RoleAdmin && role != consts.RoleEditor {
		return nil, ErrParamInvalid
	}

	now := time.Now()
	user, err := s.userRepo.Create(ctx, &model.User{
		Username:  username,
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserDTO, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, toUserDTO(user))
	}
	return items, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
