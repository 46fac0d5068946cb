package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/dto/response"
	"insekta-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	BootstrapAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user entity. Password dipilih sendiri, jadi bukan first login
	user := &entity.User{
		Base:         entity.NewBase(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         entity.RoleClient,
		Avatar:       utils.GenerateAvatarURL(req.Name),
		IsActive:     true,
		IsFirstLogin: false,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	// 6. Auto login setelah register
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validasi
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. User not found / wrong password: same answer for both
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrDeactivated
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.Bool("first_login", user.IsFirstLogin),
	)

	return s.issue(user)
}

// BootstrapAdmin creates the configured administrator when no admin exists
// yet. It is a no-op without ADMIN_EMAIL and ADMIN_PASSWORD.
func (s *authService) BootstrapAdmin(ctx context.Context) error {
	cfg := s.config.Admin
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	admins, err := s.repo.User.Count(ctx, repository.UserFilter{Role: entity.RoleAdmin})
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		return nil
	}

	existing, err := s.repo.User.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("check admin email: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("bootstrap admin email %s belongs to a non-admin account", cfg.Email)
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		Base:         entity.NewBase(),
		Name:         cfg.Name,
		Email:        strings.ToLower(cfg.Email),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Avatar:       utils.GenerateAvatarURL(cfg.Name),
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Bootstrap admin created", zap.String("user_id", admin.ID.String()))
	return nil
}

func (s *authService) issue(user *entity.User) (*response.AuthResponse, error) {
	ttl := s.config.JWT.Expiry()
	token, err := utils.GenerateToken(s.config.JWT.Secret, user.ID.String(), string(user.Role), ttl)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	return &response.AuthResponse{
		User:      response.UserToResponse(user),
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
