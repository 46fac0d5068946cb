package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/internal/dto/response"
	"insekta-dashboard/pkg/mailer"
	"insekta-dashboard/pkg/storage"
	"insekta-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 4 byte = 8 karakter hex
const tempPasswordBytes = 4

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	GetUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	GetCompanies(ctx context.Context) ([]string, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	upload *uploader
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	store storage.Provider,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	log = log.With(zap.String("service", "user"))
	return &userService{
		repo:   repo,
		mail:   mail,
		upload: &uploader{store: store, log: log},
		config: config,
		log:    log,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	req.Normalize(10)

	filter := repository.UserFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	}
	if role := entity.UserRole(req.Role); role.Valid() {
		filter.Role = role
	}
	switch req.Status {
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		active := false
		filter.Active = &active
	}

	users, err := us.repo.User.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := us.repo.User.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("limit", req.Limit),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit, total), nil
}

// CreateUser is the admin invite: a temporary password is generated and
// mailed, and the account must change it on first login.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.CreateUserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := us.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	tempPassword, err := utils.GenerateTempPassword(tempPasswordBytes)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleClient
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	user := &entity.User{
		Base:         entity.NewBase(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		Avatar:       utils.GenerateAvatarURL(req.Name),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		IsActive:     true,
		IsFirstLogin: true,
	}

	if err := us.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// gagal kirim email tidak membatalkan pembuatan user
	emailSent := true
	err = us.mail.SendWelcome(ctx, mailer.WelcomeMail{
		To:           user.Email,
		Name:         user.Name,
		Email:        user.Email,
		TempPassword: tempPassword,
		LoginURL:     strings.TrimRight(us.config.App.ClientURL, "/") + "/login",
	})
	if err != nil {
		emailSent = false
		us.log.Warn("Failed to send welcome email", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	us.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.Bool("email_sent", emailSent),
	)

	return &response.CreateUserResponse{
		UserResponse: response.UserToResponse(user),
		EmailSent:    emailSent,
	}, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := us.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldAvatar := user.Avatar

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && !strings.EqualFold(email, user.Email) {
			other, err := us.repo.User.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if other != nil && other.ID != user.ID {
				return nil, fmt.Errorf("email %w", ErrConflict)
			}
			user.Email = email
		}
	}

	if req.Password != "" {
		// first login: the temp password was never chosen, so it is not asked again
		if !user.IsFirstLogin {
			if req.OldPassword == "" {
				return nil, fieldError("oldPassword", "This field is required")
			}
			if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
				return nil, fmt.Errorf("old password is incorrect: %w", ErrUnauthorized)
			}
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		user.IsFirstLogin = false
	}

	if req.Avatar != nil {
		ref, err := us.upload.saveImage(ctx, folderIcons, req.Avatar, storage.AvatarOptions)
		if err != nil {
			return nil, err
		}
		user.Avatar = ref
	}

	user.Touch()
	if err := us.repo.User.Update(ctx, user); err != nil {
		if user.Avatar != oldAvatar {
			us.upload.remove(ctx, user.Avatar)
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		return nil, writeError("update profile", err)
	}

	if user.Avatar != oldAvatar {
		us.upload.remove(ctx, oldAvatar)
	}

	us.log.Info("Profile updated",
		zap.String("user_id", user.ID.String()),
		zap.Bool("password_changed", req.Password != ""),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := us.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.CompanyName != nil {
		user.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	user.Touch()
	if err := us.repo.User.Update(ctx, user); err != nil {
		return nil, writeError("update user", err)
	}

	us.log.Info("User updated by admin", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetCompanies(ctx context.Context) ([]string, error) {
	companies, err := us.repo.User.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("get companies: %w", err)
	}
	return companies, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.find(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		us.log.Warn("Refused to delete admin account", zap.String("user_id", user.ID.String()))
		return ErrProtectedAccount
	}

	if err := us.repo.User.Delete(ctx, user.ID); err != nil {
		return writeError("delete user", err)
	}

	// assignments of a deleted user are dead weight
	removed, err := us.repo.Feature.RemoveUserAssignments(ctx, user.ID)
	if err != nil {
		us.log.Warn("Failed to clean up assignments", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	us.upload.remove(ctx, user.Avatar)

	us.log.Info("User deleted",
		zap.String("user_id", user.ID.String()),
		zap.Int64("features_updated", removed),
	)
	return nil
}

func (us *userService) find(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", ErrInvalidInput)
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return user, nil
}
