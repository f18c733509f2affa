package usecase

import (
	"context"
	"errors"

	"go-prescription-portal/internal/converter"
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"
	"go-prescription-portal/internal/service"
	"go-prescription-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or role")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleMismatch       = errors.New("you are not allowed to perform this action with your current role")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, auth entity.AuthContext, tokenID string) error
	GetCurrentUser(ctx context.Context, auth entity.AuthContext) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	tokenRepo    repository.TokenRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.TokenRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

// Login signs the user in under the requested role. The role must be the one
// stored for the account; there is no password.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	role, err := u.roleRepo.FindByName(ctx, u.db, req.Role)
	if err != nil {
		u.log.Warnf("Failed to find role %s: %+v", req.Role, err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	if user.RoleID != role.ID {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, role.RoleName)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	userID := user.ID
	if err := u.auditService.LogCreate(ctx, u.db, &userID, entity.AuditActionUserLogin, "session", accessTokenID, map[string]interface{}{
		"role": role.RoleName,
	}); err != nil {
		u.log.Warnf("Failed to audit login for %s (non-fatal): %+v", user.ID, err)
	}

	u.log.Infof("User logged in: id=%s, role=%s", user.ID, role.RoleName)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		Role:        role.RoleName,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, auth entity.AuthContext, tokenID string) error {
	if err := u.tokenRepo.Revoke(ctx, auth.UserID, tokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	userID := auth.UserID
	if err := u.auditService.LogDelete(ctx, u.db, &userID, entity.AuditActionUserLogout, "session", tokenID, nil); err != nil {
		u.log.Warnf("Failed to audit logout for %s (non-fatal): %+v", auth.UserID, err)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, auth entity.AuthContext) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, auth.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// requireRole is the usecase-side role gate. Middleware has already checked
// the route; this keeps usecases safe when called from elsewhere.
func requireRole(auth entity.AuthContext, role string) error {
	if !auth.HasRole(role) {
		return ErrRoleMismatch
	}
	return nil
}
