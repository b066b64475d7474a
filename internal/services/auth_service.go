package services

import (
	"context"
	"errors"
	"time"

	"github.com/infoaidtech/backend/internal/auth"
	"github.com/infoaidtech/backend/internal/cache"
	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProfileUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error
	// Logout revokes the presented token until its natural expiry. Without a
	// configured denylist this is a no-op, matching the historical
	// client-side-only logout.
	Logout(ctx context.Context, claims *auth.Claims) error
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type authService struct {
	users    mongorepo.UserRepository
	issuer   *auth.Issuer
	denylist cache.Denylist
}

func NewAuthService(users mongorepo.UserRepository, issuer *auth.Issuer, denylist cache.Denylist) AuthService {
	return &authService{users: users, issuer: issuer, denylist: denylist}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, string, error) {
	const op = "AuthService.Register"

	if name == "" || email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "invalid role", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "user already exists with this email", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to check existing user", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, "", utils.E(utils.CodeInvalidArgument, op, "user already exists with this email", err)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if !user.IsActive {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "account is deactivated", nil)
	}
	if err := utils.CheckPassword(user.Password, password); err != nil {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}

	token, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return user, token, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	const op = "AuthService.UpdateProfile"

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	if upd.Email != nil && *upd.Email != user.Email {
		existing, err := s.users.GetByEmail(ctx, *upd.Email)
		if err == nil && existing.ID != userID {
			return nil, utils.E(utils.CodeInvalidArgument, op, "email is already taken", nil)
		}
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
		}
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}

	if err := s.users.Replace(ctx, user); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "email is already taken", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	const op = "AuthService.ChangePassword"

	if currentPassword == "" || newPassword == "" {
		return utils.E(utils.CodeInvalidArgument, op, "current and new password are required", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	if err := utils.CheckPassword(user.Password, currentPassword); err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "current password is incorrect", nil)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}
	user.Password = hash

	if err := s.users.Replace(ctx, user); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update password", err)
	}
	return nil
}

func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	const op = "AuthService.Logout"

	if s.denylist == nil || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to revoke token", err)
	}
	return nil
}

func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "AuthService.ListUsers"

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}
	return users, nil
}

func (s *authService) DeleteUser(ctx context.Context, id string) error {
	const op = "AuthService.DeleteUser"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "user not found", err)
	}
	if err := s.users.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}
