package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/hash"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
	"github.com/mgalihpp/inventory-dashboard/internal/util"
)

const (
	msgUserNotFound = "User not found"
	msgUserExists   = "User already exists"
)

type UserService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *UserService) List(ctx context.Context, q transport.ListQuery) (*ListResult[models.User], error) {
	offset, limit := util.Calculate(q.Page, q.PageSize)
	total, items, err := s.Repo.ListUsers(ctx, q.Filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return newListResult(q, total, items), nil
}

func (s *UserService) Get(ctx context.Context, rawID string) (*models.User, error) {
	id, err := parseLookupID(rawID, msgUserNotFound)
	if err != nil {
		return nil, err
	}
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// emailTaken reports whether email belongs to a user other than self.
func (s *UserService) emailTaken(ctx context.Context, email string, self *models.User) (bool, error) {
	found, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return self == nil || found.ID != self.ID, nil
}

func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.create")

	if err := missing(map[string]string{
		"username": req.Username,
		"email":    req.Email,
		"password": req.Password,
	}, "username", "email", "password"); err != nil {
		return nil, err
	}

	role := models.RoleCustomer
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			return nil, validation("Invalid role")
		}
	}

	email := strings.TrimSpace(req.Email)
	taken, err := s.emailTaken(ctx, email, nil)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		l.Warn("create_user_error", "status", 400, "reason", "email already exists")
		return nil, validation(msgUserExists)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Fullname: req.Fullname,
		Username: req.Username,
		Email:    email,
		Password: pwHash,
		Avatar:   req.Avatar,
		Address:  req.Address,
		Role:     role,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, validation(msgUserExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	publish(ctx, s.Events, events.UserTopic, user.ID.String(), map[string]any{
		"type":     "user_created",
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, rawID string, req transport.PatchUserRequest) (*models.User, error) {
	user, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if blank(req.Username) || blank(req.Email) {
		return nil, validation("Username and email cannot be empty")
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			taken, err := s.emailTaken(ctx, email, user)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, validation(msgUserExists)
			}
		}
		user.Email = email
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, validation("Invalid role")
		}
		user.Role = role
	}
	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Password != nil && *req.Password != "" {
		pwHash, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = pwHash
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, validation(msgUserExists)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	publish(ctx, s.Events, events.UserTopic, user.ID.String(), map[string]any{
		"type":     "user_updated",
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, rawID string) error {
	id, err := parseDeleteID(rawID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	publish(ctx, s.Events, events.UserTopic, id.String(), map[string]any{
		"type": "user_deleted",
		"id":   id,
	})
	return nil
}
