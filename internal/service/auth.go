package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mgalihpp/inventory-dashboard/internal/events"
	"github.com/mgalihpp/inventory-dashboard/internal/hash"
	"github.com/mgalihpp/inventory-dashboard/internal/logging"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/repo"
	"github.com/mgalihpp/inventory-dashboard/internal/tokens"
)

const msgMissingCredentials = "Missing email or password"

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Events    events.Publisher
}

type LoginResult struct {
	Token string
	Exp   time.Time
	User  *models.User
}

func (s *AuthService) CreateSessionToken(user *models.User, exp time.Time) (string, error) {
	return tokens.SignSession(user.ID.String(), user.Email, exp, s.JWTSecret)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, validation(msgMissingCredentials)
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 404, "reason", "unknown email")
			return nil, notFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !hash.CheckPassword(user.Password, password) {
		l.Warn("login_failed", "status", 401, "reason", "password mismatch", "user_id", user.ID)
		return nil, &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
	}

	exp := time.Now().Add(tokens.SessionTTL)
	token, err := s.CreateSessionToken(user, exp)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	publish(ctx, s.Events, events.UserTopic, user.ID.String(), map[string]any{
		"type":  "user_logged_in",
		"id":    user.ID,
		"email": user.Email,
	})
	return &LoginResult{Token: token, Exp: exp, User: user}, nil
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, validation(msgMissingCredentials)
	}

	if _, err := s.Repo.FindUserByEmail(ctx, email); err == nil {
		return nil, validation("Email is already taken.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	username, _, _ := strings.Cut(email, "@")
	user := models.User{
		Username: username,
		Email:    email,
		Password: pwHash,
		Role:     models.RoleCustomer,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, validation("Email is already taken.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	publish(ctx, s.Events, events.UserTopic, user.ID.String(), map[string]any{
		"type":  "user_registered",
		"id":    user.ID,
		"email": user.Email,
	})
	return &user, nil
}
