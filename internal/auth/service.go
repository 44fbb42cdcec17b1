package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"profranchising/internal/apperr"
	"profranchising/internal/logger"
)

const invalidCredentials = "Username and/or password invalid"

type RegisterInput struct {
	Name     string `json:"name" validate:"notblank,min=2,max=255"`
	Username string `json:"username" validate:"notblank,min=2,max=255"`
	Password string `json:"password" validate:"notblank,min=6,max=72"`
	Role     Role   `json:"role" validate:"oneof=admin user"`
}

type LoginInput struct {
	Username string `json:"username" validate:"notblank,min=2"`
	Password string `json:"password" validate:"notblank,min=6,max=72"`
}

type Service struct {
	users  UserRepository
	logins LoginRepository
	tokens *TokenIssuer
	log    *zap.Logger
}

func NewService(users UserRepository, logins LoginRepository, tokens *TokenIssuer, log *zap.Logger) *Service {
	return &Service{users: users, logins: logins, tokens: tokens, log: logger.OrNop(log)}
}

// REGISTER
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	exists, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, apperr.Internal("check username", err)
	}
	if exists {
		return nil, apperr.Validation("Username already exists.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(in.Password),
		bcrypt.DefaultCost,
	)
	// max=72 counts characters; bcrypt's limit is in bytes
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Validation(`"password" length must be less than or equal to 72 bytes long`)
	}
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	user := &User{
		Name:     in.Name,
		Username: in.Username,
		Password: string(hashedPassword),
		Role:     in.Role,
	}
	// ExistsByUsername is only a fast path; Save decides concurrent races.
	err = s.users.Save(ctx, user)
	if errors.Is(err, ErrUsernameTaken) {
		return nil, apperr.Validation("Username already exists.")
	}
	if err != nil {
		return nil, apperr.Internal("save user", err)
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return nil, apperr.Internal("issue token", err)
	}

	s.log.Info("user registered", zap.String("username", user.Username), zap.String("role", string(user.Role)))

	return &Registration{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}, nil
}

// LOGIN verifies the credentials, appends to the login history and returns a token.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, ErrUserNotFound) {
		return "", apperr.Validation(invalidCredentials)
	}
	if err != nil {
		return "", apperr.Internal("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", apperr.Validation(invalidCredentials)
	}

	if err := s.logins.Record(ctx, &Login{Username: user.Username, Date: time.Now().UTC()}); err != nil {
		return "", apperr.Internal("record login", err)
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return "", apperr.Internal("issue token", err)
	}
	return token, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list users", err)
	}
	return users, nil
}

// Identify resolves a bearer token to a username.
func (s *Service) Identify(token string) (string, error) {
	username, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", apperr.Unauthorized("%s", err.Error())
	}
	return username, nil
}
