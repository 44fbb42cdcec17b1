// Package policy decides which callers may perform which catalog operations.
package policy

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"profranchising/internal/apperr"
	"profranchising/internal/auth"
	"profranchising/internal/logger"
)

// Capability names an operation on the ingredient or product catalogs.
type Capability string

const (
	List        Capability = "list"
	Get         Capability = "get"
	Create      Capability = "create"
	Update      Capability = "update"
	Delete      Capability = "delete"
	UploadImage Capability = "uploadImage"
)

// Mutating reports whether c changes catalog state.
func (c Capability) Mutating() bool {
	switch c {
	case Create, Update, Delete, UploadImage:
		return true
	}
	return false
}

// UserFinder is the slice of the user store the gate needs.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*auth.User, error)
}

type Gate struct {
	users UserFinder
	log   *zap.Logger
}

func NewGate(users UserFinder, log *zap.Logger) *Gate {
	return &Gate{users: users, log: logger.OrNop(log)}
}

// Authorize fails with Unauthorized for unknown callers and Forbidden when a
// non-admin asks for a mutating capability.
func (g *Gate) Authorize(ctx context.Context, username string, capability Capability) error {
	if username == "" {
		return apperr.Unauthorized("jwt must be provided")
	}

	user, err := g.users.FindByUsername(ctx, username)
	if errors.Is(err, auth.ErrUserNotFound) {
		return apperr.Unauthorized("User not found")
	}
	if err != nil {
		return apperr.Internal("find caller", err)
	}

	if capability.Mutating() && user.Role != auth.RoleAdmin {
		g.log.Info("permission denied",
			zap.String("username", username),
			zap.String("role", string(user.Role)),
			zap.String("capability", string(capability)),
		)
		return apperr.Forbidden("Permission denied")
	}
	return nil
}
