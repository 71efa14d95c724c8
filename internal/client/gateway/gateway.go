package gateway

import (
	"context"

	"github.com/yurin-kami/packchann-client/internal/client/models"
)

// Gateway performs authenticated calls against the PackChann server.
type Gateway interface {
	// Session endpoints.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	Ping(ctx context.Context) error
	UpdateUserInfo(ctx context.Context, req models.UpdateUserRequest) (*models.User, error)

	// Package endpoints.
	CheckInPack(ctx context.Context, req models.CheckInRequest) (*models.Pack, error)
	CheckOutPack(ctx context.Context, req models.CheckOutRequest) (*models.Pack, error)
	CreateMailPack(ctx context.Context, req models.MailPackRequest) (*models.Pack, error)
	CancelMailPack(ctx context.Context, req models.CheckOutRequest) (*models.Envelope, error)
	UpdatePackStatus(ctx context.Context, req models.UpdatePackStatusRequest) (*models.Pack, error)
	PackDetails(ctx context.Context, packID int64) (*models.Pack, error)
	PacksByUser(ctx context.Context, userID int64) ([]models.Pack, error)

	// Admin pass-through endpoints.
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminPacks(ctx context.Context, status string) ([]models.Pack, error)
	AdminUpdatePack(ctx context.Context, req models.AdminUpdatePackRequest) (*models.Pack, error)
	AdminDeleteUser(ctx context.Context, userID int64) error

	// SetAccessToken replaces the bearer credential attached to outgoing
	// requests. Pass an empty string to detach.
	SetAccessToken(token string)

	// OnUnauthorized registers the hook fired once per 401 response,
	// regardless of which operation triggered it.
	OnUnauthorized(fn func())
}
