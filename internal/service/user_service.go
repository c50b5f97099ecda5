package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// BootstrapResult is the outcome of a bootstrap call.
type BootstrapResult struct {
	UID   string
	IsNew bool
}

// UserService handles user identity: anonymous bootstrap from a device
// id and profile reads.
type UserService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService with the given user store.
func NewUserService(users store.UserStore, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// Bootstrap resolves a device to a user, creating one on first sight.
// When deviceID is empty a fresh unlinked user is always created.
// Two concurrent bootstraps for one device may both create profiles;
// the device link is last-writer-wins and later calls converge on
// whichever link is observable, which is accepted behaviour.
func (s *UserService) Bootstrap(ctx context.Context, deviceID string) (*BootstrapResult, error) {
	if deviceID != "" {
		link, err := s.users.GetDeviceLink(ctx, deviceID)
		switch {
		case err == nil:
			return &BootstrapResult{UID: link.UID, IsNew: false}, nil
		case !errors.Is(err, store.ErrDeviceLinkNotFound):
			return nil, err
		}
	}

	user := domain.NewUser(deviceID)
	if err := s.users.CreateProfile(ctx, user); err != nil {
		return nil, err
	}
	if deviceID != "" {
		if err := s.users.PutDeviceLink(ctx, domain.NewDeviceLink(deviceID, user.UID)); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "user bootstrapped",
		slog.String("uid", user.UID),
		slog.Bool("device_linked", deviceID != ""))
	return &BootstrapResult{UID: user.UID, IsNew: true}, nil
}

// GetProfile returns the profile for uid, or store.ErrUserNotFound.
func (s *UserService) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	return s.users.GetProfile(ctx, uid)
}
