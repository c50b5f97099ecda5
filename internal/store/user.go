package store

import (
	"context"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// UserStore defines the interface for user and device-link persistence.
type UserStore interface {
	// CreateProfile writes a new user profile row. Profiles are
	// immutable after creation apart from an optional device re-link.
	CreateProfile(ctx context.Context, user *domain.User) error

	// GetProfile retrieves a user profile by UID.
	// Returns ErrUserNotFound if the user does not exist.
	GetProfile(ctx context.Context, uid string) (*domain.User, error)

	// PutDeviceLink writes the device-to-user link. The write is
	// last-writer-wins: a concurrent bootstrap racing on the same
	// device leaves whichever link landed last, which is accepted.
	PutDeviceLink(ctx context.Context, link *domain.DeviceLink) error

	// GetDeviceLink retrieves the link for a device.
	// Returns ErrDeviceLinkNotFound if no user is linked to it.
	GetDeviceLink(ctx context.Context, deviceID string) (*domain.DeviceLink, error)
}
