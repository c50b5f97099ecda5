package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an app user identity created at bootstrap.
// The UID is an opaque identifier; DeviceID is the device the user
// bootstrapped from, if any, and is immutable after creation apart
// from an optional re-link.
type User struct {
	UID       string    `json:"uid"`
	DeviceID  string    `json:"deviceId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a User with a freshly generated UID.
// deviceID may be empty when the client did not supply one.
func NewUser(deviceID string) *User {
	return &User{
		UID:       uuid.NewString(),
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks that the User has valid data.
func (u *User) Validate() error {
	if u.UID == "" {
		return ErrUserIDEmpty
	}
	return nil
}

// DeviceLink maps a device to the user that bootstrapped from it.
// One device links to at most one user; concurrent bootstraps race
// last-writer-wins on this key, which is accepted behaviour.
type DeviceLink struct {
	DeviceID string    `json:"deviceId"`
	UID      string    `json:"uid"`
	LinkedAt time.Time `json:"linkedAt"`
}

// NewDeviceLink creates a DeviceLink for the given device and user.
func NewDeviceLink(deviceID, uid string) *DeviceLink {
	return &DeviceLink{
		DeviceID: deviceID,
		UID:      uid,
		LinkedAt: time.Now().UTC(),
	}
}
