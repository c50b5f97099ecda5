package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

func TestBootstrapCreatesAndLinksUser(t *testing.T) {
	users := newFakeUserStore()
	s := NewUserService(users, nil)
	ctx := context.Background()

	first, err := s.Bootstrap(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, first.IsNew)
	assert.NotEmpty(t, first.UID)

	// A second bootstrap from the same device resolves to the same
	// user without creating a new profile.
	second, err := s.Bootstrap(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.UID, second.UID)
	assert.Len(t, users.profiles, 1)

	profile, err := s.GetProfile(ctx, first.UID)
	require.NoError(t, err)
	assert.Equal(t, "device-1", profile.DeviceID)
}

func TestBootstrapWithoutDeviceAlwaysCreates(t *testing.T) {
	users := newFakeUserStore()
	s := NewUserService(users, nil)
	ctx := context.Background()

	first, err := s.Bootstrap(ctx, "")
	require.NoError(t, err)
	second, err := s.Bootstrap(ctx, "")
	require.NoError(t, err)

	assert.True(t, first.IsNew)
	assert.True(t, second.IsNew)
	assert.NotEqual(t, first.UID, second.UID)
	assert.Empty(t, users.links)
}

func TestBootstrapPropagatesStoreErrors(t *testing.T) {
	users := newFakeUserStore()
	users.err = errors.New("throttled")
	s := NewUserService(users, nil)

	_, err := s.Bootstrap(context.Background(), "device-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrDeviceLinkNotFound)
}

func TestGetProfileUnknownUser(t *testing.T) {
	s := NewUserService(newFakeUserStore(), nil)

	_, err := s.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
