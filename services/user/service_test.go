package user

import (
	"context"
	"testing"

	collectionRepo "akanuke/database/repository/collection"
	userRepo "akanuke/database/repository/user"
	"akanuke/models"
	"akanuke/services/navigator"
	"akanuke/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultUserService {
	return &DefaultUserService{
		Repo:     userRepo.NewMemoryUserRepo(),
		Store:    collectionRepo.NewMemoryStore(),
		Sessions: NewMemorySessionStore(),
		Nav:      navigator.NewRegistry(),
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("creates the account and opens a session", func(t *testing.T) {
		resp, err := svc.Register(ctx, "Taro", "taro@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Taro", resp.Name)
		assert.False(t, resp.Guest)
		assert.True(t, svc.HasSession(ctx, resp.ID))

		profile, err := svc.Profile(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Taro", profile.Name)
	})

	t.Run("duplicate email leaves the accounts untouched", func(t *testing.T) {
		repo := svc.Repo.(*userRepo.MemoryUserRepo)
		before := repo.Count()

		_, err := svc.Register(ctx, "Jiro", "taro@example.com", "another1")
		var dup DuplicateEmailError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "taro@example.com", dup.Email)
		assert.Equal(t, before, repo.Count())
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "a@example.com", "secret123")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	reg, err := svc.Register(ctx, "Taro", "taro@example.com", "secret123")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "taro@example.com", "wrong")
		var invalid InvalidCredentialsError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret123")
		var invalid InvalidCredentialsError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("success syncs the profile name from the account", func(t *testing.T) {
		// Drift the stored profile name, then log in again.
		require.NoError(t, svc.Store.Save(ctx, reg.ID, utils.KeyUserProfile, models.UserProfile{Name: "drifted"}))

		resp, err := svc.Login(ctx, "taro@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, reg.ID, resp.ID)

		profile, err := svc.Profile(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Taro", profile.Name)
	})
}

func TestGuestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.GuestLogin(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Guest)
	assert.True(t, IsGuest(resp.ID))
	assert.True(t, svc.HasSession(ctx, resp.ID))

	profile, err := svc.Profile(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guest", profile.Name)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("clears session and resets navigation", func(t *testing.T) {
		resp, err := svc.Register(ctx, "Taro", "taro@example.com", "secret123")
		require.NoError(t, err)

		nav := svc.Nav.Get(resp.ID)
		nav.Navigate(navigator.ViewCoach)

		require.NoError(t, svc.Logout(ctx, resp.ID))
		assert.False(t, svc.HasSession(ctx, resp.ID))
		assert.Equal(t, navigator.ViewHome, nav.Snapshot().CurrentView)
	})

	t.Run("guest logout schedules the data sweep", func(t *testing.T) {
		var swept []string
		svc.Sweep = func(owner string) { swept = append(swept, owner) }

		guest, err := svc.GuestLogin(ctx)
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, guest.ID))
		assert.Equal(t, []string{guest.ID}, swept)

		// Account logouts never sweep.
		acc, err := svc.Register(ctx, "Jiro", "jiro@example.com", "secret123")
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, acc.ID))
		assert.Len(t, swept, 1)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Register(ctx, "Taro", "taro@example.com", "secret123")
	require.NoError(t, err)

	height := "170"
	merged, err := svc.UpdateProfile(ctx, resp.ID, models.ProfileUpdate{Height: &height})
	require.NoError(t, err)
	assert.Equal(t, "170", merged.Height)
	assert.Equal(t, "Taro", merged.Name)

	concerns := "猫背"
	merged, err = svc.UpdateProfile(ctx, resp.ID, models.ProfileUpdate{Concerns: &concerns})
	require.NoError(t, err)
	assert.Equal(t, "170", merged.Height)
	assert.Equal(t, "猫背", merged.Concerns)
}

func TestSessionTokenHash(t *testing.T) {
	ctx := context.Background()
	sessions := NewMemorySessionStore()

	require.NoError(t, sessions.Mark(ctx, "u1", "hash-1"))
	hash, err := sessions.TokenHash(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", hash)

	require.NoError(t, sessions.Clear(ctx, "u1"))
	hash, err = sessions.TokenHash(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, hash)
}
