package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/store/memory"
)

func TestEnsureDirector_CreatesAccount(t *testing.T) {
	dir := memory.New()

	uid, err := auth.EnsureDirector(context.Background(), dir, "Admin@SRMOrg.com", "eec@2025", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	user, err := dir.FindByEmail(context.Background(), "admin@srmorg.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, auth.RoleDirector, user.Role)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "eec@2025"))
}

func TestEnsureDirector_Idempotent(t *testing.T) {
	dir := memory.New()
	ctx := context.Background()

	first, err := auth.EnsureDirector(ctx, dir, "admin@srmorg.com", "eec@2025", "Admin")
	require.NoError(t, err)

	// Re-running with a different password must not rotate credentials.
	second, err := auth.EnsureDirector(ctx, dir, "admin@srmorg.com", "other-password", "Admin")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	user, err := dir.FindByUID(ctx, first)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "eec@2025"))
}

func TestEnsureDirector_PromotesExistingUser(t *testing.T) {
	dir := memory.New()
	seedUser(t, dir, "uid-9", "staff@srmorg.com", "s3cret", "Staff")

	uid, err := auth.EnsureDirector(context.Background(), dir, "staff@srmorg.com", "ignored", "Staff")
	require.NoError(t, err)
	assert.Equal(t, "uid-9", uid)

	user, err := dir.FindByUID(context.Background(), "uid-9")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleDirector, user.Role)
	// Existing credentials survive promotion.
	assert.True(t, auth.CheckPassword(user.PasswordHash, "s3cret"))
}
