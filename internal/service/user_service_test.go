package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/pkg/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*fakeUserRepo, *fakePermissionRepo, UserService) {
	userRepo := newFakeUserRepo()
	permissionRepo := newFakePermissionRepo()
	userRepo.permissions = permissionRepo
	return userRepo, permissionRepo, NewUserService(userRepo, newFakeRoleRepo())
}

func TestRegisterCreatesPublicPermissionRow(t *testing.T) {
	userRepo, permissionRepo, svc := newUserFixture()
	ctx := context.Background()

	err := svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")})
	require.NoError(t, err)

	user, err := userRepo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	// 密码落库前已经过哈希
	assert.NotEqual(t, "secret1", *user.Password)

	permission := permissionRepo.permissions[user.ID]
	require.NotNil(t, permission)
	assert.Equal(t, consts.VisibilityPublic, permission.Watched)
	assert.Equal(t, consts.VisibilityPublic, permission.Favorites)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, _, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")}))
	err := svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("other66")})
	assert.ErrorIs(t, err, ErrUserUsernameExist)
}

func TestRegisterMissingFields(t *testing.T) {
	_, _, svc := newUserFixture()

	err := svc.Register(context.Background(), &dto.RegisterDTO{Username: util.PtrString("alice")})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestLogin(t *testing.T) {
	_, _, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")}))

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")}))

	_, err := svc.Login(ctx, &dto.CredentialDTO{Username: util.PtrString("alice"), Password: util.PtrString("wrong99")})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginUnknownUser(t *testing.T) {
	_, _, svc := newUserFixture()

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Username: util.PtrString("ghost"), Password: util.PtrString("secret1")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPurgeUser(t *testing.T) {
	userRepo, permissionRepo, svc := newUserFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &dto.RegisterDTO{Username: util.PtrString("alice"), Password: util.PtrString("secret1")}))
	user, err := userRepo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.PurgeUser(ctx, user.ID))
	assert.Empty(t, userRepo.users)
	assert.Empty(t, permissionRepo.permissions)

	err = svc.PurgeUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
