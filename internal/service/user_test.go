package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgalihpp/inventory-dashboard/internal/hash"
	"github.com/mgalihpp/inventory-dashboard/internal/models"
	"github.com/mgalihpp/inventory-dashboard/internal/transport"
)

func validUser(email string) transport.CreateUserRequest {
	return transport.CreateUserRequest{
		Fullname: "Jane Doe",
		Username: "jane",
		Email:    email,
		Password: "Secret123",
		Address:  "1 Main St",
	}
}

func TestUserService_Create_DefaultsRoleAndHashes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.Users.Create(ctx, validUser("jane@example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, u.Role)
	assert.NotEqual(t, "Secret123", u.Password)
	assert.True(t, hash.CheckPassword(u.Password, "Secret123"))
	assert.Equal(t, "user_created", env.lastEventType())
	assert.Equal(t, u.ID.String(), env.Events.Events[0].Key)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Users.Create(ctx, validUser("dup@example.com"))
	require.NoError(t, err)

	var before int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&before).Error)

	_, err = env.Users.Create(ctx, validUser("dup@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "User already exists", Message(err))

	var after int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestUserService_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateUserRequest
		msg  string
	}{
		{name: "missing all", req: transport.CreateUserRequest{}, msg: "Missing required fields: username, email, password"},
		{name: "missing password", req: transport.CreateUserRequest{Username: "a", Email: "a@b.c"}, msg: "Missing required fields: password"},
		{name: "bad role", req: transport.CreateUserRequest{Username: "a", Email: "a@b.c", Password: "p", Role: "ROOT"}, msg: "Invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Users.Create(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.msg, Message(err))
		})
	}
}

func TestUserService_Update_PartialKeepsOtherFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.Users.Create(ctx, validUser("keep@example.com"))
	require.NoError(t, err)
	oldHash := u.Password

	updated, err := env.Users.Update(ctx, u.ID.String(), transport.PatchUserRequest{Address: ptr("2 Side St")})
	require.NoError(t, err)
	assert.Equal(t, "2 Side St", updated.Address)

	got, err := env.Users.Get(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Fullname)
	assert.Equal(t, "jane", got.Username)
	assert.Equal(t, "keep@example.com", got.Email)
	assert.Equal(t, models.RoleCustomer, got.Role)
	assert.Equal(t, oldHash, got.Password)
	assert.Equal(t, "2 Side St", got.Address)
	assert.Equal(t, "user_updated", env.lastEventType())

	_, err = env.Users.Update(ctx, u.ID.String(), transport.PatchUserRequest{Password: ptr("")})
	require.NoError(t, err)
	got, err = env.Users.Get(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, oldHash, got.Password)

	_, err = env.Users.Update(ctx, u.ID.String(), transport.PatchUserRequest{Password: ptr("NewSecret")})
	require.NoError(t, err)
	got, err = env.Users.Get(ctx, u.ID.String())
	require.NoError(t, err)
	assert.True(t, hash.CheckPassword(got.Password, "NewSecret"))
}

func TestUserService_Update_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.Users.Create(ctx, validUser("a@example.com"))
	require.NoError(t, err)
	_, err = env.Users.Create(ctx, validUser("b@example.com"))
	require.NoError(t, err)

	_, err = env.Users.Update(ctx, a.ID.String(), transport.PatchUserRequest{Email: ptr("b@example.com")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.Users.Update(ctx, a.ID.String(), transport.PatchUserRequest{Email: ptr("a@example.com")})
	assert.NoError(t, err)

	_, err = env.Users.Update(ctx, a.ID.String(), transport.PatchUserRequest{Role: ptr("GOD")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.Users.Update(ctx, a.ID.String(), transport.PatchUserRequest{Username: ptr(" ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.Users.Update(ctx, uuid.NewString(), transport.PatchUserRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "User not found", Message(err))

	_, err = env.Users.Update(ctx, "not-a-uuid", transport.PatchUserRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.Users.Create(ctx, validUser("del@example.com"))
	require.NoError(t, err)

	require.NoError(t, env.Users.Delete(ctx, u.ID.String()))
	assert.Equal(t, "user_deleted", env.lastEventType())

	_, err = env.Users.Get(ctx, u.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	for _, id := range []string{u.ID.String(), uuid.NewString(), "garbage"} {
		err = env.Users.Delete(ctx, id)
		require.Error(t, err, id)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.Equal(t, MsgInternal, Message(err))
	}
}

func TestUserService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"anna", "hanna", "bob"} {
		req := validUser(name + "@example.com")
		req.Username = name
		_, err := env.Users.Create(ctx, req)
		require.NoError(t, err)
	}

	res, err := env.Users.List(ctx, transport.ListQuery{Page: 1, PageSize: 10, Filter: "nna"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
	assert.EqualValues(t, 1, res.Meta.TotalPages)

	res, err = env.Users.List(ctx, transport.ListQuery{Page: 2, PageSize: 2, SortBy: "email", SortOrder: "desc"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Total)
	assert.Len(t, res.Items, 1)
	assert.True(t, res.Meta.HasPrev)
	assert.False(t, res.Meta.HasNext)
}
