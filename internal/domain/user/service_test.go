package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// fakeRepo 内存版Repository（测试用）
type fakeRepo struct {
	users  map[string]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User), nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Email] = u
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func TestRegister_Success(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Register(context.Background(), "alice@example.com", "passw0rd", "Alice", "Smith")
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleClient, u.Role)
	assert.NotEqual(t, "passw0rd", u.Password, "密码必须加密存储")
	assert.Equal(t, "Alice Smith", u.FullName())
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), "not-an-email", "passw0rd", "Alice", "Smith")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := []string{"short1", "allletters", "12345678", "way-too-long-password-over-20-chars1"}
	for _, pwd := range cases {
		_, err := svc.Register(context.Background(), "bob@example.com", pwd, "Bob", "Lee")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "password=%q", pwd)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), "alice@example.com", "passw0rd", "Alice", "Smith")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "passw0rd", "Alice", "Smith")
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
}

func TestLogin_Success(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), "alice@example.com", "passw0rd", "Alice", "Smith")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "alice@example.com", "passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), "alice@example.com", "passw0rd", "Alice", "Smith")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

// TestLogin_UnknownEmail 用户不存在时返回与密码错误相同的错误（防止邮箱枚举）
func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Login(context.Background(), "ghost@example.com", "passw0rd")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("MANAGER")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, r)

	_, ok = ParseRole("ADMIN")
	assert.False(t, ok)

	_, ok = ParseRole("client")
	assert.False(t, ok, "角色区分大小写")
}
