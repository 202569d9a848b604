package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/libreria/bookshop/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-unit-tests", 2*time.Hour, 7*24*time.Hour)
}

// TestGenerateAndParseToken 生成后解析，Claims应原样还原
func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "alice@example.com", "Alice", "Smith", "CLIENT")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.FirstName)
	assert.Equal(t, "Smith", claims.LastName)
	assert.Equal(t, "CLIENT", claims.Role)
	assert.Equal(t, "bookshop", claims.Issuer)
}

// TestParseToken_WrongSecret 密钥不匹配时拒绝
func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(1, "bob@example.com", "Bob", "Lee", "MANAGER")
	require.NoError(t, err)

	other := NewManager("another-secret", 2*time.Hour, 7*24*time.Hour)
	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestParseToken_Expired 过期Token返回专门的错误
func TestParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret-key-for-unit-tests", -time.Minute, 7*24*time.Hour)
	pair, err := m.GenerateToken(1, "bob@example.com", "Bob", "Lee", "CLIENT")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestParseToken_Garbage 非法字符串
func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	_, err := m.ParseToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestRefreshAccessToken 刷新后的Token保留身份信息
func TestRefreshAccessToken(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(7, "carol@example.com", "Carol", "Wang", "MANAGER")
	require.NoError(t, err)

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "MANAGER", claims.Role)
}
