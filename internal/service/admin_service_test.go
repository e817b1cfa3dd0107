package service

import (
	"testing"

	"IEDC_Club/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBootstrapCreatesInitialAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	require.NoError(t, svc.Bootstrap("iic", "secret", "iic@example.com"))

	var user model.User
	require.NoError(t, db.Where("username = ?", "iic").First(&user).Error)
	assert.Equal(t, model.RoleIICAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	// 已存在则跳过，不覆盖密码
	require.NoError(t, svc.Bootstrap("iic", "changed", "iic@example.com"))
	require.NoError(t, db.Where("username = ?", "iic").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestBootstrapSkipsWithoutPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	require.NoError(t, svc.Bootstrap("iic", "", "iic@example.com"))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAccountDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	require.NoError(t, svc.CreateAccount("mod", "pw123456", "mod@example.com", model.RoleAdmin))
	assert.ErrorIs(t, svc.CreateAccount("mod", "pw123456", "other@example.com", model.RoleAdmin), ErrUsernameTaken)
	assert.ErrorIs(t, svc.CreateAccount("mod2", "pw123456", "mod@example.com", model.RoleAdmin), ErrUsernameTaken)
}
