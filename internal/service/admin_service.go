package service

import (
	"errors"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"
	"IEDC_Club/internal/repository/mysql"
	"IEDC_Club/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username or email already taken")
)

// AdminService 后台账号：登录/登出/续签/建号
type AdminService struct {
	repo  *mysql.UserRepository
	rUser *redis.UserRepository
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{
		repo:  &mysql.UserRepository{DB: db},
		rUser: &redis.UserRepository{},
	}
}

func (s *AdminService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	// access 写入 redis，同一账号只保留一个有效会话
	if err = s.rUser.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AdminService) Logout(usrID uint64) error {
	return s.rUser.DeleteUserToken(usrID)
}

func (s *AdminService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// CreateAccount 新建后台账号（仅 IIC 管理员可调，权限在路由层卡）
func (s *AdminService) CreateAccount(username, password, email string, role int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		Role:     role,
	}
	if err := s.repo.Create(user); err != nil {
		if mysql.IsDuplicate(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Bootstrap 启动时确保初始 IIC 管理员存在；密码为空则跳过
func (s *AdminService) Bootstrap(username, password, email string) error {
	if password == "" {
		return nil
	}
	_, err := s.repo.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.CreateAccount(username, password, email, model.RoleIICAdmin)
}
