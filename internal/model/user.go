package model

import "time"

// 后台账号角色
const (
	RoleAdmin    = 1
	RoleIICAdmin = 2
)

// User 后台工作人员账号（普通会员不登录，只有管理端需要账号）
type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:32;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      int    `gorm:"default:1"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
