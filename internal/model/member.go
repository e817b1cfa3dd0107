package model

import "time"

// 会员审核状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Member 注册会员，MemberID 为对外发放的会员号（IEDC+4位数字，入库统一大写）
type Member struct {
	ID         uint64 `gorm:"primaryKey"`
	MemberID   string `gorm:"uniqueIndex;size:16;not null"`
	Name       string `gorm:"size:64;not null"`
	Email      string `gorm:"uniqueIndex;size:64;not null"`
	Department string `gorm:"size:64;not null"`
	Semester   string `gorm:"size:16;not null"` // "1st Semester" ~ "8th Semester"
	Status     string `gorm:"size:16;not null;default:pending"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Member) TableName() string { return "members" }
