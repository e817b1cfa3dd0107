package model

import "time"

// ExecomApplication 执委会竞选申请，MemberID 唯一索引保证一人一份
type ExecomApplication struct {
	ID       uint64 `gorm:"primaryKey"`
	MemberID string `gorm:"uniqueIndex;size:16;not null"`

	// 三项声明（Yes/No）
	HoldsOtherPosition string `gorm:"size:8;not null"`
	WillingToStepDown  string `gorm:"size:8"`
	AgreesRemoval      string `gorm:"size:8;not null"`

	// 陈述题
	Motivation     string `gorm:"type:text"`
	Role           string `gorm:"type:text"`
	Skills         string `gorm:"type:text"`
	Experience     string `gorm:"type:text"`
	Area           string `gorm:"type:text"`
	TimeCommitment string `gorm:"type:text"`
	Vision         string `gorm:"type:text"`

	Status     string `gorm:"size:16;not null;default:pending"`
	ReviewedBy string `gorm:"size:32"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ExecomApplication) TableName() string { return "execom_applications" }

// ModerationOutbox 申请生命周期事件表，与业务写入同事务落库后异步投递
type ModerationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // submitted / approved / rejected / deleted
	MemberID  string `gorm:"size:16;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ModerationOutbox) TableName() string { return "moderation_outbox" }
