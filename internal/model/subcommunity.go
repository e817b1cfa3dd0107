package model

import "time"

// SubCommunity 子社区介绍页数据
type SubCommunity struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	Lead        string `gorm:"size:64"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SubCommunity) TableName() string { return "sub_communities" }

// TeamMember 团队名单条目（届别+角色）
type TeamMember struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"size:64;not null"`
	Role         string `gorm:"size:64;not null"`
	SubCommunity string `gorm:"size:64;index"`
	Year         string `gorm:"size:16;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TeamMember) TableName() string { return "team_members" }
