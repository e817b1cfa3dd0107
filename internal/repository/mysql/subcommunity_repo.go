package mysql

import (
	"IEDC_Club/internal/model"

	"gorm.io/gorm"
)

type SubCommunityRepository struct {
	DB *gorm.DB
}

func (r *SubCommunityRepository) Create(c *model.SubCommunity) error {
	return r.DB.Create(c).Error
}

func (r *SubCommunityRepository) List() ([]model.SubCommunity, error) {
	var list []model.SubCommunity
	err := r.DB.Order("name asc").Find(&list).Error
	return list, err
}

func (r *SubCommunityRepository) DeleteByName(name string) error {
	res := r.DB.Where("name = ?", name).Delete(&model.SubCommunity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type TeamMemberRepository struct {
	DB *gorm.DB
}

func (r *TeamMemberRepository) Create(m *model.TeamMember) error {
	return r.DB.Create(m).Error
}

// List 名单按届别倒序、同届按角色排序
func (r *TeamMemberRepository) List() ([]model.TeamMember, error) {
	var list []model.TeamMember
	err := r.DB.Order("year desc, role asc").Find(&list).Error
	return list, err
}

func (r *TeamMemberRepository) DeleteByID(id uint64) error {
	res := r.DB.Delete(&model.TeamMember{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
