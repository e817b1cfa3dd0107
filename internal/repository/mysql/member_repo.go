package mysql

import (
	"IEDC_Club/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) Create(m *model.Member) error {
	return r.DB.Create(m).Error
}

// FindByMemberID 会员号查询，调用方先走 NormalizeMemberID
func (r *MemberRepository) FindByMemberID(memberID string) (*model.Member, error) {
	var m model.Member
	err := r.DB.Where("member_id = ?", memberID).First(&m).Error
	return &m, err
}

func (r *MemberRepository) FindByEmail(email string) (*model.Member, error) {
	var m model.Member
	err := r.DB.Where("email = ?", email).First(&m).Error
	return &m, err
}

// FindByMemberIDs 批量查询，给申请列表做读时 join 用
func (r *MemberRepository) FindByMemberIDs(memberIDs []string) ([]model.Member, error) {
	var list []model.Member
	if len(memberIDs) == 0 {
		return list, nil
	}
	err := r.DB.Where("member_id IN ?", memberIDs).Find(&list).Error
	return list, err
}

func (r *MemberRepository) List() ([]model.Member, error) {
	var list []model.Member
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}

// UpdateStatus 审核会员，未命中返回 gorm.ErrRecordNotFound
func (r *MemberRepository) UpdateStatus(memberID, status string) error {
	res := r.DB.Model(&model.Member{}).
		Where("member_id = ?", memberID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 可能是不存在，也可能是状态没变；区分一下
		var cnt int64
		if err := r.DB.Model(&model.Member{}).Where("member_id = ?", memberID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *MemberRepository) Delete(memberID string) error {
	res := r.DB.Where("member_id = ?", memberID).Delete(&model.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
