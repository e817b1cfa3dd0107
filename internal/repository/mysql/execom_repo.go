package mysql

import (
	"encoding/json"
	"errors"
	"time"

	"IEDC_Club/internal/model"

	"gorm.io/gorm"
)

type ExecomRepository struct {
	DB *gorm.DB
}

// Create 落库一份申请并在同事务写 submitted 事件。
// 一人一份由 member_id 唯一索引兜底，冲突时返回 gorm.ErrDuplicatedKey
func (r *ExecomRepository) Create(app *model.ExecomApplication) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "submitted", app.MemberID, "")
	})
}

func (r *ExecomRepository) Exists(memberID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ExecomApplication{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *ExecomRepository) FindByMemberID(memberID string) (*model.ExecomApplication, error) {
	var app model.ExecomApplication
	err := r.DB.Where("member_id = ?", memberID).First(&app).Error
	return &app, err
}

func (r *ExecomRepository) ListAll() ([]model.ExecomApplication, error) {
	var list []model.ExecomApplication
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}

// SetStatus 审核：状态、审核人、审核时间一次更新，幂等（重复审批不报错）。
// 未命中返回 gorm.ErrRecordNotFound
func (r *ExecomRepository) SetStatus(memberID, status, reviewer string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var app model.ExecomApplication
		if err := tx.Where("member_id = ?", memberID).First(&app).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := tx.Model(&model.ExecomApplication{}).
			Where("member_id = ?", memberID).
			Updates(map[string]any{
				"status":      status,
				"reviewed_by": reviewer,
				"reviewed_at": now,
			}).Error; err != nil {
			return err
		}
		return insertOutbox(tx, status, memberID, reviewer)
	})
}

// Delete 硬删除申请，未命中返回 gorm.ErrRecordNotFound
func (r *ExecomRepository) Delete(memberID, reviewer string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("member_id = ?", memberID).Delete(&model.ExecomApplication{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return insertOutbox(tx, "deleted", memberID, reviewer)
	})
}

// IsDuplicate 判断是否唯一索引冲突
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// insertOutbox 与业务写入同事务落事件，投递交给后台 relay
func insertOutbox(tx *gorm.DB, event, memberID, reviewer string) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"member_id":  memberID,
		"event":      event,
		"reviewer":   reviewer,
	})
	ob := &model.ModerationOutbox{
		EventType: event,
		MemberID:  memberID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
