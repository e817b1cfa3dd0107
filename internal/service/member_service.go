package service

import (
	"errors"
	"log"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"
	"IEDC_Club/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrMemberNotFound = errors.New("member not found")
)

// Mailer 通知发送能力，发送失败只记日志不影响主流程
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg pkg.SMTPConfig
}

func NewSMTPMailer(cfg pkg.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	return pkg.SendEmail(m.cfg, to, subject, htmlBody)
}

type MemberService struct {
	repo   *mysql.MemberRepository
	mailer Mailer
}

func NewMemberService(db *gorm.DB, mailer Mailer) *MemberService {
	return &MemberService{
		repo:   &mysql.MemberRepository{DB: db},
		mailer: mailer,
	}
}

// Register 公开注册：发会员号、落库、异步发确认邮件
func (s *MemberService) Register(name, email, department, semester string) (*model.Member, error) {
	// 会员号随机生成，撞唯一索引就换一个重试
	for i := 0; i < 5; i++ {
		memberID, err := pkg.NewMemberID()
		if err != nil {
			return nil, err
		}
		m := &model.Member{
			MemberID:   memberID,
			Name:       name,
			Email:      email,
			Department: department,
			Semester:   semester,
			Status:     model.StatusPending,
		}
		err = s.repo.Create(m)
		if err == nil {
			s.notify(m.Email, "Your club membership ID", pkg.MembershipHTML(m.Name, m.MemberID))
			return m, nil
		}
		if mysql.IsDuplicate(err) {
			// 冲突的可能是邮箱也可能是会员号，查一下邮箱再决定是否重试
			if _, ferr := s.repo.FindByEmail(email); ferr == nil {
				return nil, ErrEmailTaken
			}
			continue
		}
		return nil, err
	}
	return nil, errors.New("member id allocation failed")
}

// Lookup 公开查询，供报名向导核对身份
func (s *MemberService) Lookup(memberID string) (*model.Member, error) {
	m, err := s.repo.FindByMemberID(pkg.NormalizeMemberID(memberID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return m, err
}

func (s *MemberService) List() ([]model.Member, error) {
	return s.repo.List()
}

// SetStatus 会员审核（approved/rejected）
func (s *MemberService) SetStatus(memberID, status string) error {
	err := s.repo.UpdateStatus(pkg.NormalizeMemberID(memberID), status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	return err
}

func (s *MemberService) Delete(memberID string) error {
	err := s.repo.Delete(pkg.NormalizeMemberID(memberID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	return err
}

// notify 尽力而为的通知，失败只留日志
func (s *MemberService) notify(to, subject, html string) {
	if s.mailer == nil || to == "" {
		return
	}
	go func() {
		if err := s.mailer.Send(to, subject, html); err != nil {
			log.Printf("send mail to %s failed: %v", to, err)
		}
	}()
}
