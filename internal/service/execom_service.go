package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"
	"IEDC_Club/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrAlreadySubmitted    = errors.New("application already submitted")
	ErrApplicationNotFound = errors.New("application not found")
	ErrCallClosed          = errors.New("execom call is closed")
)

// EligibilityError 资格不符，Reason 直接回给前端展示
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string { return e.Reason }

// SubmitInput 提交申请的全部字段
type SubmitInput struct {
	MemberID           string
	HoldsOtherPosition string
	WillingToStepDown  string
	AgreesRemoval      string
	Motivation         string
	Role               string
	Skills             string
	Experience         string
	Area               string
	TimeCommitment     string
	Vision             string
}

// EnrichedApplication 申请+会员信息，读时 join 出来的展示结构。
// 会员记录被删后 Orphaned 为 true，会员字段留空
type EnrichedApplication struct {
	Application model.ExecomApplication `json:"application"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Department  string                  `json:"department"`
	Semester    string                  `json:"semester"`
	Orphaned    bool                    `json:"orphaned"`
}

type ExecomService struct {
	repo       *mysql.ExecomRepository
	memberRepo *mysql.MemberRepository
	userRepo   *mysql.UserRepository
	mailer     Mailer

	allowedSemesters []string
	open             bool
}

func NewExecomService(db *gorm.DB, mailer Mailer, allowedSemesters []string, open bool) *ExecomService {
	return &ExecomService{
		repo:             &mysql.ExecomRepository{DB: db},
		memberRepo:       &mysql.MemberRepository{DB: db},
		userRepo:         &mysql.UserRepository{DB: db},
		mailer:           mailer,
		allowedSemesters: allowedSemesters,
		open:             open,
	}
}

// CheckExists 向导进入陈述题之前的查重
func (s *ExecomService) CheckExists(memberID string) (bool, error) {
	return s.repo.Exists(pkg.NormalizeMemberID(memberID))
}

// Submit 提交申请。服务端完整复核资格，不信任客户端；
// 一人一份靠唯一索引在插入时兜底，检查和写入之间没有竞态窗口
func (s *ExecomService) Submit(in SubmitInput) error {
	if !s.open {
		return ErrCallClosed
	}

	memberID := pkg.NormalizeMemberID(in.MemberID)
	member, err := s.memberRepo.FindByMemberID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	// 已提交与否交给唯一索引，这里只复核学期和三项声明
	verdict := pkg.Evaluate(member.Semester, s.allowedSemesters, false,
		in.HoldsOtherPosition, in.WillingToStepDown, in.AgreesRemoval)
	if !verdict.Eligible {
		return &EligibilityError{Reason: verdict.Reason}
	}

	app := &model.ExecomApplication{
		MemberID:           memberID,
		HoldsOtherPosition: in.HoldsOtherPosition,
		WillingToStepDown:  in.WillingToStepDown,
		AgreesRemoval:      in.AgreesRemoval,
		Motivation:         in.Motivation,
		Role:               in.Role,
		Skills:             in.Skills,
		Experience:         in.Experience,
		Area:               in.Area,
		TimeCommitment:     in.TimeCommitment,
		Vision:             in.Vision,
		Status:             model.StatusPending,
	}
	if err := s.repo.Create(app); err != nil {
		if mysql.IsDuplicate(err) {
			return ErrAlreadySubmitted
		}
		return err
	}
	return nil
}

// ListEnriched 全量申请列表，按会员号批量取会员信息后在内存里 join。
// 筛选/搜索留给调用方做（社团体量一次全取没问题），导出也基于同一份数据
func (s *ExecomService) ListEnriched() ([]EnrichedApplication, error) {
	apps, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.MemberID)
	}
	members, err := s.memberRepo.FindByMemberIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Member, len(members))
	for _, m := range members {
		byID[m.MemberID] = m
	}

	out := make([]EnrichedApplication, 0, len(apps))
	for _, a := range apps {
		item := EnrichedApplication{Application: a}
		if m, ok := byID[a.MemberID]; ok {
			item.Name = m.Name
			item.Email = m.Email
			item.Department = m.Department
			item.Semester = m.Semester
		} else {
			// 会员记录已删，申请保留并标记，由管理员决定去留
			item.Orphaned = true
		}
		out = append(out, item)
	}
	return out, nil
}

// Approve 通过申请并异步发邀请邮件
func (s *ExecomService) Approve(memberID string, reviewerID uint64) error {
	id := pkg.NormalizeMemberID(memberID)
	if err := s.setStatus(id, model.StatusApproved, reviewerID); err != nil {
		return err
	}
	if member, err := s.memberRepo.FindByMemberID(id); err == nil {
		s.notify(member.Email, "Execom Call - application approved", pkg.InvitationHTML(member.Name))
	}
	return nil
}

func (s *ExecomService) Reject(memberID string, reviewerID uint64) error {
	return s.setStatus(pkg.NormalizeMemberID(memberID), model.StatusRejected, reviewerID)
}

func (s *ExecomService) Delete(memberID string, reviewerID uint64) error {
	err := s.repo.Delete(pkg.NormalizeMemberID(memberID), s.reviewerName(reviewerID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}

func (s *ExecomService) setStatus(memberID, status string, reviewerID uint64) error {
	err := s.repo.SetStatus(memberID, status, s.reviewerName(reviewerID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}

// reviewerName 审核人用用户名留痕，查不到就记 ID
func (s *ExecomService) reviewerName(reviewerID uint64) string {
	if reviewerID == 0 {
		return ""
	}
	if u, err := s.userRepo.FindByID(reviewerID); err == nil {
		return u.Username
	}
	return fmt.Sprintf("user:%d", reviewerID)
}

// csvHeader 导出列顺序固定，前端和报表都依赖这个顺序
var csvHeader = []string{
	"membershipId", "name", "email", "department", "submittedAt",
	"holdsOtherPosition", "willingToStepDown", "agreesRemoval",
	"motivation", "role", "skills", "experience", "area", "time", "vision",
}

// ExportCSV 把富化列表序列化成 CSV，含逗号/引号/换行的字段由标准引号转义兜住
func (s *ExecomService) ExportCSV(w io.Writer) error {
	list, err := s.ListEnriched()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, item := range list {
		a := item.Application
		rec := []string{
			a.MemberID, item.Name, item.Email, item.Department,
			a.CreatedAt.UTC().Format(time.RFC3339),
			a.HoldsOtherPosition, a.WillingToStepDown, a.AgreesRemoval,
			a.Motivation, a.Role, a.Skills, a.Experience, a.Area, a.TimeCommitment, a.Vision,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// notify 与 MemberService 同口径：尽力而为，失败只留日志
func (s *ExecomService) notify(to, subject, html string) {
	if s.mailer == nil || to == "" {
		return
	}
	go func() {
		if err := s.mailer.Send(to, subject, html); err != nil {
			log.Printf("send mail to %s failed: %v", to, err)
		}
	}()
}
