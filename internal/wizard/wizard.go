package wizard

import (
	"context"
	"errors"

	"IEDC_Club/internal/pkg"
)

// Step 向导所处的步骤/终态
type Step int

const (
	StepEnterID Step = iota
	StepQ1
	StepQ2
	StepQ3
	StepMotivation
	StepExperience
	StepVision
	StepSuccess
	StepIneligible
	StepFailed
)

var (
	ErrEmptyAnswer    = errors.New("answer required")
	ErrWrongStep      = errors.New("operation not allowed in current step")
	ErrMemberNotFound = errors.New("member not found")
	// ErrConflict 后端判重冲突。超时重试后收到冲突说明提交其实成功了，
	// 向导把它当作成功处理
	ErrConflict = errors.New("already submitted")
)

// MemberInfo 公开查询回来的会员信息子集
type MemberInfo struct {
	MemberID   string
	Name       string
	Department string
	Semester   string
}

// Answers 向导收集的全部作答
type Answers struct {
	Q1 string
	Q2 string
	Q3 string

	Motivation string
	Role       string
	Skills     string

	Experience string
	Area       string

	Time   string
	Vision string
}

// Submission 最终提交体
type Submission struct {
	MemberID string
	Answers
}

// Backend 向导依赖的远端能力：查会员、查重、提交。
// Lookup 未命中返回 ErrMemberNotFound，Submit 判重冲突返回 ErrConflict
type Backend interface {
	Lookup(ctx context.Context, memberID string) (*MemberInfo, error)
	CheckExists(ctx context.Context, memberID string) (bool, error)
	Submit(ctx context.Context, sub Submission) error
}

// Wizard 执委会报名向导。单人单会话的协作式状态机：
// 同一时刻只在一个步骤上，网络调用逐个等待完成，没有并发写入
type Wizard struct {
	backend Backend
	allowed []string

	step    Step
	member  *MemberInfo
	answers Answers
	reason  string
}

func New(backend Backend, allowedSemesters []string) *Wizard {
	return &Wizard{backend: backend, allowed: allowedSemesters, step: StepEnterID}
}

func (w *Wizard) Current() Step       { return w.step }
func (w *Wizard) Reason() string      { return w.reason }
func (w *Wizard) Member() *MemberInfo { return w.member }
func (w *Wizard) Answers() Answers    { return w.answers }

// Start 输入会员号：查会员、学期预检、查重。
// 会员号不存在属于可纠正输入，停留在 EnterID 返回错误；
// 学期不符或已提交进入 Ineligible 终态
func (w *Wizard) Start(ctx context.Context, memberID string) error {
	if w.step != StepEnterID {
		return ErrWrongStep
	}
	id := pkg.NormalizeMemberID(memberID)
	if id == "" {
		return ErrEmptyAnswer
	}

	m, err := w.backend.Lookup(ctx, id)
	if err != nil {
		return err
	}

	if v := pkg.SemesterEligible(m.Semester, w.allowed); !v.Eligible {
		w.terminate(v.Reason)
		return nil
	}

	exists, err := w.backend.CheckExists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		w.terminate(pkg.ReasonAlreadySubmitted)
		return nil
	}

	w.member = m
	w.step = StepQ1
	return nil
}

// AnswerQ1 是否已任其他职务。回答 No 时跳过 Q2 直达 Q3
func (w *Wizard) AnswerQ1(answer string) error {
	if w.step != StepQ1 {
		return ErrWrongStep
	}
	if answer == "" {
		return ErrEmptyAnswer
	}
	w.answers.Q1 = answer
	if pkg.IsYes(answer) {
		w.step = StepQ2
	} else {
		w.answers.Q2 = ""
		w.step = StepQ3
	}
	return nil
}

// AnswerQ2 是否愿意卸任原职务。不愿意则直接出局
func (w *Wizard) AnswerQ2(answer string) error {
	if w.step != StepQ2 {
		return ErrWrongStep
	}
	if answer == "" {
		return ErrEmptyAnswer
	}
	w.answers.Q2 = answer
	if !pkg.IsYes(answer) {
		w.terminate(pkg.ReasonMustStepDown)
		return nil
	}
	w.step = StepQ3
	return nil
}

// AnswerQ3 是否同意违纪免职条款
func (w *Wizard) AnswerQ3(answer string) error {
	if w.step != StepQ3 {
		return ErrWrongStep
	}
	if answer == "" {
		return ErrEmptyAnswer
	}
	w.answers.Q3 = answer
	if !pkg.IsYes(answer) {
		w.terminate(pkg.ReasonMustAgreeCondition)
		return nil
	}
	w.step = StepMotivation
	return nil
}

func (w *Wizard) SetMotivation(motivation, role, skills string) error {
	if w.step != StepMotivation {
		return ErrWrongStep
	}
	if motivation == "" || role == "" || skills == "" {
		return ErrEmptyAnswer
	}
	w.answers.Motivation = motivation
	w.answers.Role = role
	w.answers.Skills = skills
	w.step = StepExperience
	return nil
}

func (w *Wizard) SetExperience(experience, area string) error {
	if w.step != StepExperience {
		return ErrWrongStep
	}
	if experience == "" || area == "" {
		return ErrEmptyAnswer
	}
	w.answers.Experience = experience
	w.answers.Area = area
	w.step = StepVision
	return nil
}

func (w *Wizard) SetVision(timeCommitment, vision string) error {
	if w.step != StepVision {
		return ErrWrongStep
	}
	if timeCommitment == "" || vision == "" {
		return ErrEmptyAnswer
	}
	w.answers.Time = timeCommitment
	w.answers.Vision = vision
	return nil
}

// Back 回到上一步，只清被重新询问的字段，保留更早的作答。
// 失败态回到 Vision 不清字段；终态（成功/不合格）只能 Restart
func (w *Wizard) Back() error {
	switch w.step {
	case StepQ1:
		w.member = nil
		w.step = StepEnterID
	case StepQ2:
		w.answers.Q1 = ""
		w.step = StepQ1
	case StepQ3:
		if pkg.IsYes(w.answers.Q1) {
			w.answers.Q2 = ""
			w.step = StepQ2
		} else {
			w.answers.Q1 = ""
			w.step = StepQ1
		}
	case StepMotivation:
		w.answers.Q3 = ""
		w.step = StepQ3
	case StepExperience:
		w.answers.Motivation = ""
		w.answers.Role = ""
		w.answers.Skills = ""
		w.step = StepMotivation
	case StepVision:
		w.answers.Experience = ""
		w.answers.Area = ""
		w.step = StepExperience
	case StepFailed:
		w.step = StepVision
	default:
		return ErrWrongStep
	}
	return nil
}

// Restart 任意状态清空重来
func (w *Wizard) Restart() {
	w.member = nil
	w.answers = Answers{}
	w.reason = ""
	w.step = StepEnterID
}

// Submit 最终提交。失败停在 Failed 可重试且不丢作答；
// 冲突视为成功（见 ErrConflict 注释）；成功后不可再提交
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepVision && w.step != StepFailed {
		return ErrWrongStep
	}
	if w.answers.Time == "" || w.answers.Vision == "" {
		return ErrEmptyAnswer
	}

	err := w.backend.Submit(ctx, Submission{MemberID: w.member.MemberID, Answers: w.answers})
	if err != nil && !errors.Is(err, ErrConflict) {
		w.step = StepFailed
		return err
	}
	w.step = StepSuccess
	return nil
}

func (w *Wizard) terminate(reason string) {
	w.reason = reason
	w.step = StepIneligible
}
