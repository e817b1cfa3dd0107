package pkg

import "strings"

// 拒绝原因文案，向导展示和服务端拒绝共用同一份
const (
	ReasonSemesterNotEligible = "semester not eligible"
	ReasonAlreadySubmitted    = "already submitted"
	ReasonMustStepDown        = "must be willing to step down"
	ReasonMustAgreeCondition  = "must agree to condition"
)

// Verdict 资格判定结果，只在内存里流转不落库
type Verdict struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func eligible() Verdict           { return Verdict{Eligible: true} }
func ineligible(r string) Verdict { return Verdict{Eligible: false, Reason: r} }

// IsYes 声明题答案归一化判断
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// SemesterEligible 学期白名单判定
func SemesterEligible(semester string, allowed []string) Verdict {
	sem := strings.TrimSpace(semester)
	for _, a := range allowed {
		if strings.EqualFold(sem, strings.TrimSpace(a)) {
			return eligible()
		}
	}
	return ineligible(ReasonSemesterNotEligible)
}

// DeclarationsEligible 三项声明顺序判定：
// q1 已任其他职务且 q2 不愿卸任 -> 拒绝；q3 不同意违纪免职条款 -> 拒绝
func DeclarationsEligible(q1, q2, q3 string) Verdict {
	if IsYes(q1) && !IsYes(q2) {
		return ineligible(ReasonMustStepDown)
	}
	if !IsYes(q3) {
		return ineligible(ReasonMustAgreeCondition)
	}
	return eligible()
}

// Evaluate 完整的资格序列：学期 -> 是否已提交 -> 三项声明。
// 纯函数，向导在客户端展示用，提交接口在服务端强制复核用
func Evaluate(semester string, allowed []string, alreadySubmitted bool, q1, q2, q3 string) Verdict {
	if v := SemesterEligible(semester, allowed); !v.Eligible {
		return v
	}
	if alreadySubmitted {
		return ineligible(ReasonAlreadySubmitted)
	}
	return DeclarationsEligible(q1, q2, q3)
}
