package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allowed = []string{"1st Semester", "3rd Semester"}

func TestSemesterEligible(t *testing.T) {
	tests := []struct {
		semester string
		want     Verdict
	}{
		{"1st Semester", Verdict{Eligible: true}},
		{"3rd Semester", Verdict{Eligible: true}},
		{"  3rd semester ", Verdict{Eligible: true}},
		{"5th Semester", Verdict{Eligible: false, Reason: ReasonSemesterNotEligible}},
		{"", Verdict{Eligible: false, Reason: ReasonSemesterNotEligible}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SemesterEligible(tt.semester, allowed), tt.semester)
	}
}

func TestDeclarationsEligible(t *testing.T) {
	tests := []struct {
		name       string
		q1, q2, q3 string
		want       Verdict
	}{
		{"no position", "No", "", "Yes", Verdict{Eligible: true}},
		{"will step down", "Yes", "Yes", "Yes", Verdict{Eligible: true}},
		{"refuses to step down", "Yes", "No", "Yes", Verdict{Eligible: false, Reason: ReasonMustStepDown}},
		{"refuses condition", "No", "", "No", Verdict{Eligible: false, Reason: ReasonMustAgreeCondition}},
		// q2 先于 q3 判定
		{"refuses both", "Yes", "No", "No", Verdict{Eligible: false, Reason: ReasonMustStepDown}},
		{"case insensitive", "yes", "YES", " yes ", Verdict{Eligible: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeclarationsEligible(tt.q1, tt.q2, tt.q3))
		})
	}
}

func TestEvaluateOrder(t *testing.T) {
	// 学期不符优先于其他一切
	v := Evaluate("5th Semester", allowed, true, "Yes", "No", "No")
	assert.Equal(t, Verdict{Eligible: false, Reason: ReasonSemesterNotEligible}, v)

	// 学期通过后查重先于声明
	v = Evaluate("1st Semester", allowed, true, "Yes", "No", "No")
	assert.Equal(t, Verdict{Eligible: false, Reason: ReasonAlreadySubmitted}, v)

	v = Evaluate("1st Semester", allowed, false, "No", "", "Yes")
	assert.Equal(t, Verdict{Eligible: true}, v)
}

func TestIsYes(t *testing.T) {
	assert.True(t, IsYes("Yes"))
	assert.True(t, IsYes(" yes "))
	assert.False(t, IsYes("No"))
	assert.False(t, IsYes(""))
	assert.False(t, IsYes("y"))
}
