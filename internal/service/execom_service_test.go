package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"IEDC_Club/internal/model"
	"IEDC_Club/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitHappyPathAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0001", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)

	require.NoError(t, svc.Submit(validSubmit("IEDC0001")))

	exists, err := svc.CheckExists("iedc0001") // 大小写不敏感
	require.NoError(t, err)
	assert.True(t, exists)

	// 二次提交必须拿到冲突，而不是覆盖
	err = svc.Submit(validSubmit("IEDC0001"))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	var count int64
	require.NoError(t, db.Model(&model.ExecomApplication{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitRejectsIneligibleSemesterServerSide(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0007", "5th Semester")
	svc := NewExecomService(db, nil, testSemesters, true)

	// 绕过向导直接调提交也必须被挡下，且不落任何数据
	err := svc.Submit(validSubmit("IEDC0007"))
	var elig *EligibilityError
	require.ErrorAs(t, err, &elig)
	assert.Equal(t, pkg.ReasonSemesterNotEligible, elig.Reason)

	exists, err := svc.CheckExists("IEDC0007")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSubmitDeclarationGates(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0002", "3rd Semester")
	svc := NewExecomService(db, nil, testSemesters, true)

	in := validSubmit("IEDC0002")
	in.HoldsOtherPosition = "Yes"
	in.WillingToStepDown = "No"
	var elig *EligibilityError
	require.ErrorAs(t, svc.Submit(in), &elig)
	assert.Equal(t, pkg.ReasonMustStepDown, elig.Reason)

	in = validSubmit("IEDC0002")
	in.AgreesRemoval = "No"
	require.ErrorAs(t, svc.Submit(in), &elig)
	assert.Equal(t, pkg.ReasonMustAgreeCondition, elig.Reason)
}

func TestSubmitUnknownMemberAndClosedCall(t *testing.T) {
	db := newTestDB(t)
	svc := NewExecomService(db, nil, testSemesters, true)
	assert.ErrorIs(t, svc.Submit(validSubmit("IEDC9999")), ErrMemberNotFound)

	closed := NewExecomService(db, nil, testSemesters, false)
	assert.ErrorIs(t, closed.Submit(validSubmit("IEDC9999")), ErrCallClosed)
}

func TestApproveIsIdempotentAndReDecidable(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0003", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)
	require.NoError(t, svc.Submit(validSubmit("IEDC0003")))

	require.NoError(t, svc.Approve("IEDC0003", 0))
	require.NoError(t, svc.Approve("IEDC0003", 0)) // 重复审批不报错

	var app model.ExecomApplication
	require.NoError(t, db.Where("member_id = ?", "IEDC0003").First(&app).Error)
	assert.Equal(t, model.StatusApproved, app.Status)
	require.NotNil(t, app.ReviewedAt)

	// 已决可以改判
	require.NoError(t, svc.Reject("IEDC0003", 0))
	require.NoError(t, db.Where("member_id = ?", "IEDC0003").First(&app).Error)
	assert.Equal(t, model.StatusRejected, app.Status)
}

func TestModerateUnknownApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewExecomService(db, nil, testSemesters, true)

	assert.ErrorIs(t, svc.Reject("IEDC0404", 0), ErrApplicationNotFound)
	assert.ErrorIs(t, svc.Approve("IEDC0404", 0), ErrApplicationNotFound)
	assert.ErrorIs(t, svc.Delete("IEDC0404", 0), ErrApplicationNotFound)
}

func TestApproveSendsInvitation(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0004", "1st Semester")
	mailer := newFakeMailer()
	svc := NewExecomService(db, mailer, testSemesters, true)
	require.NoError(t, svc.Submit(validSubmit("IEDC0004")))

	require.NoError(t, svc.Approve("IEDC0004", 0))
	select {
	case subject := <-mailer.ch:
		assert.Contains(t, subject, "approved")
	case <-time.After(2 * time.Second):
		t.Fatal("invitation mail not sent")
	}
}

func TestListEnrichedJoinsAndMarksOrphans(t *testing.T) {
	db := newTestDB(t)
	m := seedMember(t, db, "IEDC0005", "1st Semester")
	seedMember(t, db, "IEDC0006", "3rd Semester")
	svc := NewExecomService(db, nil, testSemesters, true)
	require.NoError(t, svc.Submit(validSubmit("IEDC0005")))
	require.NoError(t, svc.Submit(validSubmit("IEDC0006")))

	// 删掉一个会员，申请成为孤儿但仍要出现在列表里
	require.NoError(t, db.Delete(&model.Member{}, m.ID).Error)

	list, err := svc.ListEnriched()
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := map[string]EnrichedApplication{}
	for _, item := range list {
		byID[item.Application.MemberID] = item
	}
	assert.True(t, byID["IEDC0005"].Orphaned)
	assert.Empty(t, byID["IEDC0005"].Name)
	assert.False(t, byID["IEDC0006"].Orphaned)
	assert.Equal(t, "Test Member", byID["IEDC0006"].Name)
	assert.Equal(t, "IEDC0006@example.com", byID["IEDC0006"].Email)
}

func TestExportCSVRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0008", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)

	in := validSubmit("IEDC0008")
	in.Motivation = `I want "impact", growth, and fun`
	in.Vision = "line one\nline two, with comma"
	require.NoError(t, svc.Submit(in))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])

	row := records[1]
	assert.Equal(t, "IEDC0008", row[0])
	assert.Equal(t, in.Motivation, row[8])
	assert.Equal(t, in.Vision, row[14])
}

func TestModerationOutboxEvents(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC0009", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)

	require.NoError(t, svc.Submit(validSubmit("IEDC0009")))
	require.NoError(t, svc.Approve("IEDC0009", 0))
	require.NoError(t, svc.Delete("IEDC0009", 0))

	var events []model.ModerationOutbox
	require.NoError(t, db.Order("id asc").Find(&events).Error)
	require.Len(t, events, 3)
	assert.Equal(t, "submitted", events[0].EventType)
	assert.Equal(t, model.StatusApproved, events[1].EventType)
	assert.Equal(t, "deleted", events[2].EventType)
	for _, ev := range events {
		assert.Equal(t, "IEDC0009", ev.MemberID)
		assert.Equal(t, int8(0), ev.Status)
	}
}
