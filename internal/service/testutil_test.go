package service

import (
	"fmt"
	"sync"
	"testing"

	"IEDC_Club/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 每个测试一个独立的内存库，TranslateError 与生产配置保持一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Member{},
		&model.ExecomApplication{},
		&model.ModerationOutbox{},
		&model.User{},
		&model.SubCommunity{},
		&model.TeamMember{},
	))
	return db
}

// fakeMailer 记录发出的邮件，notify 是异步的所以用 channel 等
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	ch   chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{ch: make(chan string, 8)}
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()
	m.ch <- subject
	return nil
}

func seedMember(t *testing.T, db *gorm.DB, memberID, semester string) *model.Member {
	t.Helper()
	m := &model.Member{
		MemberID:   memberID,
		Name:       "Test Member",
		Email:      memberID + "@example.com",
		Department: "CSE",
		Semester:   semester,
		Status:     model.StatusPending,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

var testSemesters = []string{"1st Semester", "3rd Semester"}

func validSubmit(memberID string) SubmitInput {
	return SubmitInput{
		MemberID:           memberID,
		HoldsOtherPosition: "No",
		AgreesRemoval:      "Yes",
		Motivation:         "I want to build things",
		Role:               "Tech Lead",
		Skills:             "Go, community building",
		Experience:         "Organised two hackathons",
		Area:               "Technology",
		TimeCommitment:     "6 hours a week",
		Vision:             "A bigger maker community",
	}
}
