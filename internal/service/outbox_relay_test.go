package service

import (
	"context"
	"errors"
	"testing"

	"IEDC_Club/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProducer 前 failures 次发送失败，之后成功
type flakyProducer struct {
	failures int
	sent     [][]byte
}

func (p *flakyProducer) Send(_ context.Context, _ string, value []byte) error {
	if p.failures > 0 {
		p.failures--
		return errors.New("broker unavailable")
	}
	p.sent = append(p.sent, value)
	return nil
}

func TestRelayOnceMarksFailureAndRetries(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC2001", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)
	require.NoError(t, svc.Submit(validSubmit("IEDC2001")))

	producer := &flakyProducer{failures: 1}
	relay := NewOutboxRelay(db, producer)

	require.NoError(t, relay.RelayOnce(context.Background()))

	var ev model.ModerationOutbox
	require.NoError(t, db.First(&ev).Error)
	assert.Equal(t, int8(2), ev.Status)
	assert.Equal(t, 1, ev.Retry)
	assert.Empty(t, producer.sent)
}

func TestRelayOnceDeliversPending(t *testing.T) {
	db := newTestDB(t)
	seedMember(t, db, "IEDC2002", "1st Semester")
	svc := NewExecomService(db, nil, testSemesters, true)
	require.NoError(t, svc.Submit(validSubmit("IEDC2002")))
	require.NoError(t, svc.Approve("IEDC2002", 0))

	producer := &flakyProducer{}
	relay := NewOutboxRelay(db, producer)

	require.NoError(t, relay.RelayOnce(context.Background()))

	assert.Len(t, producer.sent, 2)

	var remaining int64
	require.NoError(t, db.Model(&model.ModerationOutbox{}).
		Where("status = ?", 0).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
