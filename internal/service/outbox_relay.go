package service

import (
	"context"
	"log"
	"time"

	"IEDC_Club/internal/repository/mysql"

	"gorm.io/gorm"
)

// Producer 消息投递能力，生产环境是 kafka，测试用假实现
type Producer interface {
	Send(ctx context.Context, key string, value []byte) error
}

// OutboxRelay 轮询 moderation_outbox，把待投递事件发到 kafka。
// 尽力而为：单条失败记 failed+重试次数，不阻塞后续事件
type OutboxRelay struct {
	repo     *mysql.OutboxRepository
	producer Producer

	Interval  time.Duration
	BatchSize int
}

func NewOutboxRelay(db *gorm.DB, producer Producer) *OutboxRelay {
	return &OutboxRelay{
		repo:      &mysql.OutboxRepository{DB: db},
		producer:  producer,
		Interval:  5 * time.Second,
		BatchSize: 100,
	}
}

// Run 常驻轮询，ctx 取消后退出
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RelayOnce(ctx); err != nil {
				log.Printf("outbox relay: %v", err)
			}
		}
	}
}

// RelayOnce 处理一批事件
func (r *OutboxRelay) RelayOnce(ctx context.Context) error {
	list, err := r.repo.List(ctx, r.BatchSize)
	if err != nil {
		return err
	}
	for _, ev := range list {
		if err := r.producer.Send(ctx, ev.MemberID, []byte(ev.Payload)); err != nil {
			log.Printf("outbox relay: send event %d failed: %v", ev.ID, err)
			if err := r.repo.RetryUpdate(ctx, ev.ID); err != nil {
				return err
			}
			continue
		}
		if err := r.repo.SuccessUpdate(ctx, ev.ID); err != nil {
			return err
		}
	}
	return nil
}
