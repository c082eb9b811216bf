package jobs

import (
	"context"
	"time"

	"mergington-activities/src/metrics"
	"mergington-activities/src/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the subset of *asynq.Client used by Notifier.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Notifier ส่ง roster event เข้า asynq; enqueue ไม่สำเร็จจะแค่ log ไม่ทำให้ request fail
type Notifier struct {
	client  Enqueuer
	log     *zap.Logger
	timeout time.Duration
}

func NewNotifier(client Enqueuer, log *zap.Logger) *Notifier {
	return &Notifier{client: client, log: log, timeout: 5 * time.Second}
}

func (n *Notifier) RosterChanged(event models.RosterEvent) {
	log := n.log.With(
		zap.String("activity", event.Activity),
		zap.String("email", event.Email),
		zap.String("action", string(event.Action)),
	)

	task, err := NewRosterChangedTask(event)
	if err != nil {
		metrics.RosterEventsEnqueued.WithLabelValues("error").Inc()
		log.Error("❌ build roster task", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	info, err := n.client.EnqueueContext(ctx, task, asynq.TaskID(uuid.NewString()))
	if err != nil {
		metrics.RosterEventsEnqueued.WithLabelValues("error").Inc()
		log.Error("❌ enqueue roster task", zap.Error(err))
		return
	}
	metrics.RosterEventsEnqueued.WithLabelValues("ok").Inc()
	log.Debug("✅ roster task enqueued", zap.String("task_id", info.ID), zap.String("queue", info.Queue))
}
