package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RosterHandler consumes activity:roster_changed tasks.
type RosterHandler struct {
	log *zap.Logger
}

func NewRosterHandler(log *zap.Logger) *RosterHandler {
	return &RosterHandler{log: log}
}

func (h *RosterHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload RosterPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// payload เสียจะ retry ไปก็ไม่สำเร็จ
		return fmt.Errorf("decode roster payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.Activity == "" || payload.Email == "" {
		return fmt.Errorf("roster payload missing activity or email: %w", asynq.SkipRetry)
	}

	h.log.Info("📋 roster changed",
		zap.String("activity", payload.Activity),
		zap.String("email", payload.Email),
		zap.String("action", string(payload.Action)),
		zap.Int("participants", payload.Participants),
		zap.Time("occurred_at", payload.OccurredAt),
	)
	return nil
}

// NewWorker สร้าง asynq server และ mux สำหรับ roster events
func NewWorker(redisURI string, log *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 2,
			Queues:      map[string]int{QueueRoster: 1},
			Logger:      log.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	RegisterRosterHandlers(mux, log)
	return srv, mux
}

// RegisterRosterHandlers ผูก handler กับ type ที่ใช้ใน task
func RegisterRosterHandlers(mux *asynq.ServeMux, log *zap.Logger) {
	mux.Handle(TypeRosterChanged, NewRosterHandler(log))
}
