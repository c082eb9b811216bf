package jobs

import (
	"encoding/json"

	"mergington-activities/src/models"

	"github.com/hibiken/asynq"
)

const (
	TypeRosterChanged = "activity:roster_changed"
	QueueRoster       = "roster"
)

// RosterPayload payload ของ task activity:roster_changed
type RosterPayload struct {
	models.RosterEvent
}

func NewRosterChangedTask(event models.RosterEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(RosterPayload{RosterEvent: event})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRosterChanged, payload, asynq.Queue(QueueRoster), asynq.MaxRetry(3)), nil
}
