package models

import "time"

type RosterAction string

const (
	RosterSignup     RosterAction = "signup"
	RosterUnregister RosterAction = "unregister"
)

// RosterEvent ถูกสร้างทุกครั้งที่รายชื่อผู้เข้าร่วมกิจกรรมเปลี่ยน
type RosterEvent struct {
	Activity     string       `json:"activity"`
	Email        string       `json:"email"`
	Action       RosterAction `json:"action"`
	Participants int          `json:"participants"`
	OccurredAt   time.Time    `json:"occurred_at"`
}
