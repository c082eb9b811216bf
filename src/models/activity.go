package models

// Activity กิจกรรมชมรมหนึ่งรายการ (key คือชื่อกิจกรรมใน registry)
type Activity struct {
	Description     string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants" example:"michael@mergington.edu,daniel@mergington.edu"`
}

// Clone returns a copy whose Participants slice is not shared with a.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// HasParticipant รายงานว่า email นี้ลงทะเบียนในกิจกรรมแล้วหรือยัง
func (a Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

func (a Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// WithoutParticipant returns a with email removed, keeping the order of the
// remaining participants. The second result is false when email was absent.
func (a Activity) WithoutParticipant(email string) (Activity, bool) {
	i := a.indexOf(email)
	if i < 0 {
		return a, false
	}
	participants := make([]string, 0, len(a.Participants)-1)
	participants = append(participants, a.Participants[:i]...)
	participants = append(participants, a.Participants[i+1:]...)
	a.Participants = participants
	return a, true
}

// SignupQuery query string ของ POST /activities/{name}/signup และ /unregister
type SignupQuery struct {
	Email string `query:"email" validate:"required"`
}

// MessageResponse ใช้ตอบกลับเมื่อทำรายการสำเร็จ
type MessageResponse struct {
	Message string `json:"message" example:"Signed up test@mergington.edu for Chess Club"`
}

// HealthResponse สถานะของ service และ Redis
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Redis  string `json:"redis" example:"disabled"`
}
