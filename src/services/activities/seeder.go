package activities

import "mergington-activities/src/models"

// Seed คืนชุดกิจกรรมเริ่มต้นของ Mergington High School (สร้าง map ใหม่ทุกครั้ง)
func Seed() map[string]models.Activity {
	return map[string]models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball team for intramural and varsity play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Learn and practice tennis skills in a competitive setting",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"james@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in school plays and develop acting skills",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"grace@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Create paintings, sculptures, and mixed media artwork",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop argumentation and public speaking skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Build and program robots for competitions",
			Schedule:        "Mondays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu"},
		},
	}
}
