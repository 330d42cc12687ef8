package models

type Meeting struct {
	BaseModel
	Title       string `gorm:"type:text;not null"             json:"title"`
	RecruitID   *int   `gorm:"type:integer;index"             json:"recruitId"`
	MentorID    *int   `gorm:"type:integer;index"             json:"mentorId"`
	MeetingDate string `gorm:"type:text"                      json:"meetingDate"`
	Status      string `gorm:"type:text;default:'Scheduled'"  json:"status"`
	Notes       string `gorm:"type:text"                      json:"notes"`
}

// MeetingDetail carries the joined recruit and mentor names for listings.
type MeetingDetail struct {
	Meeting
	RecruitName *string `json:"recruitName"`
	MentorName  *string `json:"mentorName"`
}
