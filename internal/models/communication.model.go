package models

import "time"

const (
	MessageTypeManual       = "manual"
	MessageTypeStageChange  = "stage_change"
	MessageTypeQuickMessage = "quick_message"
)

// Communication is an append-only log entry for one outreach event. Rows
// are never updated after creation.
type Communication struct {
	ID          int       `gorm:"type:integer;primaryKey;autoIncrement" json:"id"`
	RecruitID   int       `gorm:"type:integer;not null;index"           json:"recruitId"`
	MessageType string    `gorm:"type:text;default:'manual'"            json:"messageType"`
	Content     string    `gorm:"type:text"                             json:"content"`
	CreatedAt   time.Time `gorm:"autoCreateTime"                        json:"createdAt"`
}

// Activity is a communication joined with the recruit it belongs to, for
// the dashboard's recent-activity feed.
type Activity struct {
	Communication
	RecruitName string `json:"recruitName"`
}
