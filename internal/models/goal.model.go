package models

type Goal struct {
	BaseModel
	Title       string `gorm:"type:text;not null"               json:"title"`
	Description string `gorm:"type:text"                        json:"description"`
	TargetDate  string `gorm:"type:text"                        json:"targetDate"`
	Status      string `gorm:"type:text;default:'Not Started'"  json:"status"`
	Progress    int    `gorm:"type:integer;default:0"           json:"progress"`
}
