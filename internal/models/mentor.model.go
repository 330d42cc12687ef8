package models

type Mentor struct {
	BaseModel
	Name      string `gorm:"type:text;not null"          json:"name"`
	Email     string `gorm:"type:text"                   json:"email"`
	Phone     string `gorm:"type:text"                   json:"phone"`
	Specialty string `gorm:"type:text"                   json:"specialty"`
	Status    string `gorm:"type:text;default:'Active'"  json:"status"`
	Notes     string `gorm:"type:text"                   json:"notes"`
}
