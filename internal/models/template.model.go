package models

import (
	"strings"
	"time"
)

// MessageTemplate is stage-tagged boilerplate with a {name} placeholder.
// Templates are read-only at request time.
type MessageTemplate struct {
	ID        int       `gorm:"type:integer;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;not null"                    json:"name"`
	Stage     Stage     `gorm:"type:text"                             json:"stage"`
	Content   string    `gorm:"type:text;not null"                    json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime"                        json:"createdAt"`
}

// Render substitutes the recruit's name into the template body.
func (t *MessageTemplate) Render(name string) string {
	return strings.ReplaceAll(t.Content, "{name}", name)
}
