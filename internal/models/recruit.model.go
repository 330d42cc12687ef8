package models

import "time"

type Recruit struct {
	BaseModel
	Name        string     `gorm:"type:text;not null"               json:"name"`
	Email       string     `gorm:"type:text"                        json:"email"`
	Phone       string     `gorm:"type:text"                        json:"phone"`
	Stage       Stage      `gorm:"type:text;default:'New'"          json:"stage"`
	Notes       string     `gorm:"type:text"                        json:"notes"`
	Source      string     `gorm:"type:text;default:'Manual'"       json:"source"`
	Priority    int        `gorm:"type:integer;default:1"           json:"priority"`
	LastContact *time.Time `gorm:"type:datetime"                    json:"lastContact"`
}

// IsOverdue reports whether the recruit needs follow-up at the given
// instant. Terminal stages are never overdue; otherwise a recruit is
// overdue when they have never been contacted or when strictly more than
// FollowUpWindow has passed since the last contact.
//
// The overdue queue query in the recruit repository filters with the same
// rule in SQL; the two paths must always agree.
func (r *Recruit) IsOverdue(now time.Time) bool {
	if r.Stage.Terminal() {
		return false
	}
	if r.LastContact == nil {
		return true
	}
	return now.Sub(*r.LastContact) > FollowUpWindow
}

// RecruitStatus is a recruit annotated with its overdue determination for
// dashboard listings. The flag is always recomputed at read time, never
// persisted.
type RecruitStatus struct {
	Recruit
	Overdue bool `json:"overdue"`
}
