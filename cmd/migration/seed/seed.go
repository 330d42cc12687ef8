package seed

import (
	"crm/config"
	"crm/internal/logger"
	. "crm/internal/models"
	"time"

	"gorm.io/gorm"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func intPtr(i int) *int {
	return &i
}

// Seed loads demo data for development. Recruits cover every pipeline
// stage with contact timestamps spread around the follow-up threshold so
// the overdue queue and dashboard have something to show.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	now := time.Now().UTC()

	recruits := []Recruit{
		{
			Name:     "Sarah Johnson",
			Email:    "sarah.johnson@example.com",
			Phone:    "555-0101",
			Stage:    StageNew,
			Source:   "Referral",
			Priority: 3,
		},
		{
			Name:        "Mike Chen",
			Email:       "mike.chen@example.com",
			Phone:       "555-0102",
			Stage:       StageContacted,
			Source:      "Indeed",
			Priority:    2,
			LastContact: timePtr(now.Add(-5 * 24 * time.Hour)),
		},
		{
			Name:        "Jessica Martinez",
			Email:       "jessica.martinez@example.com",
			Phone:       "555-0103",
			Stage:       StageInTraining,
			Source:      "LinkedIn",
			Priority:    2,
			LastContact: timePtr(now.Add(-1 * 24 * time.Hour)),
		},
		{
			Name:        "David Thompson",
			Email:       "david.thompson@example.com",
			Phone:       "555-0104",
			Stage:       StageLicensed,
			Source:      "Referral",
			Priority:    1,
			LastContact: timePtr(now.Add(-10 * 24 * time.Hour)),
		},
		{
			Name:     "Amanda Rodriguez",
			Email:    "amanda.rodriguez@example.com",
			Phone:    "555-0105",
			Stage:    StageInactive,
			Source:   "Facebook",
			Priority: 1,
		},
	}

	for _, recruit := range recruits {
		var existing Recruit
		if err := db.First(&existing, "name = ?", recruit.Name).Error; err == nil {
			log.Info("Recruit already exists", "name", recruit.Name)
			continue
		}
		log.Info("Seeding recruit", "name", recruit.Name)
		if err := db.Create(&recruit).Error; err != nil {
			log.Er("failed to create recruit", err, "name", recruit.Name)
		}
	}

	mentors := []Mentor{
		{
			Name:      "Linda Garcia",
			Email:     "linda.garcia@example.com",
			Phone:     "555-0201",
			Specialty: "Life & Health",
			Status:    "Active",
		},
		{
			Name:      "Robert Kim",
			Email:     "robert.kim@example.com",
			Phone:     "555-0202",
			Specialty: "Property & Casualty",
			Status:    "Active",
		},
	}

	for _, mentor := range mentors {
		var existing Mentor
		if err := db.First(&existing, "name = ?", mentor.Name).Error; err == nil {
			continue
		}
		log.Info("Seeding mentor", "name", mentor.Name)
		if err := db.Create(&mentor).Error; err != nil {
			log.Er("failed to create mentor", err, "name", mentor.Name)
		}
	}

	meetings := []Meeting{
		{
			Title:       "Licensing prep session",
			RecruitID:   intPtr(3),
			MentorID:    intPtr(1),
			MeetingDate: now.Add(48 * time.Hour).Format("2006-01-02"),
			Status:      "Scheduled",
		},
	}

	for _, meeting := range meetings {
		var existing Meeting
		if err := db.First(&existing, "title = ?", meeting.Title).Error; err == nil {
			continue
		}
		log.Info("Seeding meeting", "title", meeting.Title)
		if err := db.Create(&meeting).Error; err != nil {
			log.Er("failed to create meeting", err, "title", meeting.Title)
		}
	}

	goals := []Goal{
		{
			Title:       "Five licensed agents this quarter",
			Description: "Move five recruits through training to licensed",
			TargetDate:  now.Add(90 * 24 * time.Hour).Format("2006-01-02"),
			Status:      "In Progress",
			Progress:    40,
		},
	}

	for _, goal := range goals {
		var existing Goal
		if err := db.First(&existing, "title = ?", goal.Title).Error; err == nil {
			continue
		}
		log.Info("Seeding goal", "title", goal.Title)
		if err := db.Create(&goal).Error; err != nil {
			log.Er("failed to create goal", err, "title", goal.Title)
		}
	}

	return nil
}
