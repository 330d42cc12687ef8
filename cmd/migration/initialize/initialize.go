package initialize

import (
	"crm/config"
	"crm/internal/logger"
	. "crm/internal/models"

	"gorm.io/gorm"
)

// InitializeTables ensures the essential production rows exist: the
// stage-tagged follow-up templates the quick-message workflow depends on.
// Safe to run repeatedly; existing templates are left untouched.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	templates := []MessageTemplate{
		{
			Name:    "Initial Follow-up",
			Stage:   StageNew,
			Content: "Hi {name}! Just checking in - did you get a chance to look at the pre-licensing info I sent? Let me know if you have any questions!",
		},
		{
			Name:    "Training Check",
			Stage:   StageContacted,
			Content: "Hey {name}! How's the pre-licensing course going? Any questions I can help with?",
		},
		{
			Name:    "Exam Reminder",
			Stage:   StageInTraining,
			Content: "Hi {name}! Ready to schedule your licensing exam? I'm here to help with next steps!",
		},
		{
			Name:    "Welcome Licensed",
			Stage:   StageLicensed,
			Content: "Congratulations {name}! Welcome to the team. Let's schedule your onboarding call.",
		},
	}

	for _, template := range templates {
		var existing MessageTemplate
		if err := db.First(&existing, "name = ?", template.Name).Error; err == nil {
			continue
		}
		log.Info("Creating message template", "name", template.Name)
		if err := db.Create(&template).Error; err != nil {
			return log.Err("failed to create message template", err, "name", template.Name)
		}
	}

	log.Info("Table initialization complete")
	return nil
}
