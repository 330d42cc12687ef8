package recruitController

import (
	"context"
	"crm/internal/database"
	"crm/internal/events"
	"crm/internal/handlers/middleware"
	"crm/internal/logger"
	"crm/internal/mail"
	. "crm/internal/models"
	"crm/internal/repositories"
	"crm/internal/services"
	"strings"
	"time"
)

type RecruitController struct {
	db                       database.DB
	recruitRepo              repositories.RecruitRepository
	communicationRepo        repositories.CommunicationRepository
	templateRepo             repositories.TemplateRepository
	transactionService       *services.TransactionService
	cacheInvalidationService *services.CacheInvalidationService
	mailSender               mail.Sender
	log                      logger.Logger
}

func New(
	db database.DB,
	recruitRepo repositories.RecruitRepository,
	communicationRepo repositories.CommunicationRepository,
	templateRepo repositories.TemplateRepository,
	transactionService *services.TransactionService,
	cacheInvalidationService *services.CacheInvalidationService,
	mailSender mail.Sender,
) *RecruitController {
	return &RecruitController{
		db:                       db,
		recruitRepo:              recruitRepo,
		communicationRepo:        communicationRepo,
		templateRepo:             templateRepo,
		transactionService:       transactionService,
		cacheInvalidationService: cacheInvalidationService,
		mailSender:               mailSender,
		log:                      logger.New("RecruitController"),
	}
}

func (rc *RecruitController) GetByID(ctx context.Context, id int) (*Recruit, error) {
	return rc.recruitRepo.GetByID(ctx, id)
}

func (rc *RecruitController) GetAll(ctx context.Context) ([]*Recruit, error) {
	return rc.recruitRepo.GetAll(ctx)
}

func (rc *RecruitController) GetCommunications(ctx context.Context, recruitID int) ([]*Communication, error) {
	if _, err := rc.recruitRepo.GetByID(ctx, recruitID); err != nil {
		return nil, err
	}
	return rc.communicationRepo.GetByRecruit(ctx, recruitID)
}

func (rc *RecruitController) GetTemplates(ctx context.Context) ([]*MessageTemplate, error) {
	return rc.templateRepo.GetAll(ctx)
}

func (rc *RecruitController) Create(ctx context.Context, req *CreateRecruitRequest) (*Recruit, error) {
	log := rc.log.Function("Create")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	stage := Stage(req.Stage)
	if req.Stage == "" {
		stage = StageNew
	}
	source := req.Source
	if source == "" {
		source = "Manual"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 1
	}

	// New recruits start never-contacted, which puts them straight into
	// the follow-up queue.
	recruit := &Recruit{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Stage:       stage,
		Notes:       req.Notes,
		Source:      source,
		Priority:    priority,
		LastContact: nil,
	}

	if err := rc.recruitRepo.Create(ctx, recruit); err != nil {
		return nil, err
	}

	rc.cacheInvalidationService.InvalidateRecruit(ctx, recruit.ID, events.TypeRecruitCreated)
	log.Info("recruit created", "recruitID", recruit.ID, "stage", recruit.Stage)

	return recruit, nil
}

// Update edits a recruit's fields. Changing the stage is never an
// independent operation: a stage change always records a contact and logs
// a stage_change communication in the same transaction, so a stage edit
// cannot leave last_contact stale. A same-stage update records nothing.
func (rc *RecruitController) Update(ctx context.Context, id int, req *UpdateRecruitRequest) (*Recruit, error) {
	log := rc.log.Function("Update")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	recruit, err := rc.recruitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStage := recruit.Stage
	newStage := Stage(req.Stage)
	if req.Stage == "" {
		newStage = oldStage
	}

	recruit.Name = strings.TrimSpace(req.Name)
	recruit.Email = strings.TrimSpace(req.Email)
	recruit.Phone = strings.TrimSpace(req.Phone)
	recruit.Stage = newStage
	recruit.Notes = req.Notes
	if req.Priority != nil {
		recruit.Priority = *req.Priority
	}

	err = rc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if err := rc.recruitRepo.Update(txCtx, recruit); err != nil {
			return err
		}

		if newStage != oldStage {
			content := "Stage changed to " + string(newStage)
			if err := rc.recordContact(txCtx, id, MessageTypeStageChange, content); err != nil {
				return log.Err("failed to record stage change contact", err, "recruitID", id)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	rc.cacheInvalidationService.InvalidateRecruit(ctx, id, events.TypeRecruitUpdated)

	return rc.recruitRepo.GetByID(ctx, id)
}

// Delete removes the recruit and cascade-deletes its communication
// history in the same transaction, so no orphaned log rows survive.
func (rc *RecruitController) Delete(ctx context.Context, id int) error {
	err := rc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		if err := rc.communicationRepo.DeleteByRecruit(txCtx, id); err != nil {
			return err
		}
		return rc.recruitRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	rc.cacheInvalidationService.InvalidateRecruit(ctx, id, events.TypeRecruitDeleted)

	return nil
}

// MarkContact records an outreach event against the recruit: last_contact
// and updated_at move to now, and a communication row is appended when
// content is non-empty. Unknown recruit ids fail with NotFoundError.
func (rc *RecruitController) MarkContact(ctx context.Context, id int, messageType, content string) error {
	if messageType == "" {
		messageType = MessageTypeManual
	}

	err := rc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return rc.recordContact(txCtx, id, messageType, content)
	})
	if err != nil {
		return err
	}

	middleware.RecordContact(messageType)
	rc.cacheInvalidationService.InvalidateRecruit(ctx, id, events.TypeContactRecorded)

	return nil
}

// SendQuickMessage composes a follow-up message and records it as contact.
// Composing is never a preview: a successful compose always stamps
// last_contact and logs a quick_message communication. A missing template
// or recruit aborts before anything is recorded.
func (rc *RecruitController) SendQuickMessage(ctx context.Context, req *QuickMessageRequest) (string, error) {
	log := rc.log.Function("SendQuickMessage")

	recruit, err := rc.recruitRepo.GetByID(ctx, req.RecruitID)
	if err != nil {
		return "", err
	}

	message := req.Message
	if req.TemplateID != nil {
		template, err := rc.templateRepo.GetByID(ctx, *req.TemplateID)
		if err != nil {
			return "", err
		}
		message = template.Render(recruit.Name)
	}

	err = rc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return rc.recordContact(txCtx, req.RecruitID, MessageTypeQuickMessage, message)
	})
	if err != nil {
		return "", err
	}

	if rc.mailSender.Enabled() && recruit.Email != "" {
		if err := rc.mailSender.SendQuickMessage(recruit.Email, recruit.Name, message); err != nil {
			// The communication log is the record of truth; a failed
			// delivery is not a failed operation.
			log.Warn("failed to deliver quick message", "recruitID", recruit.ID, "error", err)
		}
	}

	middleware.RecordQuickMessage()
	rc.cacheInvalidationService.InvalidateRecruit(ctx, req.RecruitID, events.TypeContactRecorded)

	return message, nil
}

func (rc *RecruitController) recordContact(ctx context.Context, recruitID int, messageType, content string) error {
	now := time.Now().UTC()

	if err := rc.recruitRepo.MarkContact(ctx, recruitID, now); err != nil {
		return err
	}

	if content != "" {
		return rc.communicationRepo.Create(ctx, &Communication{
			RecruitID:   recruitID,
			MessageType: messageType,
			Content:     content,
		})
	}

	return nil
}
