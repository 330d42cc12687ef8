package app

import (
	"crm/config"
	"crm/internal/database"
	"crm/internal/events"
	"crm/internal/handlers/middleware"
	"crm/internal/logger"
	"crm/internal/mail"
	"crm/internal/repositories"
	"crm/internal/services"
	"crm/internal/websockets"

	recruitController "crm/internal/controllers/recruits"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config
	MailSender mail.Sender

	// Services
	TransactionService       *services.TransactionService
	CacheInvalidationService *services.CacheInvalidationService

	// Repositories
	RecruitRepo       repositories.RecruitRepository
	CommunicationRepo repositories.CommunicationRepository
	TemplateRepo      repositories.TemplateRepository
	MentorRepo        repositories.MentorRepository
	MeetingRepo       repositories.MeetingRepository
	GoalRepo          repositories.GoalRepository

	// Controllers
	RecruitController *recruitController.RecruitController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)
	mailSender := mail.New(config)

	// Initialize services
	transactionService := services.NewTransactionService(db)
	cacheInvalidationService := services.NewCacheInvalidationService(db, eventBus)

	// Initialize repositories
	recruitRepo := repositories.NewRecruit(db)
	communicationRepo := repositories.NewCommunication(db)
	templateRepo := repositories.NewTemplate(db)
	mentorRepo := repositories.NewMentor(db)
	meetingRepo := repositories.NewMeeting(db)
	goalRepo := repositories.NewGoal(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(db, eventBus, config)
	recruitController := recruitController.New(
		db,
		recruitRepo,
		communicationRepo,
		templateRepo,
		transactionService,
		cacheInvalidationService,
		mailSender,
	)

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	app := &App{
		Database:                 db,
		Config:                   config,
		Middleware:               middleware,
		MailSender:               mailSender,
		TransactionService:       transactionService,
		CacheInvalidationService: cacheInvalidationService,
		RecruitRepo:              recruitRepo,
		CommunicationRepo:        communicationRepo,
		TemplateRepo:             templateRepo,
		MentorRepo:               mentorRepo,
		MeetingRepo:              meetingRepo,
		GoalRepo:                 goalRepo,
		RecruitController:        recruitController,
		Websocket:                websocket,
		EventBus:                 eventBus,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.MailSender,
		a.TransactionService,
		a.CacheInvalidationService,
		a.RecruitController,
		a.Middleware,
		a.RecruitRepo,
		a.CommunicationRepo,
		a.TemplateRepo,
		a.MentorRepo,
		a.MeetingRepo,
		a.GoalRepo,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
