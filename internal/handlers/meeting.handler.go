package handlers

import (
	"crm/internal/app"
	"crm/internal/logger"
	. "crm/internal/models"
	"crm/internal/repositories"
	"crm/internal/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type MeetingHandler struct {
	Handler
	repo repositories.MeetingRepository
}

func NewMeetingHandler(app app.App, router fiber.Router) *MeetingHandler {
	log := logger.New("handlers").File("meeting_handler")
	return &MeetingHandler{
		repo: app.MeetingRepo,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MeetingHandler) Register() {
	meetings := h.router.Group("/meetings")
	meetings.Get("/", h.list)
	meetings.Post("/", h.create)
	meetings.Put("/:id", h.update)
	meetings.Delete("/:id", h.delete)
}

func (h *MeetingHandler) list(c *fiber.Ctx) error {
	meetings, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "meetings": meetings})
}

func (h *MeetingHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")

	var meeting Meeting
	if err := c.BodyParser(&meeting); err != nil {
		log.Er("failed to parse create meeting request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	if strings.TrimSpace(meeting.Title) == "" {
		return errorResponse(c, &ValidationError{Field: "title", Message: "is required"})
	}
	date, ok := utils.NormalizeDate(meeting.MeetingDate)
	if !ok {
		return errorResponse(c, &ValidationError{Field: "meeting_date", Message: "is not a recognized date"})
	}
	meeting.MeetingDate = date
	if meeting.Status == "" {
		meeting.Status = "Scheduled"
	}

	if err := h.repo.Create(c.UserContext(), &meeting); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "meeting": meeting})
}

func (h *MeetingHandler) update(c *fiber.Ctx) error {
	log := h.log.Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid meeting id"})
	}

	meeting, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	var req Meeting
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse update meeting request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	date, ok := utils.NormalizeDate(req.MeetingDate)
	if !ok {
		return errorResponse(c, &ValidationError{Field: "meeting_date", Message: "is not a recognized date"})
	}

	meeting.Title = req.Title
	meeting.RecruitID = req.RecruitID
	meeting.MentorID = req.MentorID
	meeting.MeetingDate = date
	meeting.Status = req.Status
	meeting.Notes = req.Notes

	if err := h.repo.Update(c.UserContext(), meeting); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "meeting": meeting})
}

func (h *MeetingHandler) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid meeting id"})
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}
