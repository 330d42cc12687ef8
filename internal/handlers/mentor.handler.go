package handlers

import (
	"crm/internal/app"
	"crm/internal/logger"
	. "crm/internal/models"
	"crm/internal/repositories"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type MentorHandler struct {
	Handler
	repo repositories.MentorRepository
}

func NewMentorHandler(app app.App, router fiber.Router) *MentorHandler {
	log := logger.New("handlers").File("mentor_handler")
	return &MentorHandler{
		repo: app.MentorRepo,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MentorHandler) Register() {
	mentors := h.router.Group("/mentors")
	mentors.Get("/", h.list)
	mentors.Post("/", h.create)
	mentors.Get("/:id", h.get)
	mentors.Put("/:id", h.update)
	mentors.Delete("/:id", h.delete)
}

func (h *MentorHandler) list(c *fiber.Ctx) error {
	mentors, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "mentors": mentors})
}

func (h *MentorHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")

	var mentor Mentor
	if err := c.BodyParser(&mentor); err != nil {
		log.Er("failed to parse create mentor request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	if strings.TrimSpace(mentor.Name) == "" {
		return errorResponse(c, &ValidationError{Field: "name", Message: "is required"})
	}
	if mentor.Status == "" {
		mentor.Status = "Active"
	}

	if err := h.repo.Create(c.UserContext(), &mentor); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "mentor": mentor})
}

func (h *MentorHandler) get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid mentor id"})
	}

	mentor, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "mentor": mentor})
}

func (h *MentorHandler) update(c *fiber.Ctx) error {
	log := h.log.Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid mentor id"})
	}

	mentor, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	var req Mentor
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse update mentor request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	mentor.Name = req.Name
	mentor.Email = req.Email
	mentor.Phone = req.Phone
	mentor.Specialty = req.Specialty
	mentor.Status = req.Status
	mentor.Notes = req.Notes

	if err := h.repo.Update(c.UserContext(), mentor); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "mentor": mentor})
}

func (h *MentorHandler) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid mentor id"})
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}
