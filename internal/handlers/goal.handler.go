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

type GoalHandler struct {
	Handler
	repo repositories.GoalRepository
}

func NewGoalHandler(app app.App, router fiber.Router) *GoalHandler {
	log := logger.New("handlers").File("goal_handler")
	return &GoalHandler{
		repo: app.GoalRepo,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *GoalHandler) Register() {
	goals := h.router.Group("/goals")
	goals.Get("/", h.list)
	goals.Post("/", h.create)
	goals.Put("/:id", h.update)
	goals.Delete("/:id", h.delete)
}

func (h *GoalHandler) list(c *fiber.Ctx) error {
	goals, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "goals": goals})
}

func (h *GoalHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")

	var goal Goal
	if err := c.BodyParser(&goal); err != nil {
		log.Er("failed to parse create goal request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	if strings.TrimSpace(goal.Title) == "" {
		return errorResponse(c, &ValidationError{Field: "title", Message: "is required"})
	}
	date, ok := utils.NormalizeDate(goal.TargetDate)
	if !ok {
		return errorResponse(c, &ValidationError{Field: "target_date", Message: "is not a recognized date"})
	}
	goal.TargetDate = date
	if goal.Status == "" {
		goal.Status = "Not Started"
	}

	if err := h.repo.Create(c.UserContext(), &goal); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "goal": goal})
}

func (h *GoalHandler) update(c *fiber.Ctx) error {
	log := h.log.Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid goal id"})
	}

	goal, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	var req Goal
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse update goal request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	date, ok := utils.NormalizeDate(req.TargetDate)
	if !ok {
		return errorResponse(c, &ValidationError{Field: "target_date", Message: "is not a recognized date"})
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.TargetDate = date
	goal.Status = req.Status
	goal.Progress = req.Progress

	if err := h.repo.Update(c.UserContext(), goal); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "goal": goal})
}

func (h *GoalHandler) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid goal id"})
	}

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}
