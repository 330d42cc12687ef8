package handlers

import (
	"crm/internal/app"
	recruitController "crm/internal/controllers/recruits"
	"crm/internal/handlers/middleware"
	"crm/internal/logger"
	. "crm/internal/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

type RecruitHandler struct {
	Handler
	controller *recruitController.RecruitController
}

func NewRecruitHandler(app app.App, router fiber.Router) *RecruitHandler {
	log := logger.New("handlers").File("recruit_handler")
	return &RecruitHandler{
		controller: app.RecruitController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecruitHandler) Register() {
	recruits := h.router.Group("/recruits")
	recruits.Get("/", h.list)
	recruits.Post("/", h.create)
	recruits.Get("/:id", h.get)
	recruits.Put("/:id", h.update)
	recruits.Delete("/:id", h.delete)
	recruits.Get("/:id/communications", h.communications)

	h.router.Get("/overdue", h.overdue)
	h.router.Post("/contact/:id", h.markContact)
	h.router.Get("/templates", h.templates)
	h.router.Post("/quick-message", h.quickMessage)
}

func (h *RecruitHandler) list(c *fiber.Ctx) error {
	recruits, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "recruits": recruits})
}

func (h *RecruitHandler) create(c *fiber.Ctx) error {
	log := h.log.Function("create")

	var req CreateRecruitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse create recruit request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	recruit, err := h.controller.Create(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "recruit": recruit})
}

func (h *RecruitHandler) get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid recruit id"})
	}

	recruit, err := h.controller.GetByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "recruit": recruit})
}

func (h *RecruitHandler) update(c *fiber.Ctx) error {
	log := h.log.Function("update")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid recruit id"})
	}

	var req UpdateRecruitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse update recruit request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	recruit, err := h.controller.Update(c.UserContext(), id, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "recruit": recruit})
}

func (h *RecruitHandler) delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid recruit id"})
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *RecruitHandler) communications(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid recruit id"})
	}

	communications, err := h.controller.GetCommunications(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "communications": communications})
}

func (h *RecruitHandler) overdue(c *fiber.Ctx) error {
	recruits, err := h.controller.Overdue(c.UserContext(), time.Now().UTC())
	if err != nil {
		return errorResponse(c, err)
	}

	middleware.SetOverdueQueueSize(len(recruits))

	return c.JSON(fiber.Map{"message": "success", "recruits": recruits})
}

func (h *RecruitHandler) markContact(c *fiber.Ctx) error {
	log := h.log.Function("markContact")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid recruit id"})
	}

	// The body is optional; an empty post records a bare manual contact.
	var req MarkContactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Er("failed to parse mark contact request", err)
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
		}
	}

	if err := h.controller.MarkContact(c.UserContext(), id, req.Type, req.Content); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *RecruitHandler) templates(c *fiber.Ctx) error {
	templates, err := h.controller.GetTemplates(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "templates": templates})
}

func (h *RecruitHandler) quickMessage(c *fiber.Ctx) error {
	log := h.log.Function("quickMessage")

	var req QuickMessageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Er("failed to parse quick message request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to parse request"})
	}

	message, err := h.controller.SendQuickMessage(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "success", "content": message})
}
