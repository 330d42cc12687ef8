package handlers

import (
	"crm/internal/app"
	recruitController "crm/internal/controllers/recruits"
	"crm/internal/handlers/middleware"
	"crm/internal/logger"
	"time"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	controller *recruitController.RecruitController
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		controller: app.RecruitController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	h.router.Get("/dashboard", h.dashboard)
}

func (h *DashboardHandler) dashboard(c *fiber.Ctx) error {
	dashboard, err := h.controller.Dashboard(c.UserContext(), time.Now().UTC())
	if err != nil {
		return errorResponse(c, err)
	}

	middleware.SetOverdueQueueSize(dashboard.OverdueCount)

	return c.JSON(fiber.Map{"message": "success", "dashboard": dashboard})
}
