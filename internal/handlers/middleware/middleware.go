package middleware

import (
	"crm/config"
	"crm/internal/database"
	"crm/internal/events"
	"crm/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Middleware struct {
	db       database.DB
	eventBus *events.EventBus
	config   config.Config
	log      logger.Logger
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) Middleware {
	return Middleware{
		db:       db,
		eventBus: eventBus,
		config:   config,
		log:      logger.New("middleware"),
	}
}

// RequestID tags every request with a UUID, reusing the caller's
// X-Request-ID when present.
func (m Middleware) RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestID", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
