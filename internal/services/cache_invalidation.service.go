package services

import (
	"context"
	"crm/internal/database"
	"crm/internal/events"
	"crm/internal/logger"
	"strconv"
)

const DashboardCacheKey = "dashboard"

// CacheInvalidationService drops the cached projections a recruit mutation
// makes stale and notifies connected clients through the event bus.
type CacheInvalidationService struct {
	db       database.DB
	eventBus *events.EventBus
	log      logger.Logger
}

func NewCacheInvalidationService(db database.DB, eventBus *events.EventBus) *CacheInvalidationService {
	return &CacheInvalidationService{
		db:       db,
		eventBus: eventBus,
		log:      logger.New("CacheInvalidationService"),
	}
}

// InvalidateRecruit removes the recruit's cache entry and the dashboard
// snapshot, then publishes eventType for live listeners. Cache failures
// are logged and swallowed; the database already holds the truth.
func (s *CacheInvalidationService) InvalidateRecruit(ctx context.Context, recruitID int, eventType string) {
	log := s.log.Function("InvalidateRecruit")

	key := strconv.Itoa(recruitID)
	if err := database.NewCacheBuilder(s.db.Cache.Recruit, key).WithContext(ctx).Delete(); err != nil {
		log.Warn("failed to invalidate recruit cache", "recruitID", recruitID, "error", err)
	}

	s.InvalidateDashboard(ctx)

	s.eventBus.Publish(ctx, events.Event{
		Type:    eventType,
		Payload: map[string]any{"recruitId": recruitID},
	})
}

func (s *CacheInvalidationService) InvalidateDashboard(ctx context.Context) {
	if err := database.NewCacheBuilder(s.db.Cache.Dashboard, DashboardCacheKey).
		WithContext(ctx).Delete(); err != nil {
		s.log.Function("InvalidateDashboard").
			Warn("failed to invalidate dashboard cache", "error", err)
	}
}
