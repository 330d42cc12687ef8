package repositories

import (
	"context"
	"crm/internal/database"
	"crm/internal/logger"
	. "crm/internal/models"
	"crm/internal/services"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const TEMPLATE_CACHE_EXPIRY = 24 * time.Hour

type TemplateRepository interface {
	GetByID(ctx context.Context, id int) (*MessageTemplate, error)
	GetByName(ctx context.Context, name string) (*MessageTemplate, error)
	GetAll(ctx context.Context) ([]*MessageTemplate, error)
	Create(ctx context.Context, template *MessageTemplate) error
}

type templateRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTemplate(db database.DB) TemplateRepository {
	return &templateRepository{
		db:  db,
		log: logger.New("templateRepository"),
	}
}

func (r *templateRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// GetByID serves templates from cache when possible; templates are
// read-only at request time so a long TTL is safe.
func (r *templateRepository) GetByID(ctx context.Context, id int) (*MessageTemplate, error) {
	log := r.log.Function("GetByID")

	var template MessageTemplate
	if found, err := database.NewCacheBuilder(r.db.Cache.Template, strconv.Itoa(id)).
		WithContext(ctx).Get(&template); err == nil && found {
		return &template, nil
	}

	if err := r.getDB(ctx).First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("template", id)
		}
		return nil, log.Err("failed to get template by id", err, "id", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Template, strconv.Itoa(template.ID)).
		WithStruct(&template).
		WithTTL(TEMPLATE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to add template to cache", "templateID", id, "error", err)
	}

	return &template, nil
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (*MessageTemplate, error) {
	log := r.log.Function("GetByName")

	var template MessageTemplate
	if err := r.getDB(ctx).First(&template, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("template", 0)
		}
		return nil, log.Err("failed to get template by name", err, "name", name)
	}

	return &template, nil
}

func (r *templateRepository) GetAll(ctx context.Context) ([]*MessageTemplate, error) {
	log := r.log.Function("GetAll")

	var templates []*MessageTemplate
	if err := r.getDB(ctx).Order("stage, name").Find(&templates).Error; err != nil {
		return nil, log.Err("failed to get all templates", err)
	}

	return templates, nil
}

func (r *templateRepository) Create(ctx context.Context, template *MessageTemplate) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(template).Error; err != nil {
		return log.Err("failed to create template", err, "template", template)
	}

	return nil
}
