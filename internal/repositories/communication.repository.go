package repositories

import (
	"context"
	"crm/internal/database"
	"crm/internal/logger"
	. "crm/internal/models"
	"crm/internal/services"

	"gorm.io/gorm"
)

type CommunicationRepository interface {
	Create(ctx context.Context, communication *Communication) error
	GetByRecruit(ctx context.Context, recruitID int) ([]*Communication, error)
	GetRecent(ctx context.Context, limit int) ([]*Activity, error)
	DeleteByRecruit(ctx context.Context, recruitID int) error
}

type communicationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewCommunication(db database.DB) CommunicationRepository {
	return &communicationRepository{
		db:  db,
		log: logger.New("communicationRepository"),
	}
}

func (r *communicationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// Create appends one log entry. Communications are historical records and
// are never updated afterwards.
func (r *communicationRepository) Create(ctx context.Context, communication *Communication) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(communication).Error; err != nil {
		return log.Err("failed to create communication", err, "communication", communication)
	}

	return nil
}

func (r *communicationRepository) GetByRecruit(ctx context.Context, recruitID int) ([]*Communication, error) {
	log := r.log.Function("GetByRecruit")

	var communications []*Communication
	if err := r.getDB(ctx).
		Where("recruit_id = ?", recruitID).
		Order("created_at DESC").
		Find(&communications).Error; err != nil {
		return nil, log.Err("failed to get communications", err, "recruitID", recruitID)
	}

	return communications, nil
}

func (r *communicationRepository) GetRecent(ctx context.Context, limit int) ([]*Activity, error) {
	log := r.log.Function("GetRecent")

	var activities []*Activity
	if err := r.getDB(ctx).
		Table("communications").
		Select("communications.*, COALESCE(recruits.name, '') AS recruit_name").
		Joins("LEFT JOIN recruits ON recruits.id = communications.recruit_id").
		Order("communications.created_at DESC").
		Limit(limit).
		Scan(&activities).Error; err != nil {
		return nil, log.Err("failed to get recent activity", err)
	}

	return activities, nil
}

// DeleteByRecruit removes a recruit's whole communication history. Only
// the recruit cascade delete calls this.
func (r *communicationRepository) DeleteByRecruit(ctx context.Context, recruitID int) error {
	log := r.log.Function("DeleteByRecruit")

	if err := r.getDB(ctx).
		Delete(&Communication{}, "recruit_id = ?", recruitID).Error; err != nil {
		return log.Err("failed to delete communications", err, "recruitID", recruitID)
	}

	return nil
}
