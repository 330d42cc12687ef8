package repositories

import (
	"context"
	"crm/internal/database"
	"crm/internal/logger"
	. "crm/internal/models"
	"crm/internal/services"
	"errors"

	"gorm.io/gorm"
)

type GoalRepository interface {
	GetByID(ctx context.Context, id int) (*Goal, error)
	GetAll(ctx context.Context) ([]*Goal, error)
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id int) error
}

type goalRepository struct {
	db  database.DB
	log logger.Logger
}

func NewGoal(db database.DB) GoalRepository {
	return &goalRepository{
		db:  db,
		log: logger.New("goalRepository"),
	}
}

func (r *goalRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *goalRepository) GetByID(ctx context.Context, id int) (*Goal, error) {
	log := r.log.Function("GetByID")

	var goal Goal
	if err := r.getDB(ctx).First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("goal", id)
		}
		return nil, log.Err("failed to get goal by id", err, "id", id)
	}

	return &goal, nil
}

func (r *goalRepository) GetAll(ctx context.Context) ([]*Goal, error) {
	log := r.log.Function("GetAll")

	var goals []*Goal
	if err := r.getDB(ctx).Order("target_date ASC").Find(&goals).Error; err != nil {
		return nil, log.Err("failed to get all goals", err)
	}

	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *Goal) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(goal).Error; err != nil {
		return log.Err("failed to create goal", err, "goal", goal)
	}

	return nil
}

func (r *goalRepository) Update(ctx context.Context, goal *Goal) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(goal).Error; err != nil {
		return log.Err("failed to update goal", err, "goal", goal)
	}

	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Goal{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete goal", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return NewNotFound("goal", id)
	}

	return nil
}
