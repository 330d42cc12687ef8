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

type MentorRepository interface {
	GetByID(ctx context.Context, id int) (*Mentor, error)
	GetAll(ctx context.Context) ([]*Mentor, error)
	Create(ctx context.Context, mentor *Mentor) error
	Update(ctx context.Context, mentor *Mentor) error
	Delete(ctx context.Context, id int) error
}

type mentorRepository struct {
	db  database.DB
	log logger.Logger
}

func NewMentor(db database.DB) MentorRepository {
	return &mentorRepository{
		db:  db,
		log: logger.New("mentorRepository"),
	}
}

func (r *mentorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *mentorRepository) GetByID(ctx context.Context, id int) (*Mentor, error) {
	log := r.log.Function("GetByID")

	var mentor Mentor
	if err := r.getDB(ctx).First(&mentor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("mentor", id)
		}
		return nil, log.Err("failed to get mentor by id", err, "id", id)
	}

	return &mentor, nil
}

func (r *mentorRepository) GetAll(ctx context.Context) ([]*Mentor, error) {
	log := r.log.Function("GetAll")

	var mentors []*Mentor
	if err := r.getDB(ctx).Order("updated_at DESC").Find(&mentors).Error; err != nil {
		return nil, log.Err("failed to get all mentors", err)
	}

	return mentors, nil
}

func (r *mentorRepository) Create(ctx context.Context, mentor *Mentor) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(mentor).Error; err != nil {
		return log.Err("failed to create mentor", err, "mentor", mentor)
	}

	return nil
}

func (r *mentorRepository) Update(ctx context.Context, mentor *Mentor) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(mentor).Error; err != nil {
		return log.Err("failed to update mentor", err, "mentor", mentor)
	}

	return nil
}

func (r *mentorRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Mentor{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete mentor", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return NewNotFound("mentor", id)
	}

	return nil
}
