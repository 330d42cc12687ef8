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

type MeetingRepository interface {
	GetByID(ctx context.Context, id int) (*Meeting, error)
	GetAll(ctx context.Context) ([]*MeetingDetail, error)
	Create(ctx context.Context, meeting *Meeting) error
	Update(ctx context.Context, meeting *Meeting) error
	Delete(ctx context.Context, id int) error
}

type meetingRepository struct {
	db  database.DB
	log logger.Logger
}

func NewMeeting(db database.DB) MeetingRepository {
	return &meetingRepository{
		db:  db,
		log: logger.New("meetingRepository"),
	}
}

func (r *meetingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *meetingRepository) GetByID(ctx context.Context, id int) (*Meeting, error) {
	log := r.log.Function("GetByID")

	var meeting Meeting
	if err := r.getDB(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("meeting", id)
		}
		return nil, log.Err("failed to get meeting by id", err, "id", id)
	}

	return &meeting, nil
}

// GetAll lists meetings with the recruit and mentor names joined in,
// newest first.
func (r *meetingRepository) GetAll(ctx context.Context) ([]*MeetingDetail, error) {
	log := r.log.Function("GetAll")

	var meetings []*MeetingDetail
	if err := r.getDB(ctx).
		Table("meetings").
		Select("meetings.*, recruits.name AS recruit_name, mentors.name AS mentor_name").
		Joins("LEFT JOIN recruits ON meetings.recruit_id = recruits.id").
		Joins("LEFT JOIN mentors ON meetings.mentor_id = mentors.id").
		Order("meetings.meeting_date DESC").
		Scan(&meetings).Error; err != nil {
		return nil, log.Err("failed to get all meetings", err)
	}

	return meetings, nil
}

func (r *meetingRepository) Create(ctx context.Context, meeting *Meeting) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(meeting).Error; err != nil {
		return log.Err("failed to create meeting", err, "meeting", meeting)
	}

	return nil
}

func (r *meetingRepository) Update(ctx context.Context, meeting *Meeting) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(meeting).Error; err != nil {
		return log.Err("failed to update meeting", err, "meeting", meeting)
	}

	return nil
}

func (r *meetingRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Meeting{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete meeting", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return NewNotFound("meeting", id)
	}

	return nil
}
