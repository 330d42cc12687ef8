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

const RECRUIT_CACHE_EXPIRY = 1 * time.Hour

type RecruitRepository interface {
	GetByID(ctx context.Context, id int) (*Recruit, error)
	GetAll(ctx context.Context) ([]*Recruit, error)
	GetOverdue(ctx context.Context, now time.Time) ([]*Recruit, error)
	Create(ctx context.Context, recruit *Recruit) error
	Update(ctx context.Context, recruit *Recruit) error
	Delete(ctx context.Context, id int) error
	MarkContact(ctx context.Context, id int, at time.Time) error
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountLicensedSince(ctx context.Context, since time.Time) (int, error)
}

type recruitRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRecruit(db database.DB) RecruitRepository {
	return &recruitRepository{
		db:  db,
		log: logger.New("recruitRepository"),
	}
}

func (r *recruitRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *recruitRepository) GetByID(ctx context.Context, id int) (*Recruit, error) {
	log := r.log.Function("GetByID")

	var recruit Recruit
	if found, err := database.NewCacheBuilder(r.db.Cache.Recruit, strconv.Itoa(id)).
		WithContext(ctx).Get(&recruit); err == nil && found {
		return &recruit, nil
	}

	if err := r.getDB(ctx).First(&recruit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound("recruit", id)
		}
		return nil, log.Err("failed to get recruit by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &recruit); err != nil {
		log.Warn("failed to add recruit to cache", "recruitID", id, "error", err)
	}

	return &recruit, nil
}

func (r *recruitRepository) GetAll(ctx context.Context) ([]*Recruit, error) {
	log := r.log.Function("GetAll")

	var recruits []*Recruit
	if err := r.getDB(ctx).Order("updated_at DESC").Find(&recruits).Error; err != nil {
		return nil, log.Err("failed to get all recruits", err)
	}

	return recruits, nil
}

// GetOverdue returns the follow-up queue: non-terminal recruits never
// contacted or last contacted strictly more than FollowUpWindow ago,
// highest priority first, most neglected first within a priority. The
// filter must classify exactly like Recruit.IsOverdue.
func (r *recruitRepository) GetOverdue(ctx context.Context, now time.Time) ([]*Recruit, error) {
	log := r.log.Function("GetOverdue")

	cutoff := now.Add(-FollowUpWindow)

	var recruits []*Recruit
	if err := r.getDB(ctx).
		Where("stage NOT IN ?", TerminalStages()).
		Where("last_contact IS NULL OR last_contact < ?", cutoff).
		Order("priority DESC, updated_at ASC").
		Find(&recruits).Error; err != nil {
		return nil, log.Err("failed to get overdue recruits", err)
	}

	return recruits, nil
}

func (r *recruitRepository) Create(ctx context.Context, recruit *Recruit) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(recruit).Error; err != nil {
		return log.Err("failed to create recruit", err, "recruit", recruit)
	}

	if err := r.addToCache(ctx, recruit); err != nil {
		log.Warn("failed to add recruit to cache", "recruitID", recruit.ID, "error", err)
	}

	return nil
}

func (r *recruitRepository) Update(ctx context.Context, recruit *Recruit) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(recruit).Error; err != nil {
		return log.Err("failed to update recruit", err, "recruit", recruit)
	}

	if err := r.addToCache(ctx, recruit); err != nil {
		log.Warn("failed to update recruit in cache", "recruitID", recruit.ID, "error", err)
	}

	return nil
}

func (r *recruitRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&Recruit{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete recruit", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return NewNotFound("recruit", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Recruit, strconv.Itoa(id)).
		WithContext(ctx).Delete(); err != nil {
		log.Warn("failed to remove recruit from cache", "recruitID", id, "error", err)
	}

	return nil
}

// MarkContact stamps last_contact and updated_at in one statement. A
// missing recruit is a NotFoundError, never a silent no-op.
func (r *recruitRepository) MarkContact(ctx context.Context, id int, at time.Time) error {
	log := r.log.Function("MarkContact")

	result := r.getDB(ctx).Model(&Recruit{}).Where("id = ?", id).
		Updates(map[string]any{"last_contact": at, "updated_at": at})
	if result.Error != nil {
		return log.Err("failed to mark contact", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return NewNotFound("recruit", id)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Recruit, strconv.Itoa(id)).
		WithContext(ctx).Delete(); err != nil {
		log.Warn("failed to invalidate recruit cache", "recruitID", id, "error", err)
	}

	return nil
}

func (r *recruitRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	log := r.log.Function("CountCreatedSince")

	var count int64
	if err := r.getDB(ctx).Model(&Recruit{}).
		Where("created_at > ?", since).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count recently created recruits", err)
	}

	return int(count), nil
}

func (r *recruitRepository) CountLicensedSince(ctx context.Context, since time.Time) (int, error) {
	log := r.log.Function("CountLicensedSince")

	var count int64
	if err := r.getDB(ctx).Model(&Recruit{}).
		Where("stage = ? AND updated_at > ?", StageLicensed, since).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count recently licensed recruits", err)
	}

	return int(count), nil
}

func (r *recruitRepository) addToCache(ctx context.Context, recruit *Recruit) error {
	return database.NewCacheBuilder(r.db.Cache.Recruit, strconv.Itoa(recruit.ID)).
		WithStruct(recruit).
		WithTTL(RECRUIT_CACHE_EXPIRY).
		WithContext(ctx).
		Set()
}
