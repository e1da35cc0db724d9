package postgres

import (
	"context"
	"time"

	"lmi/internal/domain/entity"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/domain/repository"
	"lmi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const holidayResource = "Holiday"

// holidayRepository implements the repository.HolidayRepository interface using GORM.
type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository is the constructor for holidayRepository.
func NewHolidayRepository(db *gorm.DB) repository.HolidayRepository {
	return &holidayRepository{
		db: db,
	}
}

// List returns one page of live holidays plus the total live count.
func (repo *holidayRepository) List(ctx context.Context, query repository.ListQuery) ([]entity.Holiday, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.HolidayModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count holidays")
	}

	var rows []model.HolidayModel
	err := repo.db.WithContext(ctx).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: query.SortBy},
			Desc:   query.Order == repository.SortDesc,
		}).
		Order("id asc").
		Offset(query.Offset()).
		Limit(query.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list holidays")
	}

	holidays := make([]entity.Holiday, 0, len(rows))
	for i := range rows {
		holidays = append(holidays, *toHolidayDomain(&rows[i]))
	}

	return holidays, total, nil
}

// FindByID retrieves a single live holiday.
func (repo *holidayRepository) FindByID(ctx context.Context, id uint) (*entity.Holiday, error) {
	var holidayM model.HolidayModel

	if err := repo.db.WithContext(ctx).First(&holidayM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHolidayNotFound
		}

		return nil, errors.Wrap(err, "failed to find holiday by id")
	}

	return toHolidayDomain(&holidayM), nil
}

// FindSummaryByID fetches just id and title.
func (repo *holidayRepository) FindSummaryByID(ctx context.Context, id uint) (*entity.HolidaySummary, error) {
	var holidayM model.HolidayModel

	err := repo.db.WithContext(ctx).
		Select("id", "title").
		First(&holidayM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHolidayNotFound
		}

		return nil, errors.Wrap(err, "failed to find holiday summary by id")
	}

	return &entity.HolidaySummary{ID: holidayM.ID, Title: holidayM.Title}, nil
}

// ExistsByTitleDate reports whether a live holiday with the same title/date
// pair exists, optionally excluding one row.
func (repo *holidayRepository) ExistsByTitleDate(ctx context.Context, title string, date time.Time, excludeID uint) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.HolidayModel{}).
		Where("title = ? AND date = ?", title, date)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check holiday existence")
	}

	return count > 0, nil
}

// Create persists a new holiday, remapping unique violations to a conflict.
func (repo *holidayRepository) Create(ctx context.Context, holiday *entity.Holiday) error {
	holidayM := fromHolidayDomain(holiday)

	if err := repo.db.WithContext(ctx).Create(holidayM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConflictError(holidayResource, "title", holiday.Title)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create holiday")
	}

	holiday.ID = holidayM.ID
	holiday.CreatedAt = holidayM.CreatedAt
	holiday.UpdatedAt = holidayM.UpdatedAt

	return nil
}

// Update applies the bulk field mutation to one holiday row.
func (repo *holidayRepository) Update(ctx context.Context, id uint, fields repository.HolidayUpdate) error {
	err := repo.db.WithContext(ctx).
		Model(&model.HolidayModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       fields.Title,
			"date":        fields.Date,
			"description": fields.Description,
		}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConflictError(holidayResource, "title", fields.Title)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update holiday")
	}

	return nil
}

// Delete soft-deletes the holiday.
func (repo *holidayRepository) Delete(ctx context.Context, id uint) error {
	if err := repo.db.WithContext(ctx).Delete(&model.HolidayModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete holiday")
	}

	return nil
}

// --- Mapper Functions ---

func toHolidayDomain(data *model.HolidayModel) *entity.Holiday {
	if data == nil {
		return nil
	}

	return &entity.Holiday{
		ID:          data.ID,
		Title:       data.Title,
		Date:        data.Date,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromHolidayDomain(data *entity.Holiday) *model.HolidayModel {
	if data == nil {
		return nil
	}

	return &model.HolidayModel{
		ID:          data.ID,
		Title:       data.Title,
		Date:        data.Date,
		Description: data.Description,
	}
}
