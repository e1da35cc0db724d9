package postgres

import (
	"context"

	"lmi/internal/domain/entity"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/domain/repository"
	"lmi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saasAdminResource is the display label used in conflict messages.
const saasAdminResource = "SAAS Admin"

// saasAdminProjection is the external read projection. The password column is
// deliberately absent; no read path ever selects it.
var saasAdminProjection = []string{
	"id", "first_name", "last_name", "email", "phone_number", "is_active", "created_at",
}

// saasAdminRepository implements the repository.SaaSAdminRepository interface using GORM.
type saasAdminRepository struct {
	db *gorm.DB
}

// NewSaaSAdminRepository is the constructor for saasAdminRepository.
func NewSaaSAdminRepository(db *gorm.DB) repository.SaaSAdminRepository {
	return &saasAdminRepository{
		db: db,
	}
}

// List returns one page of live admins plus the total live count. Ordering is
// the requested sort column/direction with id ascending as the tie-break, so
// pagination stays deterministic when sort values collide.
func (repo *saasAdminRepository) List(ctx context.Context, query repository.ListQuery) ([]entity.SaaSAdmin, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.SaaSAdminModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count saas admins")
	}

	var rows []model.SaaSAdminModel
	err := repo.db.WithContext(ctx).
		Select(saasAdminProjection).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: query.SortBy},
			Desc:   query.Order == repository.SortDesc,
		}).
		Order("id asc").
		Offset(query.Offset()).
		Limit(query.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list saas admins")
	}

	admins := make([]entity.SaaSAdmin, 0, len(rows))
	for i := range rows {
		admins = append(admins, *toSaaSAdminDomain(&rows[i]))
	}

	return admins, total, nil
}

// FindByID retrieves a single live admin through the restricted projection.
func (repo *saasAdminRepository) FindByID(ctx context.Context, id uint) (*entity.SaaSAdmin, error) {
	var adminM model.SaaSAdminModel

	err := repo.db.WithContext(ctx).
		Select(saasAdminProjection).
		First(&adminM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaaSAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find saas admin by id")
	}

	return toSaaSAdminDomain(&adminM), nil
}

// FindSummaryByID fetches just id and username.
func (repo *saasAdminRepository) FindSummaryByID(ctx context.Context, id uint) (*entity.SaaSAdminSummary, error) {
	var adminM model.SaaSAdminModel

	err := repo.db.WithContext(ctx).
		Select("id", "username").
		First(&adminM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaaSAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find saas admin summary by id")
	}

	return &entity.SaaSAdminSummary{ID: adminM.ID, Username: adminM.Username}, nil
}

// ExistsByEmail reports whether a live admin owns the email, optionally
// excluding one row (the update target).
func (repo *saasAdminRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SaaSAdminModel{}).
		Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check saas admin email existence")
	}

	return count > 0, nil
}

// Create persists a new admin. A unique violation on the live-email index is
// remapped to the same ConflictError the optimistic pre-check produces.
func (repo *saasAdminRepository) Create(ctx context.Context, admin *entity.SaaSAdmin) error {
	adminM := fromSaaSAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConflictError(saasAdminResource, "email", admin.Email)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required saas admin field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create saas admin")
	}

	// Propagate store-assigned fields back to the entity.
	admin.ID = adminM.ID
	admin.IsActive = adminM.IsActive
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// Update applies the bulk field mutation to one admin row.
func (repo *saasAdminRepository) Update(ctx context.Context, id uint, fields repository.SaaSAdminUpdate) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SaaSAdminModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":     fields.Username,
			"first_name":   fields.FirstName,
			"last_name":    fields.LastName,
			"email":        fields.Email,
			"phone_number": fields.PhoneNumber,
		}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConflictError(saasAdminResource, "email", fields.Email)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update saas admin")
	}

	return nil
}

// Delete soft-deletes the admin; it disappears from the live set and its
// email becomes reusable (the unique index covers live rows only).
func (repo *saasAdminRepository) Delete(ctx context.Context, id uint) error {
	if err := repo.db.WithContext(ctx).Delete(&model.SaaSAdminModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete saas admin")
	}

	return nil
}

// --- Mapper Functions ---

// toSaaSAdminDomain converts a GORM SaaSAdminModel to a domain entity.
func toSaaSAdminDomain(data *model.SaaSAdminModel) *entity.SaaSAdmin {
	if data == nil {
		return nil
	}

	return &entity.SaaSAdmin{
		ID:          data.ID,
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSaaSAdminDomain converts a domain entity to a GORM model for persistence.
func fromSaaSAdminDomain(data *entity.SaaSAdmin) *model.SaaSAdminModel {
	if data == nil {
		return nil
	}

	return &model.SaaSAdminModel{
		ID:          data.ID,
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Password:    data.Password,
		IsActive:    true,
	}
}
