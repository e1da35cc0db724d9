package postgres

import (
	"log/slog"

	"lmi/internal/errors"
	"lmi/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every registered admin model.
// Store/City/State/Country carry no endpoints yet but are part of the data
// model and migrate with the rest.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	logger.Info("Running database migrations")

	err := db.AutoMigrate(
		&model.SaaSAdminModel{},
		&model.HolidayModel{},
		&model.CountryModel{},
		&model.StateModel{},
		&model.CityModel{},
		&model.StoreModel{},
		&model.StoreContactDetailModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}
