// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "lmi/internal/delivery/context"
	"lmi/internal/domain/entity"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/domain/repository"
	"lmi/internal/domain/service"
	"lmi/internal/errors"
	"lmi/internal/usecase"

	"go.uber.org/fx"
)

const saasAdminResource = "SAAS Admin"

// Per-operation internal kinds. The messages are fixed and user-facing; the
// underlying cause only ever reaches the log.
var (
	errListSaaSAdmins = domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_LIST_FAILED", "Unable to list SAAS Admins, please try again later.")
	errCreateSaaSAdmin = domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_CREATE_FAILED", "Unable to create SAAS Admin, please try again later.")
	errGetSaaSAdmin = domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_GET_FAILED", "Unable to get details SAAS Admin, please try again later.")
	errUpdateSaaSAdmin = domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_UPDATE_FAILED", "Unable to update SAAS Admin, please try again later.")
	errDeleteSaaSAdmin = domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_DELETE_FAILED", "Unable to delete SAAS Admin, please try again later.")
)

// saasAdminService implements the SaaSAdminUsecase interface.
type saasAdminService struct {
	txManager  repository.TransactionManager
	adminRepo  repository.SaaSAdminRepository
	generator  service.CredentialGenerator
	hasher     service.CredentialHasher
	dispatcher service.CredentialDispatcher
	logger     *slog.Logger
}

// SaaSAdminServiceParams holds dependencies for the service, injected by Fx.
type SaaSAdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	AdminRepo  repository.SaaSAdminRepository
	Generator  service.CredentialGenerator
	Hasher     service.CredentialHasher
	Dispatcher service.CredentialDispatcher
	Logger     *slog.Logger
}

// NewSaaSAdminService is the constructor for saasAdminService.
func NewSaaSAdminService(params SaaSAdminServiceParams) usecase.SaaSAdminUsecase {
	return &saasAdminService{
		txManager:  params.TxManager,
		adminRepo:  params.AdminRepo,
		generator:  params.Generator,
		hasher:     params.Hasher,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *saasAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// finalize classifies an operation error. Conflicts and not-found pass
// through untouched; anything else is logged with its payload and collapses
// to the operation's fixed internal kind.
func (srv *saasAdminService) finalize(ctx context.Context, op string, kind *domainerrors.BaseError, err error, payload any) error {
	var conflict *domainerrors.ConflictError
	if errors.As(err, &conflict) {
		return conflict
	}

	if errors.Is(err, repository.ErrSaaSAdminNotFound) {
		return domainerrors.ErrSaaSAdminNotFound
	}

	srv.log(ctx).Error("SAAS admin operation failed",
		slog.String("operation", op),
		slog.Any("error", err),
		slog.Any("payload", payload),
	)

	return errors.Join(kind, err)
}

// List returns one page of admins through the restricted projection.
func (srv *saasAdminService) List(ctx context.Context, input usecase.ListInput) (*usecase.Page[usecase.SaaSAdminView], error) {
	query := repository.ListQuery{
		SortBy: input.SortBy,
		Order:  repository.SortOrder(input.Order),
		Page:   input.Page,
		Size:   input.Size,
	}

	admins, total, err := srv.adminRepo.List(ctx, query)
	if err != nil {
		return nil, srv.finalize(ctx, "list", errListSaaSAdmins, err, input)
	}

	views := make([]usecase.SaaSAdminView, 0, len(admins))
	for i := range admins {
		views = append(views, toSaaSAdminView(&admins[i]))
	}

	return usecase.NewPage(views, total, input.Page, input.Size), nil
}

// Create provisions a new admin account. The credential is generated and
// hashed inside the transaction; the plaintext is dispatched only after the
// commit, and a dispatch failure never unwinds the created account.
func (srv *saasAdminService) Create(ctx context.Context, input *usecase.SaaSAdminInput) error {
	var notice *service.CredentialNotice

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.SaaSAdmins()

		// Optimistic pre-check. The store's unique index is the actual
		// race-safety backstop; a violation at insert time surfaces as the
		// same conflict value.
		taken, err := adminRepo.ExistsByEmail(ctx, *input.Email, 0)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if taken {
			return domainerrors.NewConflictError(saasAdminResource, "email", *input.Email)
		}

		plain, err := srv.generator.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate credential")
		}

		hashed, err := srv.hasher.Hash(plain)
		if err != nil {
			return errors.Wrap(err, "failed to hash credential")
		}

		admin := &entity.SaaSAdmin{
			Username:    *input.Username,
			FirstName:   *input.FirstName,
			LastName:    *input.LastName,
			Email:       *input.Email,
			PhoneNumber: *input.PhoneNumber,
			Password:    hashed,
		}

		if err := adminRepo.Create(ctx, admin); err != nil {
			return err
		}

		notice = &service.CredentialNotice{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			AdminID:   admin.ID,
			Username:  admin.Username,
			Email:     admin.Email,
			Password:  plain,
		}

		return nil
	})
	if err != nil {
		return srv.finalize(ctx, "create", errCreateSaaSAdmin, err, input)
	}

	// Post-commit, best effort. The account exists either way.
	if err := srv.dispatcher.Dispatch(ctx, notice); err != nil {
		srv.log(ctx).Error("Failed to dispatch admin credential",
			slog.Uint64("admin_id", uint64(notice.AdminID)),
			slog.Any("error", err),
		)
	}

	return nil
}

// Get retrieves one admin through the restricted projection.
func (srv *saasAdminService) Get(ctx context.Context, id uint) (*usecase.SaaSAdminView, error) {
	admin, err := srv.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.finalize(ctx, "get", errGetSaaSAdmin, err, id)
	}

	view := toSaaSAdminView(admin)

	return &view, nil
}

// Update applies the full writable field set to one admin. The target's
// username is returned for the confirmation message.
func (srv *saasAdminService) Update(ctx context.Context, id uint, input *usecase.SaaSAdminInput) (string, error) {
	var username string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.SaaSAdmins()

		summary, err := adminRepo.FindSummaryByID(ctx, id)
		if err != nil {
			return err
		}
		username = summary.Username

		// Another live admin may already own the requested email.
		taken, err := adminRepo.ExistsByEmail(ctx, *input.Email, id)
		if err != nil {
			return errors.Wrap(err, "failed to check email existence")
		}
		if taken {
			return domainerrors.NewConflictError(saasAdminResource, "email", *input.Email)
		}

		return adminRepo.Update(ctx, id, repository.SaaSAdminUpdate{
			Username:    *input.Username,
			FirstName:   *input.FirstName,
			LastName:    *input.LastName,
			Email:       *input.Email,
			PhoneNumber: *input.PhoneNumber,
		})
	})
	if err != nil {
		return "", srv.finalize(ctx, "update", errUpdateSaaSAdmin, err, input)
	}

	return username, nil
}

// Delete soft-deletes one admin and returns its username.
func (srv *saasAdminService) Delete(ctx context.Context, id uint) (string, error) {
	var username string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.SaaSAdmins()

		summary, err := adminRepo.FindSummaryByID(ctx, id)
		if err != nil {
			return err
		}
		username = summary.Username

		return adminRepo.Delete(ctx, id)
	})
	if err != nil {
		return "", srv.finalize(ctx, "delete", errDeleteSaaSAdmin, err, id)
	}

	return username, nil
}

func toSaaSAdminView(admin *entity.SaaSAdmin) usecase.SaaSAdminView {
	return usecase.SaaSAdminView{
		ID:          admin.ID,
		FirstName:   admin.FirstName,
		LastName:    admin.LastName,
		Email:       admin.Email,
		PhoneNumber: admin.PhoneNumber,
		IsActive:    admin.IsActive,
		CreatedAt:   admin.CreatedAt,
	}
}
