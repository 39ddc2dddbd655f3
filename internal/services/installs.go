package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/metrics"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/repositories"
)

// Error variables
var (
	ErrAlreadyInstalled = errors.New("module already installed")
	ErrNotInstalled     = errors.New("module is not installed")
	ErrInvalidUserID    = errors.New("invalid user id")
)

// InstallReader defines read operations on the install ledger.
type InstallReader interface {
	CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InstalledModule, error)
}

// InstallWriter defines write operations on the install ledger.
type InstallWriter interface {
	Save(ctx context.Context, userID, moduleID uuid.UUID, installedAt time.Time) error
	Delete(ctx context.Context, userID, moduleID uuid.UUID) (int64, error)
}

// InstallService tracks which users installed which modules, enforcing
// one install per (user, module) pair through the store's composite key.
type InstallService struct {
	modules     ModuleReader
	readRepo    InstallReader
	writeRepo   InstallWriter
	kafkaWriter KafkaWriter
	sink        metrics.Sink
}

// NewInstallService creates a new InstallService.
func NewInstallService(
	modules ModuleReader,
	readRepo InstallReader,
	writeRepo InstallWriter,
	kafkaWriter KafkaWriter,
	sink metrics.Sink,
) *InstallService {
	return &InstallService{
		modules:     modules,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
		sink:        sink,
	}
}

// Install records that the user installed the module and returns the
// module with its refreshed install count. A second install of the same
// pair is rejected, not merged. The install metric is incremented exactly
// once per successful call, never on conflict or not-found.
func (svc *InstallService) Install(ctx context.Context, moduleID, userID uuid.UUID) (*models.ModuleDB, int, error) {
	module, err := svc.modules.GetByID(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get module", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}
	if module == nil {
		return nil, 0, ErrModuleNotFound
	}

	if err := svc.writeRepo.Save(ctx, userID, moduleID, time.Now().UTC()); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, 0, ErrAlreadyInstalled
		}
		logger.Log.Errorw("failed to save install record", "moduleID", moduleID, "userID", userID, "err", err)
		return nil, 0, err
	}

	if svc.sink != nil {
		svc.sink.Increment("module_install_total", nil)
	}
	svc.publishInstallEvent(ctx, models.EventModuleInstalled, moduleID, userID)

	count, err := svc.readRepo.CountByModule(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to count installs", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}

	return module, count, nil
}

// Uninstall removes the install record for the (user, module) pair; this
// is the only uninstall mechanism.
func (svc *InstallService) Uninstall(ctx context.Context, moduleID, userID uuid.UUID) (*models.ModuleDB, int, error) {
	module, err := svc.modules.GetByID(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get module", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}
	if module == nil {
		return nil, 0, ErrModuleNotFound
	}

	rows, err := svc.writeRepo.Delete(ctx, userID, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to delete install record", "moduleID", moduleID, "userID", userID, "err", err)
		return nil, 0, err
	}
	if rows == 0 {
		return nil, 0, ErrNotInstalled
	}

	svc.publishInstallEvent(ctx, models.EventModuleRemoved, moduleID, userID)

	count, err := svc.readRepo.CountByModule(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to count installs", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}

	return module, count, nil
}

// ListInstalled returns every module the user has installed, annotated
// with its global install count and the author's username.
func (svc *InstallService) ListInstalled(ctx context.Context, userID string) ([]models.InstalledModule, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return nil, ErrInvalidUserID
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	installed, err := svc.readRepo.ListByUser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list installed modules", "userID", trimmed, "err", err)
		return nil, err
	}

	return installed, nil
}

// CountFor returns the live install count for a module.
func (svc *InstallService) CountFor(ctx context.Context, moduleID uuid.UUID) (int, error) {
	return svc.readRepo.CountByModule(ctx, moduleID)
}

func (svc *InstallService) publishInstallEvent(ctx context.Context, eventType string, moduleID, userID uuid.UUID) {
	actorID := userID
	publishEvent(ctx, svc.kafkaWriter, newEvent(eventType, moduleID, &actorID))
}
