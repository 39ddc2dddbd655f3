package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/metrics"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("developer and ownership rights required")
	ErrModuleNotFound = errors.New("module not found")
	ErrEmptyScript    = errors.New("script must not be empty")
)

// ModuleReader defines read-only operations for modules.
type ModuleReader interface {
	GetByID(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error) // nil when absent
}

// ModuleWriter defines write operations for modules.
type ModuleWriter interface {
	Save(ctx context.Context, module models.ModuleDB) error
	Update(ctx context.Context, module models.ModuleDB) (int64, error)
	Delete(ctx context.Context, moduleID uuid.UUID) (int64, error)
	IncrementRun(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error)
}

// InstallCounter exposes the live install count from the ledger.
type InstallCounter interface {
	CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RegistryService handles module CRUD with ownership enforcement and the
// unauthenticated run counter.
type RegistryService struct {
	readRepo    ModuleReader
	writeRepo   ModuleWriter
	installs    InstallCounter
	kafkaWriter KafkaWriter
	sink        metrics.Sink
}

// NewRegistryService creates a new RegistryService.
func NewRegistryService(
	readRepo ModuleReader,
	writeRepo ModuleWriter,
	installs InstallCounter,
	kafkaWriter KafkaWriter,
	sink metrics.Sink,
) *RegistryService {
	return &RegistryService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		installs:    installs,
		kafkaWriter: kafkaWriter,
		sink:        sink,
	}
}

// publishEvent publishes a marketplace event to Kafka, fire-and-forget.
func (svc *RegistryService) publishEvent(ctx context.Context, event models.Event) {
	publishEvent(ctx, svc.kafkaWriter, event)
}

// Create registers a new module. A nil actor is allowed: the module is
// then created ownerless, matching legacy behavior.
func (svc *RegistryService) Create(ctx context.Context, actor *models.UserDB, name, description, script string, inputs models.InputFields) (*models.ModuleDB, error) {
	if strings.TrimSpace(script) == "" {
		return nil, ErrEmptyScript
	}

	now := time.Now().UTC()
	module := models.ModuleDB{
		ModuleID:    uuid.New(),
		Name:        name,
		Description: description,
		Script:      script,
		Inputs:      inputs,
		RunCount:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if actor != nil {
		ownerID := actor.UserID
		module.OwnerID = &ownerID
	}

	if err := svc.writeRepo.Save(ctx, module); err != nil {
		logger.Log.Errorw("failed to save module", "name", name, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, newEvent(models.EventModuleCreated, module.ModuleID, module.OwnerID))
	return &module, nil
}

// Update overwrites the mutable fields of a module. The actor must be a
// developer and the stored owner; a module with no owner can never be
// updated, which is the preserved legacy behavior.
func (svc *RegistryService) Update(ctx context.Context, actor *models.UserDB, moduleID uuid.UUID, name, description, script string, inputs models.InputFields) (*models.ModuleDB, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	existing, err := svc.readRepo.GetByID(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get module", "moduleID", moduleID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrModuleNotFound
	}

	if !svc.canModify(actor, existing) {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(script) == "" {
		return nil, ErrEmptyScript
	}

	updated := *existing
	updated.Name = name
	updated.Description = description
	updated.Script = script
	updated.Inputs = inputs
	updated.UpdatedAt = time.Now().UTC()

	rows, err := svc.writeRepo.Update(ctx, updated)
	if err != nil {
		logger.Log.Errorw("failed to update module", "moduleID", moduleID, "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrModuleNotFound
	}

	svc.publishEvent(ctx, newEvent(models.EventModuleUpdated, moduleID, &actor.UserID))
	return &updated, nil
}

// Delete removes a module under the same authorization contract as
// Update. Install records for the module cascade at the store layer.
func (svc *RegistryService) Delete(ctx context.Context, actor *models.UserDB, moduleID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthorized
	}

	existing, err := svc.readRepo.GetByID(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get module", "moduleID", moduleID, "err", err)
		return err
	}
	if existing == nil {
		return ErrModuleNotFound
	}

	if !svc.canModify(actor, existing) {
		return ErrForbidden
	}

	rows, err := svc.writeRepo.Delete(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to delete module", "moduleID", moduleID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrModuleNotFound
	}

	svc.publishEvent(ctx, newEvent(models.EventModuleDeleted, moduleID, &actor.UserID))
	return nil
}

// IncrementRun increments a module's run counter by exactly 1. Any caller
// may record a run; the operation is deliberately unauthenticated.
func (svc *RegistryService) IncrementRun(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error) {
	start := time.Now()
	tags := map[string]string{"module_id": moduleID.String()}

	module, err := svc.writeRepo.IncrementRun(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to increment run count", "moduleID", moduleID, "err", err)
		svc.runMetrics(start, tags, "error")
		return nil, err
	}
	if module == nil {
		svc.runMetrics(start, tags, "not_found")
		return nil, ErrModuleNotFound
	}

	svc.runMetrics(start, tags, "success")
	svc.publishEvent(ctx, newEvent(models.EventModuleRun, moduleID, nil))
	return module, nil
}

// Get returns a module together with its live install count.
func (svc *RegistryService) Get(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, int, error) {
	module, err := svc.readRepo.GetByID(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to get module", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}
	if module == nil {
		return nil, 0, ErrModuleNotFound
	}

	count, err := svc.installs.CountByModule(ctx, moduleID)
	if err != nil {
		logger.Log.Errorw("failed to count installs", "moduleID", moduleID, "err", err)
		return nil, 0, err
	}

	return module, count, nil
}

// canModify reports whether actor may update or delete the module: the
// actor must hold the developer flag and be the stored owner. A NULL
// owner matches no one.
func (svc *RegistryService) canModify(actor *models.UserDB, module *models.ModuleDB) bool {
	if !actor.IsDeveloper {
		return false
	}
	if module.OwnerID == nil {
		return false
	}
	return *module.OwnerID == actor.UserID
}

func (svc *RegistryService) runMetrics(start time.Time, tags map[string]string, outcome string) {
	if svc.sink == nil {
		return
	}
	labeled := map[string]string{"module_id": tags["module_id"], "outcome": outcome}
	svc.sink.Increment("module_run_total", labeled)
	svc.sink.Observe("module_run_duration_seconds", time.Since(start).Seconds(), labeled)
}

// newEvent builds a marketplace event with a fresh id and timestamp.
func newEvent(eventType string, moduleID uuid.UUID, actorID *uuid.UUID) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ModuleID:  moduleID,
		ActorID:   actorID,
		Timestamp: time.Now().Unix(),
	}
}

// publishEvent serializes an event and writes it to Kafka. Failures are
// logged and swallowed; telemetry never blocks the primary operation.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}
