package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// InstallWriteRepository handles install-ledger write operations
type InstallWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInstallWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InstallWriteRepository {
	return &InstallWriteRepository{db: db, txGetter: txGetter}
}

func (r *InstallWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts an install record. A duplicate (user, module) pair is
// rejected by the composite primary key and surfaces as
// ErrUniqueViolation; the constraint, not an application lock, is what
// keeps concurrent duplicate installs out.
func (r *InstallWriteRepository) Save(ctx context.Context, userID, moduleID uuid.UUID, installedAt time.Time) error {
	query := `
		INSERT INTO installs (user_id, module_id, installed_at)
		VALUES ($1, $2, $3)
	`
	args := []any{userID, moduleID, installedAt}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, moduleID},
		"result", rowsAffected,
		"error", err,
	)

	return translateError(err)
}

// Delete removes the install record for the (user, module) pair.
// Returns the number of rows affected: 0 means no record existed.
func (r *InstallWriteRepository) Delete(ctx context.Context, userID, moduleID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM installs
		WHERE user_id = $1 AND module_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, moduleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, moduleID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// InstallReadRepository handles install-ledger read operations
type InstallReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInstallReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InstallReadRepository {
	return &InstallReadRepository{db: db, txGetter: txGetter}
}

func (r *InstallReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// CountByModule returns the total number of install records referencing
// the module, computed live. Reads go through the request transaction
// when one is present, so a count taken right after an insert or delete
// in the same request reflects that write before it commits.
func (r *InstallReadRepository) CountByModule(ctx context.Context, moduleID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM installs
		WHERE module_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, moduleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{moduleID},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListByUser returns every module the user has installed, annotated with
// its current global install count and the resolved owner's username
// (empty when the module is ownerless or the owner no longer exists).
func (r *InstallReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InstalledModule, error) {
	const query = `
		SELECT m.module_id, m.name, m.description, m.script, m.inputs,
		       m.run_count, m.owner_id, m.created_at, m.updated_at,
		       i.installed_at,
		       COALESCE(u.username, '') AS author_username,
		       (SELECT COUNT(*) FROM installs c WHERE c.module_id = m.module_id) AS install_count
		FROM installs i
		JOIN modules m ON m.module_id = i.module_id
		LEFT JOIN users u ON u.user_id = m.owner_id
		WHERE i.user_id = $1
		ORDER BY i.installed_at DESC
	`

	var rows []models.InstalledModule
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}
