package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// ModuleWriteRepository handles module write operations
type ModuleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewModuleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ModuleWriteRepository {
	return &ModuleWriteRepository{db: db, txGetter: txGetter}
}

func (r *ModuleWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new module row.
func (r *ModuleWriteRepository) Save(ctx context.Context, module models.ModuleDB) error {
	query := `
		INSERT INTO modules (module_id, name, description, script, inputs, run_count, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		module.ModuleID, module.Name, module.Description, module.Script,
		module.Inputs, module.RunCount, module.OwnerID, module.CreatedAt, module.UpdatedAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{module.ModuleID, module.Name},
		"result", rowsAffected,
		"error", err,
	)

	return translateError(err)
}

// Update overwrites the mutable fields of a module and bumps updated_at.
// Returns the number of rows affected: 0 means the module is absent.
func (r *ModuleWriteRepository) Update(ctx context.Context, module models.ModuleDB) (int64, error) {
	query := `
		UPDATE modules
		SET name = $2, description = $3, script = $4, inputs = $5, updated_at = $6
		WHERE module_id = $1
	`
	args := []any{
		module.ModuleID, module.Name, module.Description, module.Script,
		module.Inputs, module.UpdatedAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{module.ModuleID, module.Name},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes a module; install records cascade at the store layer.
// Returns the number of rows affected: 0 means the module is absent.
func (r *ModuleWriteRepository) Delete(ctx context.Context, moduleID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM modules
		WHERE module_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, moduleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{moduleID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// IncrementRun atomically increments run_count by exactly 1 and bumps
// updated_at, returning the updated row, or nil when the module is absent.
func (r *ModuleWriteRepository) IncrementRun(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error) {
	query := `
		UPDATE modules
		SET run_count = run_count + 1, updated_at = NOW()
		WHERE module_id = $1
		RETURNING module_id, name, description, script, inputs, run_count, owner_id, created_at, updated_at
	`

	var module models.ModuleDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &module, query, moduleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{moduleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &module, nil
}

// ModuleReadRepository handles module read operations
type ModuleReadRepository struct {
	db *sqlx.DB
}

func NewModuleReadRepository(db *sqlx.DB) *ModuleReadRepository {
	return &ModuleReadRepository{db: db}
}

// GetByID returns the module with the given id, or nil when absent.
func (r *ModuleReadRepository) GetByID(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error) {
	const query = `
		SELECT module_id, name, description, script, inputs, run_count, owner_id, created_at, updated_at
		FROM modules
		WHERE module_id = $1
	`

	var module models.ModuleDB
	err := r.db.GetContext(ctx, &module, query, moduleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{moduleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &module, nil
}

// escapeLikePattern neutralizes LIKE metacharacters so the bound value
// matches as a literal substring, never as a pattern.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// Search returns candidate modules for ranking, each with its live total
// and recent install counts. When query is blank no substring filter is
// applied; otherwise the match is a case-insensitive literal substring
// over name or description.
func (r *ModuleReadRepository) Search(ctx context.Context, query string, since time.Time) ([]models.ModuleWithCounts, error) {
	const stmt = `
		SELECT m.module_id, m.name, m.description, m.script, m.inputs,
		       m.run_count, m.owner_id, m.created_at, m.updated_at,
		       COUNT(i.user_id) AS install_count,
		       COUNT(i.user_id) FILTER (WHERE i.installed_at >= $2) AS recent_install_count
		FROM modules m
		LEFT JOIN installs i ON i.module_id = m.module_id
		WHERE ($1 = '' OR m.name ILIKE '%' || $1 || '%' ESCAPE '\' OR m.description ILIKE '%' || $1 || '%' ESCAPE '\')
		GROUP BY m.module_id
	`

	var rows []models.ModuleWithCounts
	err := r.db.SelectContext(ctx, &rows, stmt, escapeLikePattern(query), since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(stmt), " "),
		"args", []any{escapeLikePattern(query), since},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}
