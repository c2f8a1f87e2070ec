package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"clinikit/internal/domain/module"

	"golang.org/x/exp/slog"
)

func NewModuleRepository(storage *Storage, log *slog.Logger) *ModuleRepository {
	return &ModuleRepository{
		db:  storage.DB(),
		log: log,
	}
}

type ModuleRepository struct {
	db  *sql.DB
	log *slog.Logger
}

// List returns the module registry in insertion order.
func (r *ModuleRepository) List(ctx context.Context) ([]module.Module, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, href, title, description, icon FROM modules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer rows.Close()

	var modules []module.Module
	for rows.Next() {
		var m module.Module
		if err := rows.Scan(&m.ID, &m.Href, &m.Title, &m.Description, &m.Icon); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}
