package repository

import (
	"context"
	"fmt"

	"menu-booking/internal/data/entity"
	"menu-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddonRepository interface {
	Create(ctx context.Context, addon *entity.Addon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Addon, error)
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*entity.Addon, error)
	Update(ctx context.Context, addon *entity.Addon) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type addonRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddonRepository(db database.PgxIface, log *zap.Logger) AddonRepository {
	return &addonRepository{
		db:  db,
		log: log.With(zap.String("repository", "addon")),
	}
}

const addonColumns = `id, name, price, item_id, is_mandatory, group_id, group_name, is_active, created_at, updated_at`

func scanAddon(row pgx.Row) (*entity.Addon, error) {
	var addon entity.Addon
	err := row.Scan(
		&addon.ID,
		&addon.Name,
		&addon.Price,
		&addon.ItemID,
		&addon.IsMandatory,
		&addon.GroupID,
		&addon.GroupName,
		&addon.IsActive,
		&addon.CreatedAt,
		&addon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	query := `
		INSERT INTO addons (id, name, price, item_id, is_mandatory, group_id, group_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.Name,
		addon.Price,
		addon.ItemID,
		addon.IsMandatory,
		addon.GroupID,
		addon.GroupName,
		addon.IsActive,
		addon.CreatedAt,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create addon",
			zap.Error(err),
			zap.String("name", addon.Name),
			zap.String("item_id", addon.ItemID.String()),
		)
		return fmt.Errorf("create addon %s: %w", addon.Name, err)
	}

	return nil
}

func (r *addonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	query := `SELECT ` + addonColumns + ` FROM addons WHERE id = $1 AND is_active = true`

	addon, err := scanAddon(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find addon by ID",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return nil, fmt.Errorf("find addon by ID %s: %w", id.String(), err)
	}

	return addon, nil
}

func (r *addonRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + addonColumns + ` FROM addons WHERE id = ANY($1) AND is_active = true`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find addons by IDs", zap.Error(err))
		return nil, fmt.Errorf("find addons by IDs: %w", err)
	}
	defer rows.Close()

	var addons []*entity.Addon
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			r.log.Error("Failed to scan addon row", zap.Error(err))
			return nil, fmt.Errorf("scan addon row: %w", err)
		}
		addons = append(addons, addon)
	}

	return addons, nil
}

func (r *addonRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*entity.Addon, error) {
	query := `
		SELECT ` + addonColumns + `
		FROM addons
		WHERE item_id = $1 AND is_active = true
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		r.log.Error("Failed to find addons by item ID",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
		)
		return nil, fmt.Errorf("find addons by item ID %s: %w", itemID.String(), err)
	}
	defer rows.Close()

	var addons []*entity.Addon
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			r.log.Error("Failed to scan addon row", zap.Error(err))
			return nil, fmt.Errorf("scan addon row: %w", err)
		}
		addons = append(addons, addon)
	}

	return addons, nil
}

func (r *addonRepository) Update(ctx context.Context, addon *entity.Addon) error {
	query := `
		UPDATE addons
		SET name = $2, price = $3, item_id = $4, is_mandatory = $5,
		    group_id = $6, group_name = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.Name,
		addon.Price,
		addon.ItemID,
		addon.IsMandatory,
		addon.GroupID,
		addon.GroupName,
		addon.IsActive,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update addon",
			zap.Error(err),
			zap.String("addon_id", addon.ID.String()),
		)
		return fmt.Errorf("update addon %s: %w", addon.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update addon %s: %w", addon.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *addonRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE addons SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft delete addon",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return fmt.Errorf("soft delete addon %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("soft delete addon %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
