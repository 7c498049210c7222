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

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error)
	FindAll(ctx context.Context, categoryID *uuid.UUID, isActive *bool, limit, offset int) ([]*entity.Subcategory, error)
	CountByFilter(ctx context.Context, categoryID *uuid.UUID, isActive *bool) (int64, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type subcategoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubcategoryRepository(db database.PgxIface, log *zap.Logger) SubcategoryRepository {
	return &subcategoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "subcategory")),
	}
}

const subcategoryColumns = `id, name, description, category_id, tax_applicable, tax_percentage, is_active, created_at, updated_at`

func scanSubcategory(row pgx.Row) (*entity.Subcategory, error) {
	var subcategory entity.Subcategory
	err := row.Scan(
		&subcategory.ID,
		&subcategory.Name,
		&subcategory.Description,
		&subcategory.CategoryID,
		&subcategory.TaxApplicable,
		&subcategory.TaxPercentage,
		&subcategory.IsActive,
		&subcategory.CreatedAt,
		&subcategory.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, tax_applicable, tax_percentage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		subcategory.ID,
		subcategory.Name,
		subcategory.Description,
		subcategory.CategoryID,
		subcategory.TaxApplicable,
		subcategory.TaxPercentage,
		subcategory.IsActive,
		subcategory.CreatedAt,
		subcategory.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create subcategory",
			zap.Error(err),
			zap.String("name", subcategory.Name),
			zap.String("category_id", subcategory.CategoryID.String()),
		)
		return fmt.Errorf("create subcategory %s: %w", subcategory.Name, err)
	}

	return nil
}

func (r *subcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE id = $1 AND is_active = true`

	subcategory, err := scanSubcategory(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subcategory by ID",
			zap.Error(err),
			zap.String("subcategory_id", id.String()),
		)
		return nil, fmt.Errorf("find subcategory by ID %s: %w", id.String(), err)
	}

	return subcategory, nil
}

func (r *subcategoryRepository) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE id = $1`

	subcategory, err := scanSubcategory(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subcategory by ID",
			zap.Error(err),
			zap.String("subcategory_id", id.String()),
		)
		return nil, fmt.Errorf("find subcategory by ID %s: %w", id.String(), err)
	}

	return subcategory, nil
}

func (r *subcategoryRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	query := `
		SELECT ` + subcategoryColumns + `
		FROM subcategories
		WHERE category_id = $1 AND is_active = true
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to find subcategories by category ID",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("find subcategories by category ID %s: %w", categoryID.String(), err)
	}
	defer rows.Close()

	var subcategories []*entity.Subcategory
	for rows.Next() {
		subcategory, err := scanSubcategory(rows)
		if err != nil {
			r.log.Error("Failed to scan subcategory row", zap.Error(err))
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		subcategories = append(subcategories, subcategory)
	}

	return subcategories, nil
}

func (r *subcategoryRepository) FindAll(ctx context.Context, categoryID *uuid.UUID, isActive *bool, limit, offset int) ([]*entity.Subcategory, error) {
	args := []any{}
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories` + buildSubcategoryWhere(categoryID, isActive, &args)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find subcategories", zap.Error(err))
		return nil, fmt.Errorf("find subcategories: %w", err)
	}
	defer rows.Close()

	var subcategories []*entity.Subcategory
	for rows.Next() {
		subcategory, err := scanSubcategory(rows)
		if err != nil {
			r.log.Error("Failed to scan subcategory row", zap.Error(err))
			return nil, fmt.Errorf("scan subcategory row: %w", err)
		}
		subcategories = append(subcategories, subcategory)
	}

	return subcategories, nil
}

func (r *subcategoryRepository) CountByFilter(ctx context.Context, categoryID *uuid.UUID, isActive *bool) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM subcategories` + buildSubcategoryWhere(categoryID, isActive, &args)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count subcategories", zap.Error(err))
		return 0, fmt.Errorf("count subcategories: %w", err)
	}

	return count, nil
}

func buildSubcategoryWhere(categoryID *uuid.UUID, isActive *bool, args *[]any) string {
	where := ""
	if categoryID != nil {
		*args = append(*args, *categoryID)
		where = fmt.Sprintf(" WHERE category_id = $%d", len(*args))
	}
	if isActive != nil {
		*args = append(*args, *isActive)
		if where == "" {
			where = fmt.Sprintf(" WHERE is_active = $%d", len(*args))
		} else {
			where += fmt.Sprintf(" AND is_active = $%d", len(*args))
		}
	}
	return where
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $2, description = $3, category_id = $4, tax_applicable = $5,
		    tax_percentage = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		subcategory.ID,
		subcategory.Name,
		subcategory.Description,
		subcategory.CategoryID,
		subcategory.TaxApplicable,
		subcategory.TaxPercentage,
		subcategory.IsActive,
		subcategory.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update subcategory",
			zap.Error(err),
			zap.String("subcategory_id", subcategory.ID.String()),
		)
		return fmt.Errorf("update subcategory %s: %w", subcategory.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update subcategory %s: %w", subcategory.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *subcategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE subcategories SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft delete subcategory",
			zap.Error(err),
			zap.String("subcategory_id", id.String()),
		)
		return fmt.Errorf("soft delete subcategory %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("soft delete subcategory %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
