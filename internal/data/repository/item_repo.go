package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"menu-booking/internal/data/entity"
	"menu-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItemFilter struct {
	SubcategoryID *uuid.UUID
	PricingType   entity.PricingType
	IsBookable    *bool
	IsActive      *bool
	Search        string
}

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	FindBySubcategoryID(ctx context.Context, subcategoryID uuid.UUID) ([]*entity.Item, error)
	FindAll(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.Item, error)
	CountByFilter(ctx context.Context, filter ItemFilter) (int64, error)
	CountBySubcategoryIDs(ctx context.Context, subcategoryIDs []uuid.UUID) (int64, error)
	Update(ctx context.Context, item *entity.Item) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) error
}

type itemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItemRepository(db database.PgxIface, log *zap.Logger) ItemRepository {
	return &itemRepository{
		db:  db,
		log: log.With(zap.String("repository", "item")),
	}
}

const itemColumns = `id, name, description, subcategory_id, pricing_type, pricing_details, is_bookable, availability, is_active, created_at, updated_at`

// pricing_details and availability live in jsonb columns.
func scanItem(row pgx.Row) (*entity.Item, error) {
	var (
		item             entity.Item
		pricingDetails   []byte
		availabilityJSON []byte
	)

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.SubcategoryID,
		&item.PricingType,
		&pricingDetails,
		&item.IsBookable,
		&availabilityJSON,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(pricingDetails) > 0 {
		if err := json.Unmarshal(pricingDetails, &item.PricingDetails); err != nil {
			return nil, fmt.Errorf("decode pricing details: %w", err)
		}
	}
	if len(availabilityJSON) > 0 {
		var availability entity.Availability
		if err := json.Unmarshal(availabilityJSON, &availability); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
		item.Availability = &availability
	}

	return &item, nil
}

func encodeItemJSON(item *entity.Item) ([]byte, []byte, error) {
	pricingDetails, err := json.Marshal(item.PricingDetails)
	if err != nil {
		return nil, nil, fmt.Errorf("encode pricing details: %w", err)
	}

	var availabilityJSON []byte
	if item.Availability != nil {
		availabilityJSON, err = json.Marshal(item.Availability)
		if err != nil {
			return nil, nil, fmt.Errorf("encode availability: %w", err)
		}
	}

	return pricingDetails, availabilityJSON, nil
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	pricingDetails, availabilityJSON, err := encodeItemJSON(item)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO items (id, name, description, subcategory_id, pricing_type, pricing_details, is_bookable, availability, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.SubcategoryID,
		item.PricingType,
		pricingDetails,
		item.IsBookable,
		availabilityJSON,
		item.IsActive,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create item",
			zap.Error(err),
			zap.String("name", item.Name),
			zap.String("pricing_type", string(item.PricingType)),
		)
		return fmt.Errorf("create item %s: %w", item.Name, err)
	}

	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND is_active = true`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func (r *itemRepository) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func (r *itemRepository) FindBySubcategoryID(ctx context.Context, subcategoryID uuid.UUID) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE subcategory_id = $1 AND is_active = true
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, subcategoryID)
	if err != nil {
		r.log.Error("Failed to find items by subcategory ID",
			zap.Error(err),
			zap.String("subcategory_id", subcategoryID.String()),
		)
		return nil, fmt.Errorf("find items by subcategory ID %s: %w", subcategoryID.String(), err)
	}
	defer rows.Close()

	return collectItems(rows, r.log)
}

func collectItems(rows pgx.Rows, log *zap.Logger) ([]*entity.Item, error) {
	var items []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Error("Failed to scan item row", zap.Error(err))
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItemWhere(filter ItemFilter, args *[]any) string {
	clauses := []string{}
	if filter.SubcategoryID != nil {
		*args = append(*args, *filter.SubcategoryID)
		clauses = append(clauses, fmt.Sprintf("subcategory_id = $%d", len(*args)))
	}
	if filter.PricingType != "" {
		*args = append(*args, filter.PricingType)
		clauses = append(clauses, fmt.Sprintf("pricing_type = $%d", len(*args)))
	}
	if filter.IsBookable != nil {
		*args = append(*args, *filter.IsBookable)
		clauses = append(clauses, fmt.Sprintf("is_bookable = $%d", len(*args)))
	}
	if filter.IsActive != nil {
		*args = append(*args, *filter.IsActive)
		clauses = append(clauses, fmt.Sprintf("is_active = $%d", len(*args)))
	}
	if filter.Search != "" {
		*args = append(*args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(*args), len(*args)))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (r *itemRepository) FindAll(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.Item, error) {
	args := []any{}
	query := `SELECT ` + itemColumns + ` FROM items` + buildItemWhere(filter, &args)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find items", zap.Error(err))
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows, r.log)
}

func (r *itemRepository) CountByFilter(ctx context.Context, filter ItemFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM items` + buildItemWhere(filter, &args)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count items", zap.Error(err))
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

func (r *itemRepository) CountBySubcategoryIDs(ctx context.Context, subcategoryIDs []uuid.UUID) (int64, error) {
	if len(subcategoryIDs) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM items WHERE subcategory_id = ANY($1) AND is_active = true`

	var count int64
	if err := r.db.QueryRow(ctx, query, subcategoryIDs).Scan(&count); err != nil {
		r.log.Error("Failed to count items by subcategory IDs", zap.Error(err))
		return 0, fmt.Errorf("count items by subcategory IDs: %w", err)
	}

	return count, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	pricingDetails, availabilityJSON, err := encodeItemJSON(item)
	if err != nil {
		return err
	}

	query := `
		UPDATE items
		SET name = $2, description = $3, subcategory_id = $4, pricing_type = $5,
		    pricing_details = $6, is_bookable = $7, availability = $8, is_active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.SubcategoryID,
		item.PricingType,
		pricingDetails,
		item.IsBookable,
		availabilityJSON,
		item.IsActive,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update item",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
		)
		return fmt.Errorf("update item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update item %s: %w", item.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *itemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE items SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft delete item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("soft delete item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("soft delete item %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *itemRepository) SoftDeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) error {
	query := `UPDATE items SET is_active = false, updated_at = NOW() WHERE subcategory_id = $1 AND is_active = true`

	_, err := r.db.Exec(ctx, query, subcategoryID)
	if err != nil {
		r.log.Error("Failed to soft delete items by subcategory",
			zap.Error(err),
			zap.String("subcategory_id", subcategoryID.String()),
		)
		return fmt.Errorf("soft delete items by subcategory %s: %w", subcategoryID.String(), err)
	}

	return nil
}
