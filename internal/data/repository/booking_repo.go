package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingFilter struct {
	ItemID    *uuid.UUID
	UserEmail string
	Status    entity.BookingStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateTx(ctx context.Context, q Queryer, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserEmail(ctx context.Context, userEmail string) ([]*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountByFilter(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// Conflict detection: pending and confirmed bookings on the same item and
	// date whose [start_time, end_time] overlaps under inclusive bounds.
	FindConflicting(ctx context.Context, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error)
	FindConflictingTx(ctx context.Context, q Queryer, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, item_id, user_email, user_name, user_phone, date, start_time, end_time, status, notes, total_price, addon_ids, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ItemID,
		&booking.UserEmail,
		&booking.UserName,
		&booking.UserPhone,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Notes,
		&booking.TotalPrice,
		&booking.AddonIDs,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.CreateTx(ctx, r.db, booking)
}

func (r *bookingRepository) CreateTx(ctx context.Context, q Queryer, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, item_id, user_email, user_name, user_phone, date, start_time, end_time, status, notes, total_price, addon_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.ItemID,
		booking.UserEmail,
		booking.UserName,
		booking.UserPhone,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.Notes,
		booking.TotalPrice,
		booking.AddonIDs,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("item_id", booking.ItemID.String()),
			zap.String("user_email", booking.UserEmail),
		)
		return fmt.Errorf("create booking for item %s: %w", booking.ItemID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userEmail)
	if err != nil {
		r.log.Error("Failed to find bookings by user email",
			zap.Error(err),
			zap.String("user_email", userEmail),
		)
		return nil, fmt.Errorf("find bookings by user email %s: %w", userEmail, err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func collectBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func buildBookingWhere(filter BookingFilter, args *[]any) string {
	clauses := []string{}
	if filter.ItemID != nil {
		*args = append(*args, *filter.ItemID)
		clauses = append(clauses, fmt.Sprintf("item_id = $%d", len(*args)))
	}
	if filter.UserEmail != "" {
		*args = append(*args, filter.UserEmail)
		clauses = append(clauses, fmt.Sprintf("user_email = $%d", len(*args)))
	}
	if filter.Status != "" {
		*args = append(*args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(*args)))
	}
	if filter.DateFrom != nil {
		*args = append(*args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(*args)))
	}
	if filter.DateTo != nil {
		*args = append(*args, *filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(*args)))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	args := []any{}
	query := `SELECT ` + bookingColumns + ` FROM bookings` + buildBookingWhere(filter, &args)
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func (r *bookingRepository) CountByFilter(ctx context.Context, filter BookingFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM bookings` + buildBookingWhere(filter, &args)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET item_id = $2, user_email = $3, user_name = $4, user_phone = $5, date = $6,
		    start_time = $7, end_time = $8, status = $9, notes = $10, total_price = $11,
		    addon_ids = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ItemID,
		booking.UserEmail,
		booking.UserName,
		booking.UserPhone,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.Notes,
		booking.TotalPrice,
		booking.AddonIDs,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", bookingID.String(), ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) FindConflicting(ctx context.Context, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	return r.FindConflictingTx(ctx, r.db, itemID, date, startTime, endTime, excludeID)
}

func (r *bookingRepository) FindConflictingTx(ctx context.Context, q Queryer, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	// Inclusive comparison on both ends: back-to-back bookings conflict.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE item_id = $1
		  AND date = $2
		  AND status IN ('pending', 'confirmed')
		  AND start_time <= $4
		  AND end_time >= $3
	`
	args := []any{itemID, date, startTime, endTime}

	if excludeID != nil {
		args = append(args, *excludeID)
		query += fmt.Sprintf(" AND id != $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find conflicting bookings",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
			zap.String("start_time", startTime),
			zap.String("end_time", endTime),
		)
		return nil, fmt.Errorf("find conflicting bookings for item %s: %w", itemID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}
