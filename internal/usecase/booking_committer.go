package usecase

import (
	"context"
	"fmt"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/pkg/database"

	"go.uber.org/zap"
)

// BookingCommitter atomically performs the final conflict check and insert of
// a booking. The service validates everything else first; the committer only
// guards the race between two requests for the same slot.
type BookingCommitter interface {
	Commit(ctx context.Context, booking *entity.Booking) error
}

// NewBookingCommitter selects the strategy once, at wiring time, from the
// database capability flag.
func NewBookingCommitter(db database.PgxIface, bookings repository.BookingRepository, log *zap.Logger) BookingCommitter {
	if db.SupportsTransactions() {
		return &transactionalCommitter{
			db:       db,
			bookings: bookings,
			log:      log.With(zap.String("service", "booking_committer")),
		}
	}
	return &optimisticCommitter{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking_committer")),
	}
}

// transactionalCommitter runs check and insert in one transaction.
type transactionalCommitter struct {
	db       database.PgxIface
	bookings repository.BookingRepository
	log      *zap.Logger
}

func (c *transactionalCommitter) Commit(ctx context.Context, booking *entity.Booking) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		c.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	conflicts, err := c.bookings.FindConflictingTx(ctx, tx, booking.ItemID, booking.Date, booking.StartTime, booking.EndTime, nil)
	if err != nil {
		return fmt.Errorf("check booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: item %s on %s %s-%s", ErrBookingConflict,
			booking.ItemID.String(), booking.Date.Format("2006-01-02"), booking.StartTime, booking.EndTime)
	}

	if err := c.bookings.CreateTx(ctx, tx, booking); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		c.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

// optimisticCommitter checks, inserts, then re-checks. If a concurrent insert
// slipped in between, our own booking is cancelled and the conflict reported.
type optimisticCommitter struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func (c *optimisticCommitter) Commit(ctx context.Context, booking *entity.Booking) error {
	conflicts, err := c.bookings.FindConflicting(ctx, booking.ItemID, booking.Date, booking.StartTime, booking.EndTime, nil)
	if err != nil {
		return fmt.Errorf("check booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: item %s on %s %s-%s", ErrBookingConflict,
			booking.ItemID.String(), booking.Date.Format("2006-01-02"), booking.StartTime, booking.EndTime)
	}

	if err := c.bookings.Create(ctx, booking); err != nil {
		return err
	}

	// Post-write verification catches concurrent inserts.
	conflicts, err = c.bookings.FindConflicting(ctx, booking.ItemID, booking.Date, booking.StartTime, booking.EndTime, &booking.ID)
	if err != nil {
		return fmt.Errorf("verify booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		if cancelErr := c.bookings.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); cancelErr != nil {
			c.log.Error("Failed to cancel booking after conflict detection",
				zap.Error(cancelErr),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		return fmt.Errorf("%w: item %s on %s %s-%s", ErrBookingConflict,
			booking.ItemID.String(), booking.Date.Format("2006-01-02"), booking.StartTime, booking.EndTime)
	}

	return nil
}
