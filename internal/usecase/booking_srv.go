package usecase

import (
	"context"
	"fmt"
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/dto/request"
	"menu-booking/internal/dto/response"
	"menu-booking/internal/pricing"
	"menu-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetAvailableSlots(ctx context.Context, itemID string, req *request.AvailableSlotsRequest) (*response.AvailableSlotsResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	resolver  TaxResolver
	committer BookingCommitter
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, resolver TaxResolver, committer BookingCommitter, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		resolver:  resolver,
		committer: committer,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if !pricing.IsValidTimeFormat(req.StartTime) || !pricing.IsValidTimeFormat(req.EndTime) {
		return nil, fmt.Errorf("%w: start_time and end_time must use HH:MM", ErrValidation)
	}
	if !pricing.IsEndAfterStart(req.StartTime, req.EndTime) {
		return nil, fmt.Errorf("%w: end_time %s must be after start_time %s", ErrValidation, req.EndTime, req.StartTime)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, req.Date)
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item ID %s", ErrValidation, req.ItemID)
	}

	item, err := s.repo.Item.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, req.ItemID)
	}
	if !item.IsBookable || item.Availability == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotBookable, req.ItemID)
	}

	if err := s.checkAvailability(item.Availability, date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	addonIDs, addonPrices, err := s.resolveAddons(ctx, itemID, req.AddonIDs)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	// The snapshot is informational; the pricing endpoint stays authoritative.
	// Dynamic time-based items are priced at the booking's start moment.
	taxInfo := s.resolver.ResolveForItem(ctx, item)
	breakdown, err := pricing.CalculatePrice(item, taxInfo, pricing.Context{
		Quantity:            quantity,
		CurrentTime:         atClock(date, req.StartTime),
		SelectedAddonPrices: addonPrices,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ItemID:     itemID,
		UserEmail:  req.UserEmail,
		UserName:   req.UserName,
		UserPhone:  req.UserPhone,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     entity.BookingStatusPending,
		Notes:      req.Notes,
		TotalPrice: breakdown.FinalPrice,
		AddonIDs:   addonIDs,
	}

	if err := s.committer.Commit(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("item_id", req.ItemID),
		zap.String("user_email", req.UserEmail),
		zap.String("date", req.Date),
		zap.String("slot", req.StartTime+"-"+req.EndTime),
		zap.Float64("total_price", booking.TotalPrice),
	)

	return s.buildBookingResponse(ctx, booking), nil
}

// atClock combines a date with an HH:MM clock string.
func atClock(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// checkAvailability verifies the requested interval falls on a configured day
// and inside one configured slot.
func (s *bookingService) checkAvailability(availability *entity.Availability, date time.Time, startTime, endTime string) error {
	day := pricing.WeekdayName(date)
	if !pricing.DayConfigured(availability, day) {
		return fmt.Errorf("%w: item is not available on %s", ErrOutsideAvailability, day)
	}

	for _, slot := range availability.TimeSlots {
		if slot.StartTime <= startTime && slot.EndTime >= endTime {
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s does not fit a configured slot", ErrOutsideAvailability, startTime, endTime)
}

func (s *bookingService) resolveAddons(ctx context.Context, itemID uuid.UUID, addonIDs []string) ([]uuid.UUID, []float64, error) {
	if len(addonIDs) == 0 {
		return nil, nil, nil
	}

	ids := make([]uuid.UUID, len(addonIDs))
	for i, addonID := range addonIDs {
		id, err := uuid.Parse(addonID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid addon ID %s", ErrValidation, addonID)
		}
		ids[i] = id
	}

	addons, err := s.repo.Addon.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(addons) != len(ids) {
		return nil, nil, fmt.Errorf("%w: one or more addons do not exist", ErrAddonNotFound)
	}

	prices := make([]float64, len(addons))
	for i, addon := range addons {
		if addon.ItemID != itemID {
			return nil, nil, fmt.Errorf("%w: addon %s", ErrAddonItemMismatch, addon.ID.String())
		}
		prices[i] = addon.Price
	}

	return ids, prices, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List bookings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := repository.BookingFilter{
		UserEmail: req.UserEmail,
		Status:    entity.BookingStatus(req.Status),
	}
	if req.ItemID != nil {
		id, err := uuid.Parse(*req.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid item ID %s", ErrValidation, *req.ItemID)
		}
		filter.ItemID = &id
	}
	if req.DateFrom != "" {
		from, err := utils.ParseDate(req.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_from %s", ErrValidation, req.DateFrom)
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := utils.ParseDate(req.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_to %s", ErrValidation, req.DateTo)
		}
		filter.DateTo = &to
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userEmail string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	next := entity.BookingStatus(req.Status)
	return s.transition(ctx, booking, next)
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, booking, entity.BookingStatusCancelled)
}

func (s *bookingService) transition(ctx context.Context, booking *entity.Booking, next entity.BookingStatus) (*response.BookingResponse, error) {
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, next)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, next); err != nil {
		return nil, err
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
	)

	booking.Status = next
	return s.buildBookingResponse(ctx, booking), nil
}

// GetAvailableSlots reports each configured slot for a date with its computed
// availability. A date on a non-configured day yields an empty slot list, not
// an error.
func (s *bookingService) GetAvailableSlots(ctx context.Context, itemID string, req *request.AvailableSlotsRequest) (*response.AvailableSlotsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Available slots validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item ID %s", ErrValidation, itemID)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, req.Date)
	}

	item, err := s.repo.Item.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if !item.IsBookable || item.Availability == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotBookable, itemID)
	}

	day := pricing.WeekdayName(date)
	resp := &response.AvailableSlotsResponse{
		ItemID: itemID,
		Date:   req.Date,
		Day:    day,
		Slots:  []pricing.Slot{},
	}

	if !pricing.DayConfigured(item.Availability, day) {
		return resp, nil
	}

	// Every pending or confirmed booking for the date blocks slots; the
	// full-day range picks them all up under the inclusive predicate.
	bookings, err := s.repo.Booking.FindConflicting(ctx, id, date, "00:00", "23:59", nil)
	if err != nil {
		return nil, err
	}

	resp.Slots = pricing.MarkSlots(item.Availability.TimeSlots, bookings)
	return resp, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	resp := response.BookingToResponse(booking)

	item, _ := s.repo.Item.FindByIDIncludingInactive(ctx, booking.ItemID)
	if item != nil {
		resp.ItemName = item.Name
	}

	return &resp
}
