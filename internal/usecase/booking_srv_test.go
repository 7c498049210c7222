package usecase

import (
	"context"
	"errors"
	"testing"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/dto/request"
	"menu-booking/internal/pricing"

	"github.com/google/uuid"
)

func newTestBookingService(repo *repository.Repository) BookingService {
	log := testLogger()
	resolver := NewTaxResolver(repo, log)
	committer := &optimisticCommitter{bookings: repo.Booking, log: log}
	return NewBookingService(repo, resolver, committer, log)
}

// seedBookableItem stores a category, subcategory and a bookable static-price
// item available on mondays 09:00-18:00.
func seedBookableItem(t *testing.T, repo *repository.Repository, price float64) *entity.Item {
	t.Helper()
	ctx := context.Background()

	category := &entity.Category{Name: "Venues", IsActive: true}
	seedBase(&category.Base)
	if err := repo.Category.Create(ctx, category); err != nil {
		t.Fatal(err)
	}

	subcategory := &entity.Subcategory{Name: "Rooms", CategoryID: category.ID, IsActive: true}
	seedBase(&subcategory.Base)
	if err := repo.Subcategory.Create(ctx, subcategory); err != nil {
		t.Fatal(err)
	}

	item := &entity.Item{
		Name:          "Conference Room",
		SubcategoryID: subcategory.ID,
		PricingType:   entity.PricingTypeStatic,
		PricingDetails: entity.PricingDetails{
			Static: &entity.StaticPricing{StaticPrice: price},
		},
		IsBookable: true,
		Availability: &entity.Availability{
			Days: []string{"monday"},
			TimeSlots: []entity.TimeSlot{
				{StartTime: "09:00", EndTime: "18:00"},
			},
		},
		IsActive: true,
	}
	seedBase(&item.Base)
	if err := repo.Item.Create(ctx, item); err != nil {
		t.Fatal(err)
	}

	return item
}

// 2026-01-05 is a Monday.
const mondayDate = "2026-01-05"

func createRequest(itemID uuid.UUID, startTime, endTime string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ItemID:    itemID.String(),
		UserEmail: "user@example.com",
		UserName:  "Test User",
		Date:      mondayDate,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	booking, err := service.CreateBooking(context.Background(), createRequest(item.ID, "10:00", "11:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != entity.BookingStatusPending {
		t.Errorf("status = %v, want pending", booking.Status)
	}
	if booking.TotalPrice != 50 {
		t.Errorf("total price = %v, want 50", booking.TotalPrice)
	}
	if booking.ItemName != "Conference Room" {
		t.Errorf("item name = %q", booking.ItemName)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	if _, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "12:00")); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	_, err := service.CreateBooking(ctx, createRequest(item.ID, "11:00", "13:00"))
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("error = %v, want %v", err, ErrBookingConflict)
	}
}

// A booking ending at 12:00 blocks one starting at 12:00.
func TestCreateBookingBackToBackConflicts(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	if _, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "12:00")); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	_, err := service.CreateBooking(ctx, createRequest(item.ID, "12:00", "14:00"))
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("error = %v, want %v", err, ErrBookingConflict)
	}
}

func TestCreateBookingDifferentDatesDoNotConflict(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	if _, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "12:00")); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	req := createRequest(item.ID, "10:00", "12:00")
	req.Date = "2026-01-12" // the following monday
	if _, err := service.CreateBooking(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateBookingCancelledDoesNotBlock(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	first, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "12:00"))
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if _, err := service.CancelBooking(ctx, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "12:00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateBookingNotBookable(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	item.IsBookable = false
	item.Availability = nil
	service := newTestBookingService(repo)

	_, err := service.CreateBooking(context.Background(), createRequest(item.ID, "10:00", "11:00"))
	if !errors.Is(err, ErrItemNotBookable) {
		t.Fatalf("error = %v, want %v", err, ErrItemNotBookable)
	}
}

func TestCreateBookingOutsideConfiguredDay(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	req := createRequest(item.ID, "10:00", "11:00")
	req.Date = "2026-01-04" // a sunday
	_, err := service.CreateBooking(context.Background(), req)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("error = %v, want %v", err, ErrOutsideAvailability)
	}
}

func TestCreateBookingOutsideConfiguredSlot(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	_, err := service.CreateBooking(context.Background(), createRequest(item.ID, "17:00", "19:00"))
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("error = %v, want %v", err, ErrOutsideAvailability)
	}
}

func TestCreateBookingEndBeforeStart(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	_, err := service.CreateBooking(context.Background(), createRequest(item.ID, "12:00", "10:00"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want %v", err, ErrValidation)
	}
}

func TestCreateBookingAddonFromOtherItem(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	foreign := &entity.Addon{Name: "Projector", Price: 10, ItemID: uuid.New(), IsActive: true}
	seedBase(&foreign.Base)
	if err := repo.Addon.Create(ctx, foreign); err != nil {
		t.Fatal(err)
	}

	req := createRequest(item.ID, "10:00", "11:00")
	req.AddonIDs = []string{foreign.ID.String()}
	_, err := service.CreateBooking(ctx, req)
	if !errors.Is(err, ErrAddonItemMismatch) {
		t.Fatalf("error = %v, want %v", err, ErrAddonItemMismatch)
	}
}

func TestCreateBookingIncludesAddonPrices(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	addon := &entity.Addon{Name: "Catering", Price: 25, ItemID: item.ID, IsActive: true}
	seedBase(&addon.Base)
	if err := repo.Addon.Create(ctx, addon); err != nil {
		t.Fatal(err)
	}

	req := createRequest(item.ID, "10:00", "11:00")
	req.AddonIDs = []string{addon.ID.String()}
	booking, err := service.CreateBooking(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TotalPrice != 75 {
		t.Errorf("total price = %v, want 75", booking.TotalPrice)
	}
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	booking, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "11:00"))
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	confirmed, err := service.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("pending -> confirmed failed: %v", err)
	}
	if confirmed.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %v, want confirmed", confirmed.Status)
	}

	completed, err := service.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("confirmed -> completed failed: %v", err)
	}
	if completed.Status != entity.BookingStatusCompleted {
		t.Errorf("status = %v, want completed", completed.Status)
	}

	// Completed is terminal.
	_, err = service.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "cancelled"})
	if !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidStatusTransition)
	}
}

func TestUpdateBookingStatusSkippingPendingRejected(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)
	ctx := context.Background()

	booking, err := service.CreateBooking(ctx, createRequest(item.ID, "10:00", "11:00"))
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	_, err = service.UpdateBookingStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "completed"})
	if !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidStatusTransition)
	}
}

func TestGetAvailableSlots(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	item.Availability.TimeSlots = []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "10:30", EndTime: "11:30"},
	}
	service := newTestBookingService(repo)
	ctx := context.Background()

	if _, err := service.CreateBooking(ctx, createRequest(item.ID, "09:00", "10:00")); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	slots, err := service.GetAvailableSlots(ctx, item.ID.String(), &request.AvailableSlotsRequest{Date: mondayDate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots.Slots))
	}
	if slots.Slots[0].IsAvailable {
		t.Error("booked slot should be unavailable")
	}
	if !slots.Slots[1].IsAvailable {
		t.Error("free slot should be available")
	}
}

func TestGetAvailableSlotsUnconfiguredDay(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	slots, err := service.GetAvailableSlots(context.Background(), item.ID.String(), &request.AvailableSlotsRequest{Date: "2026-01-04"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots.Slots) != 0 {
		t.Errorf("got %d slots, want 0", len(slots.Slots))
	}
	if slots.Day != "sunday" {
		t.Errorf("day = %q, want sunday", slots.Day)
	}
}

func TestCreateBookingItemNotFound(t *testing.T) {
	repo := newTestRepository()
	seedBookableItem(t, repo, 50)
	service := newTestBookingService(repo)

	_, err := service.CreateBooking(context.Background(), createRequest(uuid.New(), "10:00", "11:00"))
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrItemNotFound)
	}
}

// An explicit zero quantity reaches tier matching instead of defaulting to 1.
func TestCreateBookingZeroQuantityFailsTierMatch(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 0)
	item.PricingType = entity.PricingTypeTiered
	item.PricingDetails = entity.PricingDetails{Tiered: &entity.TieredPricing{Tiers: []entity.Tier{
		{MinQuantity: 1, MaxQuantity: 10, PricePerUnit: 50},
	}}}
	service := newTestBookingService(repo)

	req := createRequest(item.ID, "10:00", "11:00")
	req.Quantity = intPtr(0)
	_, err := service.CreateBooking(context.Background(), req)
	if !errors.Is(err, pricing.ErrNoMatchingTier) {
		t.Fatalf("error = %v, want %v", err, pricing.ErrNoMatchingTier)
	}
}

// Dynamic time-based items snapshot the price at the booking's start moment.
func TestCreateBookingDynamicPriceUsesBookingTime(t *testing.T) {
	repo := newTestRepository()
	item := seedBookableItem(t, repo, 0)
	item.PricingType = entity.PricingTypeDynamicTimeBased
	item.PricingDetails = entity.PricingDetails{DynamicTime: &entity.DynamicTimePricing{
		TimeWindows: []entity.TimeWindow{
			{DayOfWeek: "monday", StartTime: "09:00", EndTime: "12:00", Price: 80},
			{DayOfWeek: "monday", StartTime: "13:00", EndTime: "18:00", Price: 120},
		},
	}}
	service := newTestBookingService(repo)

	booking, err := service.CreateBooking(context.Background(), createRequest(item.ID, "14:00", "15:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TotalPrice != 120 {
		t.Errorf("total price = %v, want 120", booking.TotalPrice)
	}
}
