package usecase

import (
	"context"
	"strings"
	"time"

	"menu-booking/internal/data/entity"
	"menu-booking/internal/data/repository"
	"menu-booking/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes backing the service tests.

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok || !category.IsActive {
		return nil, nil
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, category := range f.categories {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, filter repository.CategoryFilter, limit, offset int) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) CountByFilter(ctx context.Context, filter repository.CategoryFilter) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if category, ok := f.categories[id]; ok {
		category.IsActive = false
	}
	return nil
}

type fakeSubcategoryRepo struct {
	subcategories map[uuid.UUID]*entity.Subcategory
}

func newFakeSubcategoryRepo() *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{subcategories: map[uuid.UUID]*entity.Subcategory{}}
}

func (f *fakeSubcategoryRepo) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	f.subcategories[subcategory.ID] = subcategory
	return nil
}

func (f *fakeSubcategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	subcategory, ok := f.subcategories[id]
	if !ok || !subcategory.IsActive {
		return nil, nil
	}
	return subcategory, nil
}

func (f *fakeSubcategoryRepo) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	return f.subcategories[id], nil
}

func (f *fakeSubcategoryRepo) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	var subcategories []*entity.Subcategory
	for _, subcategory := range f.subcategories {
		if subcategory.CategoryID == categoryID && subcategory.IsActive {
			subcategories = append(subcategories, subcategory)
		}
	}
	return subcategories, nil
}

func (f *fakeSubcategoryRepo) FindAll(ctx context.Context, categoryID *uuid.UUID, isActive *bool, limit, offset int) ([]*entity.Subcategory, error) {
	var subcategories []*entity.Subcategory
	for _, subcategory := range f.subcategories {
		subcategories = append(subcategories, subcategory)
	}
	return subcategories, nil
}

func (f *fakeSubcategoryRepo) CountByFilter(ctx context.Context, categoryID *uuid.UUID, isActive *bool) (int64, error) {
	return int64(len(f.subcategories)), nil
}

func (f *fakeSubcategoryRepo) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	f.subcategories[subcategory.ID] = subcategory
	return nil
}

func (f *fakeSubcategoryRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if subcategory, ok := f.subcategories[id]; ok {
		subcategory.IsActive = false
	}
	return nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[uuid.UUID]*entity.Item{}}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok || !item.IsActive {
		return nil, nil
	}
	return item, nil
}

func (f *fakeItemRepo) FindByIDIncludingInactive(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) FindBySubcategoryID(ctx context.Context, subcategoryID uuid.UUID) ([]*entity.Item, error) {
	var items []*entity.Item
	for _, item := range f.items {
		if item.SubcategoryID == subcategoryID && item.IsActive {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context, filter repository.ItemFilter, limit, offset int) ([]*entity.Item, error) {
	var items []*entity.Item
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeItemRepo) CountByFilter(ctx context.Context, filter repository.ItemFilter) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeItemRepo) CountBySubcategoryIDs(ctx context.Context, subcategoryIDs []uuid.UUID) (int64, error) {
	var count int64
	for _, item := range f.items {
		for _, id := range subcategoryIDs {
			if item.SubcategoryID == id && item.IsActive {
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if item, ok := f.items[id]; ok {
		item.IsActive = false
	}
	return nil
}

func (f *fakeItemRepo) SoftDeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) error {
	for _, item := range f.items {
		if item.SubcategoryID == subcategoryID {
			item.IsActive = false
		}
	}
	return nil
}

type fakeAddonRepo struct {
	addons map[uuid.UUID]*entity.Addon
}

func newFakeAddonRepo() *fakeAddonRepo {
	return &fakeAddonRepo{addons: map[uuid.UUID]*entity.Addon{}}
}

func (f *fakeAddonRepo) Create(ctx context.Context, addon *entity.Addon) error {
	f.addons[addon.ID] = addon
	return nil
}

func (f *fakeAddonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	addon, ok := f.addons[id]
	if !ok || !addon.IsActive {
		return nil, nil
	}
	return addon, nil
}

func (f *fakeAddonRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Addon, error) {
	var addons []*entity.Addon
	for _, id := range ids {
		if addon, ok := f.addons[id]; ok && addon.IsActive {
			addons = append(addons, addon)
		}
	}
	return addons, nil
}

func (f *fakeAddonRepo) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*entity.Addon, error) {
	var addons []*entity.Addon
	for _, addon := range f.addons {
		if addon.ItemID == itemID && addon.IsActive {
			addons = append(addons, addon)
		}
	}
	return addons, nil
}

func (f *fakeAddonRepo) Update(ctx context.Context, addon *entity.Addon) error {
	f.addons[addon.ID] = addon
	return nil
}

func (f *fakeAddonRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if addon, ok := f.addons[id]; ok {
		addon.IsActive = false
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) CreateTx(ctx context.Context, q repository.Queryer, booking *entity.Booking) error {
	return f.Create(ctx, booking)
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserEmail(ctx context.Context, userEmail string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserEmail == userEmail {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (f *fakeBookingRepo) CountByFilter(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if booking, ok := f.bookings[bookingID]; ok {
		booking.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) FindConflicting(ctx context.Context, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	var conflicts []*entity.Booking
	for _, booking := range f.bookings {
		if booking.ItemID != itemID || !booking.Date.Equal(date) {
			continue
		}
		if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
			continue
		}
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if pricing.OverlapsInclusive(booking.StartTime, booking.EndTime, startTime, endTime) {
			conflicts = append(conflicts, booking)
		}
	}
	return conflicts, nil
}

func (f *fakeBookingRepo) FindConflictingTx(ctx context.Context, q repository.Queryer, itemID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	return f.FindConflicting(ctx, itemID, date, startTime, endTime, excludeID)
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Category:    newFakeCategoryRepo(),
		Subcategory: newFakeSubcategoryRepo(),
		Item:        newFakeItemRepo(),
		Addon:       newFakeAddonRepo(),
		Booking:     newFakeBookingRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func seedBase(base *entity.Base) {
	now := time.Now()
	base.ID = uuid.New()
	base.CreatedAt = now
	base.UpdatedAt = now
}
