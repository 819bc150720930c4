package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/service"
)

func TestRentalService_CreateListing(t *testing.T) {
	ctx := context.Background()

	newListing := func() *domain.RentalItem {
		return &domain.RentalItem{
			Title:            "Round Table",
			Description:      "Seats eight",
			PricePerDayCents: 2500,
			Category:         "Tables & Chairs",
			Availability: domain.DateWindow{
				Start: time.Date(2026, time.June, 1, 10, 30, 0, 0, time.UTC),
				End:   time.Date(2026, time.June, 30, 8, 0, 0, 0, time.UTC),
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		checkoutSvc := new(MockCheckoutService)
		svc := service.NewRentalService(itemRepo, checkoutSvc)

		checkoutSvc.On("CreateProduct", ctx, "Round Table", "Seats eight", int64(2500)).
			Return("prod_1", "price_1", nil)
		itemRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalItem")).Return(nil)

		item := newListing()
		err := svc.CreateListing(ctx, "owner-1", item)
		assert.NoError(t, err)
		assert.Equal(t, "owner-1", item.OwnerID)
		assert.Equal(t, domain.RentalItemStatusAvailable, item.Status)
		assert.Equal(t, "prod_1", item.CheckoutProductID)
		// Window bounds are normalized to midnight UTC.
		assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), item.Availability.Start)
	})

	t.Run("Missing title", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		svc := service.NewRentalService(itemRepo, new(MockCheckoutService))

		item := newListing()
		item.Title = ""
		err := svc.CreateListing(ctx, "owner-1", item)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Inverted availability window rejected", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		svc := service.NewRentalService(itemRepo, new(MockCheckoutService))

		item := newListing()
		item.Availability.Start, item.Availability.End = item.Availability.End, item.Availability.Start
		err := svc.CreateListing(ctx, "owner-1", item)
		assert.ErrorIs(t, err, service.ErrInvalidDateRange)
	})

	t.Run("Checkout product failure aborts creation", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		checkoutSvc := new(MockCheckoutService)
		svc := service.NewRentalService(itemRepo, checkoutSvc)

		checkoutSvc.On("CreateProduct", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return("", "", errors.New("provider down"))

		err := svc.CreateListing(ctx, "owner-1", newListing())
		assert.Error(t, err)
		itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRentalService_UpdateListing(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.RentalItem {
		return &domain.RentalItem{
			ID:                "item-1",
			OwnerID:           "owner-1",
			Title:             "Round Table",
			PricePerDayCents:  2500,
			Status:            domain.RentalItemStatusAvailable,
			CheckoutProductID: "prod_1",
			ExcludedDates:     []time.Time{time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)},
			Availability: domain.DateWindow{
				Start: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			},
		}
	}

	t.Run("Owner edits keep exclusions and checkout identity", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		svc := service.NewRentalService(itemRepo, new(MockCheckoutService))

		itemRepo.On("GetByID", ctx, "item-1").Return(existing(), nil)
		itemRepo.On("Update", ctx, mock.MatchedBy(func(it *domain.RentalItem) bool {
			return it.Title == "Oval Table" &&
				it.CheckoutProductID == "prod_1" &&
				len(it.ExcludedDates) == 1
		})).Return(nil)

		update := existing()
		update.Title = "Oval Table"
		update.ExcludedDates = nil // client cannot clear exclusions
		err := svc.UpdateListing(ctx, "owner-1", update)
		assert.NoError(t, err)
	})

	t.Run("Non-owner forbidden", func(t *testing.T) {
		itemRepo := new(MockRentalItemRepo)
		svc := service.NewRentalService(itemRepo, new(MockCheckoutService))

		itemRepo.On("GetByID", ctx, "item-1").Return(existing(), nil)

		err := svc.UpdateListing(ctx, "intruder", existing())
		assert.ErrorIs(t, err, service.ErrForbidden)
		itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRentalService_DeleteListing(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(MockRentalItemRepo)
	svc := service.NewRentalService(itemRepo, new(MockCheckoutService))

	item := &domain.RentalItem{ID: "item-1", OwnerID: "owner-1"}
	itemRepo.On("GetByID", ctx, "item-1").Return(item, nil)
	itemRepo.On("Delete", ctx, "item-1").Return(nil)

	assert.NoError(t, svc.DeleteListing(ctx, "owner-1", "item-1"))

	err := svc.DeleteListing(ctx, "intruder", "item-1")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestRentalService_ListCategories(t *testing.T) {
	svc := service.NewRentalService(new(MockRentalItemRepo), new(MockCheckoutService))
	categories := svc.ListCategories(context.Background())
	assert.NotEmpty(t, categories)
	assert.Contains(t, categories, "Tables & Chairs")
}
