package service

import (
	"context"
	"fmt"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/utils"
)

// Listing categories shown on the create-listing form.
var listingCategories = []string{
	"Tables & Chairs",
	"Tents & Canopies",
	"Linens",
	"Decor",
	"Audio & Lighting",
	"Catering Equipment",
	"Other",
}

type rentalService struct {
	itemRepo    repository.RentalItemRepository
	checkoutSvc CheckoutService
}

func NewRentalService(itemRepo repository.RentalItemRepository, checkoutSvc CheckoutService) RentalService {
	return &rentalService{
		itemRepo:    itemRepo,
		checkoutSvc: checkoutSvc,
	}
}

func (s *rentalService) CreateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error {
	if item.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if item.PricePerDayCents < 0 {
		return fmt.Errorf("%w: price per day must not be negative", ErrInvalidInput)
	}
	// The engine treats an inverted window as permanently unavailable; a
	// listing created that way could never be booked, so reject it here.
	start := utils.ToCalendarDate(item.Availability.Start)
	end := utils.ToCalendarDate(item.Availability.End)
	if end.Before(start) {
		return fmt.Errorf("%w: availability end precedes start", ErrInvalidDateRange)
	}

	item.OwnerID = ownerID
	item.Availability.Start = start
	item.Availability.End = end
	item.Status = domain.RentalItemStatusAvailable

	productID, priceID, err := s.checkoutSvc.CreateProduct(ctx, item.Title, item.Description, item.PricePerDayCents)
	if err != nil {
		return err
	}
	item.CheckoutProductID = productID
	item.CheckoutPriceID = priceID

	return s.itemRepo.Create(ctx, item)
}

func (s *rentalService) GetListing(ctx context.Context, id string) (*domain.RentalItem, []domain.ListingImage, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	images, err := s.itemRepo.GetImages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return item, images, nil
}

func (s *rentalService) UpdateListing(ctx context.Context, ownerID string, item *domain.RentalItem) error {
	existing, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}

	start := utils.ToCalendarDate(item.Availability.Start)
	end := utils.ToCalendarDate(item.Availability.End)
	if end.Before(start) {
		return fmt.Errorf("%w: availability end precedes start", ErrInvalidDateRange)
	}

	// Owner-editable fields only; booking-derived exclusions and the
	// checkout identity survive edits.
	existing.Title = item.Title
	existing.Description = item.Description
	existing.PricePerDayCents = item.PricePerDayCents
	existing.Category = item.Category
	existing.Location = item.Location
	existing.Availability = domain.DateWindow{Start: start, End: end}
	existing.Features = item.Features
	if item.Status != "" {
		existing.Status = item.Status
	}

	return s.itemRepo.Update(ctx, existing)
}

func (s *rentalService) DeleteListing(ctx context.Context, ownerID, id string) error {
	existing, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.itemRepo.Delete(ctx, id)
}

func (s *rentalService) ListListings(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error) {
	return s.itemRepo.List(ctx, category, page, pageSize)
}

func (s *rentalService) ListMyListings(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID, page, pageSize)
}

func (s *rentalService) ListCategories(ctx context.Context) []string {
	return listingCategories
}
