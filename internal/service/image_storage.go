package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/storage"
)

const (
	uploadURLExpiry   = 15 * time.Minute
	downloadURLExpiry = time.Hour
	pendingImageTTL   = 24 * time.Hour
)

type imageStorageService struct {
	itemRepo repository.RentalItemRepository
	storage  storage.StorageInterface
}

func NewImageStorageService(itemRepo repository.RentalItemRepository, store storage.StorageInterface) ImageStorageService {
	return &imageStorageService{
		itemRepo: itemRepo,
		storage:  store,
	}
}

// GetUploadURL records a pending image and hands back a presigned URL the
// client PUTs the file to. The record is confirmed only after the upload
// is verified against the bucket.
func (s *imageStorageService) GetUploadURL(ctx context.Context, userID, itemID, filename, contentType string) (*domain.ListingImage, string, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", err
	}
	if item.OwnerID != userID {
		return nil, "", ErrForbidden
	}

	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return nil, "", fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, contentType)
	}

	key := fmt.Sprintf("rentals/%s/%s%s", itemID, uuid.New().String(), filepath.Ext(filename))
	expires := time.Now().Add(pendingImageTTL)
	image := &domain.ListingImage{
		ItemID:      itemID,
		UserID:      userID,
		FileName:    filename,
		StoragePath: key,
		ContentType: contentType,
		Status:      domain.ListingImageStatusPending,
		ExpiresAt:   &expires,
	}
	if err := s.itemRepo.CreateImage(ctx, image); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, "", err
	}
	return image, uploadURL, nil
}

func (s *imageStorageService) ConfirmImageUpload(ctx context.Context, userID, imageID string) (*domain.ListingImage, error) {
	image, err := s.itemRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.UserID != userID {
		return nil, ErrForbidden
	}

	exists, size, err := s.storage.FileExists(ctx, image.StoragePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no uploaded file found for image %s", ErrInvalidInput, imageID)
	}

	image.Status = domain.ListingImageStatusConfirmed
	image.FileSize = size
	image.ExpiresAt = nil
	if err := s.itemRepo.UpdateImage(ctx, image); err != nil {
		return nil, err
	}

	// Keep the item's denormalized image list in sync with the gallery.
	item, err := s.itemRepo.GetByID(ctx, image.ItemID)
	if err != nil {
		return nil, err
	}
	item.Images = append(item.Images, image.StoragePath)
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *imageStorageService) GetDownloadURL(ctx context.Context, imageID string) (string, error) {
	image, err := s.itemRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	if image.Status != domain.ListingImageStatusConfirmed {
		return "", repository.ErrNotFound
	}
	return s.storage.GeneratePresignedDownloadURL(ctx, image.StoragePath, downloadURLExpiry)
}

func (s *imageStorageService) DeleteImage(ctx context.Context, userID, imageID string) error {
	image, err := s.itemRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.UserID != userID {
		return ErrForbidden
	}

	if err := s.storage.DeleteFile(ctx, image.StoragePath); err != nil {
		return err
	}
	image.Status = domain.ListingImageStatusDeleted
	return s.itemRepo.UpdateImage(ctx, image)
}
