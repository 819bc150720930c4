package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/repository"
)

type rentalItemRepository struct {
	client *firestore.Client
}

func NewRentalItemRepository(client *firestore.Client) repository.RentalItemRepository {
	return &rentalItemRepository{client: client}
}

func (r *rentalItemRepository) Create(ctx context.Context, item *domain.RentalItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedOn = now
	item.UpdatedOn = now
	_, err := r.client.Collection(collRentalItems).Doc(item.ID).Set(ctx, item)
	return mapErr(err)
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id string) (*domain.RentalItem, error) {
	doc, err := r.client.Collection(collRentalItems).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	item := &domain.RentalItem{}
	if err := doc.DataTo(item); err != nil {
		return nil, err
	}
	item.ID = doc.Ref.ID
	return item, nil
}

func (r *rentalItemRepository) Update(ctx context.Context, item *domain.RentalItem) error {
	item.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(collRentalItems).Doc(item.ID).Set(ctx, item)
	return mapErr(err)
}

func (r *rentalItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collRentalItems).Doc(id).Delete(ctx)
	return mapErr(err)
}

func (r *rentalItemRepository) List(ctx context.Context, category string, page, pageSize int) ([]domain.RentalItem, error) {
	q := r.client.Collection(collRentalItems).Query
	if category != "" {
		q = q.Where("category", "==", category)
	}
	q = q.OrderBy("createdOn", firestore.Desc).
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	return r.collect(q.Documents(ctx))
}

func (r *rentalItemRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]domain.RentalItem, error) {
	q := r.client.Collection(collRentalItems).
		Where("ownerId", "==", ownerID).
		OrderBy("createdOn", firestore.Desc).
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	return r.collect(q.Documents(ctx))
}

func (r *rentalItemRepository) AddExcludedDates(ctx context.Context, id string, dates []time.Time) error {
	vals := make([]interface{}, len(dates))
	for i, d := range dates {
		vals[i] = d
	}
	_, err := r.client.Collection(collRentalItems).Doc(id).Update(ctx, []firestore.Update{
		{Path: "excludedDates", Value: firestore.ArrayUnion(vals...)},
		{Path: "updatedOn", Value: time.Now().UTC()},
	})
	return mapErr(err)
}

func (r *rentalItemRepository) SetStatus(ctx context.Context, id string, status domain.RentalItemStatus) error {
	_, err := r.client.Collection(collRentalItems).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedOn", Value: time.Now().UTC()},
	})
	return mapErr(err)
}

func (r *rentalItemRepository) CreateImage(ctx context.Context, image *domain.ListingImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	image.CreatedOn = time.Now().UTC()
	_, err := r.client.Collection(collListingImages).Doc(image.ID).Set(ctx, image)
	return mapErr(err)
}

func (r *rentalItemRepository) GetImageByID(ctx context.Context, imageID string) (*domain.ListingImage, error) {
	doc, err := r.client.Collection(collListingImages).Doc(imageID).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	img := &domain.ListingImage{}
	if err := doc.DataTo(img); err != nil {
		return nil, err
	}
	img.ID = doc.Ref.ID
	return img, nil
}

func (r *rentalItemRepository) UpdateImage(ctx context.Context, image *domain.ListingImage) error {
	_, err := r.client.Collection(collListingImages).Doc(image.ID).Set(ctx, image)
	return mapErr(err)
}

func (r *rentalItemRepository) GetImages(ctx context.Context, itemID string) ([]domain.ListingImage, error) {
	it := r.client.Collection(collListingImages).
		Where("itemId", "==", itemID).
		Where("status", "==", string(domain.ListingImageStatusConfirmed)).
		Documents(ctx)
	defer it.Stop()

	var images []domain.ListingImage
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var img domain.ListingImage
		if err := doc.DataTo(&img); err != nil {
			return nil, err
		}
		img.ID = doc.Ref.ID
		images = append(images, img)
	}
	return images, nil
}

func (r *rentalItemRepository) collect(it *firestore.DocumentIterator) ([]domain.RentalItem, error) {
	defer it.Stop()

	var items []domain.RentalItem
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapErr(err)
		}
		var item domain.RentalItem
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}
