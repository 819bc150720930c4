package domain

import "time"

type RentalItemStatus string

const (
	RentalItemStatusAvailable   RentalItemStatus = "AVAILABLE"
	RentalItemStatusUnavailable RentalItemStatus = "UNAVAILABLE"
	RentalItemStatusPending     RentalItemStatus = "PENDING"
)

// DateWindow is the inclusive calendar range during which an item is
// offered for rent. A window with End before Start is treated as empty.
type DateWindow struct {
	Start time.Time `json:"start" firestore:"start"`
	End   time.Time `json:"end" firestore:"end"`
}

type RentalItem struct {
	ID               string     `json:"id" firestore:"-"`
	OwnerID          string     `json:"owner_id" firestore:"ownerId"`
	Title            string     `json:"title" firestore:"title"`
	Description      string     `json:"description" firestore:"description"`
	PricePerDayCents int64      `json:"price_per_day_cents" firestore:"pricePerDayCents"`
	Images           []string   `json:"images" firestore:"images"`
	Category         string     `json:"category" firestore:"category"`
	Location         string     `json:"location" firestore:"location"`
	Availability     DateWindow `json:"availability" firestore:"availability"`
	// ExcludedDates are single calendar days carved out of the availability
	// window (already booked or under maintenance). Matched by UTC calendar
	// day, never by exact timestamp.
	ExcludedDates     []time.Time      `json:"excluded_dates,omitempty" firestore:"excludedDates"`
	Features          []string         `json:"features,omitempty" firestore:"features"`
	Status            RentalItemStatus `json:"status" firestore:"status"`
	CheckoutProductID string           `json:"checkout_product_id,omitempty" firestore:"checkoutProductId"`
	CheckoutPriceID   string           `json:"checkout_price_id,omitempty" firestore:"checkoutPriceId"`
	CreatedOn         time.Time        `json:"created_on" firestore:"createdOn"`
	UpdatedOn         time.Time        `json:"updated_on" firestore:"updatedOn"`
}

type ListingImageStatus string

const (
	ListingImageStatusPending   ListingImageStatus = "PENDING"
	ListingImageStatusConfirmed ListingImageStatus = "CONFIRMED"
	ListingImageStatusDeleted   ListingImageStatus = "DELETED"
)

type ListingImage struct {
	ID          string             `json:"id" firestore:"-"`
	ItemID      string             `json:"item_id" firestore:"itemId"`
	UserID      string             `json:"user_id" firestore:"userId"`
	FileName    string             `json:"file_name" firestore:"fileName"`
	StoragePath string             `json:"storage_path" firestore:"storagePath"`
	ContentType string             `json:"content_type" firestore:"contentType"`
	FileSize    int64              `json:"file_size" firestore:"fileSize"`
	Status      ListingImageStatus `json:"status" firestore:"status"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty" firestore:"expiresAt"`
	CreatedOn   time.Time          `json:"created_on" firestore:"createdOn"`
}
