package domain

import "time"

type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypeEvent   NotificationType = "event"
	NotificationTypeSystem  NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id" firestore:"-"`
	UserID    string           `json:"user_id" firestore:"userId"`
	Title     string           `json:"title" firestore:"title"`
	Message   string           `json:"message" firestore:"message"`
	Read      bool             `json:"read" firestore:"read"`
	Type      NotificationType `json:"type" firestore:"type"`
	RelatedID string           `json:"related_id,omitempty" firestore:"relatedId"`
	CreatedOn time.Time        `json:"created_on" firestore:"createdOn"`
}
