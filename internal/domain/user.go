package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User mirrors the identity-provider account. ID is the provider UID;
// the profile fields are refreshed on every session exchange.
type User struct {
	ID          string    `json:"id" firestore:"-"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	PhotoURL    string    `json:"photo_url,omitempty" firestore:"photoURL"`
	Role        UserRole  `json:"role" firestore:"role"`
	PhoneNumber string    `json:"phone_number,omitempty" firestore:"phoneNumber"`
	CreatedOn   time.Time `json:"created_on" firestore:"createdOn"`
	UpdatedOn   time.Time `json:"updated_on" firestore:"updatedOn"`
}
