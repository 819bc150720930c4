package domain

import "time"

// Event is a calendar entry on the public events page.
type Event struct {
	ID           string    `json:"id" firestore:"-"`
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description"`
	Date         time.Time `json:"date" firestore:"date"`
	Time         string    `json:"time,omitempty" firestore:"time"`
	Location     string    `json:"location,omitempty" firestore:"location"`
	Organizer    string    `json:"organizer,omitempty" firestore:"organizer"`
	ContactEmail string    `json:"contact_email,omitempty" firestore:"contactEmail"`
	ContactPhone string    `json:"contact_phone,omitempty" firestore:"contactPhone"`
	MaxAttendees int       `json:"max_attendees,omitempty" firestore:"maxAttendees"`
	CreatedOn    time.Time `json:"created_on" firestore:"createdOn"`
	UpdatedOn    time.Time `json:"updated_on" firestore:"updatedOn"`
}

// ContactForm is a public contact-page submission. Not persisted, only
// relayed to the site notification address.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EventRequest is a catering/event inquiry from the public site.
type EventRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	GuestCount      int    `json:"guest_count"`
	Location        string `json:"location,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}
