package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/logger"
)

type emailService struct {
	host              string
	port              int
	username          string
	password          string
	from              string
	notificationEmail string
}

func NewEmailService(host string, port int, username, password, from, notificationEmail string) EmailService {
	return &emailService{
		host:              host,
		port:              port,
		username:          username,
		password:          password,
		from:              from,
		notificationEmail: notificationEmail,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	logger.ExternalServiceCall("smtp", "DialAndSend", "to", to, "subject", subject)
	err := d.DialAndSend(m)
	logger.ExternalServiceResult("smtp", "DialAndSend", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendEventNotification(ctx context.Context, event *domain.Event) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New event added to the calendar.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", event.Title)
	fmt.Fprintf(&b, "Date: %s\n", event.Date.Format("January 2, 2006"))
	if event.Time != "" {
		fmt.Fprintf(&b, "Time: %s\n", event.Time)
	}
	if event.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", event.Description)
	}
	if event.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", event.Location)
	}
	if event.Organizer != "" {
		fmt.Fprintf(&b, "Organizer: %s\n", event.Organizer)
	}
	if event.ContactEmail != "" {
		fmt.Fprintf(&b, "Contact Email: %s\n", event.ContactEmail)
	}
	if event.ContactPhone != "" {
		fmt.Fprintf(&b, "Contact Phone: %s\n", event.ContactPhone)
	}

	return s.send(s.notificationEmail, fmt.Sprintf("New Event: %s", event.Title), b.String())
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Your booking is confirmed!\n\n")
	fmt.Fprintf(&b, "Thank you for your booking with AnaCarLita Events & Rentals.\n\n")
	fmt.Fprintf(&b, "Booking ID: %s\n", booking.ID)
	fmt.Fprintf(&b, "Item: %s\n", itemTitle)
	fmt.Fprintf(&b, "Start Date: %s\n", booking.StartDate.Format("January 2, 2006"))
	fmt.Fprintf(&b, "End Date: %s\n", booking.EndDate.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Total Price: %s\n", formatCents(booking.TotalPriceCents))
	if booking.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", booking.Notes)
	}
	fmt.Fprintf(&b, "\nIf you have any questions, please don't hesitate to contact us.\n")

	return s.send(recipient, "Booking Confirmation", b.String())
}

func (s *emailService) SendBookingReminder(ctx context.Context, recipient string, booking *domain.Booking, itemTitle string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "A reminder that your rental starts tomorrow.\n\n")
	fmt.Fprintf(&b, "Item: %s\n", itemTitle)
	fmt.Fprintf(&b, "Start Date: %s\n", booking.StartDate.Format("January 2, 2006"))
	fmt.Fprintf(&b, "End Date: %s\n", booking.EndDate.Format("January 2, 2006"))
	fmt.Fprintf(&b, "\nSee you soon!\nAnaCarLita Events & Rentals\n")

	return s.send(recipient, fmt.Sprintf("Rental Reminder: %s", itemTitle), b.String())
}

func (s *emailService) SendContactFormNotification(ctx context.Context, form *domain.ContactForm) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", form.Name)
	fmt.Fprintf(&b, "Email: %s\n", form.Email)
	if form.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", form.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", form.Subject)
	fmt.Fprintf(&b, "%s\n", form.Message)

	return s.send(s.notificationEmail, fmt.Sprintf("Contact Form: %s", form.Subject), b.String())
}

func (s *emailService) SendEventRequestNotification(ctx context.Context, req *domain.EventRequest) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New event request.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	fmt.Fprintf(&b, "Event Type: %s\n", req.EventType)
	fmt.Fprintf(&b, "Event Date: %s\n", req.EventDate)
	fmt.Fprintf(&b, "Event Time: %s\n", req.EventTime)
	fmt.Fprintf(&b, "Guest Count: %d\n", req.GuestCount)
	if req.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", req.Location)
	}
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", req.AdditionalNotes)
	}

	return s.send(s.notificationEmail, fmt.Sprintf("Event Request: %s", req.EventType), b.String())
}

func (s *emailService) SendEventDigest(ctx context.Context, events []domain.Event) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Events in the next 7 days:\n\n")
	for _, e := range events {
		fmt.Fprintf(&b, "- %s on %s", e.Title, e.Date.Format("January 2, 2006"))
		if e.Time != "" {
			fmt.Fprintf(&b, " at %s", e.Time)
		}
		if e.Location != "" {
			fmt.Fprintf(&b, " (%s)", e.Location)
		}
		fmt.Fprintf(&b, "\n")
	}

	return s.send(s.notificationEmail, "Upcoming Events Digest", b.String())
}

// formatCents renders integer cents as a dollar amount for email bodies.
// The engine never rounds; this is display formatting only.
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
