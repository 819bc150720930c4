package service

import (
	"context"
	"fmt"
	"strings"

	"anacarlita-backend/internal/domain"
)

type contactService struct {
	emailSvc EmailService
}

func NewContactService(emailSvc EmailService) ContactService {
	return &contactService{emailSvc: emailSvc}
}

func (s *contactService) SubmitContactForm(ctx context.Context, form *domain.ContactForm) error {
	if form.Name == "" || form.Subject == "" || form.Message == "" {
		return fmt.Errorf("%w: name, subject and message are required", ErrInvalidInput)
	}
	if !looksLikeEmail(form.Email) {
		return fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
	}
	return s.emailSvc.SendContactFormNotification(ctx, form)
}

func (s *contactService) SubmitEventRequest(ctx context.Context, req *domain.EventRequest) error {
	if req.Name == "" || req.EventType == "" || req.EventDate == "" {
		return fmt.Errorf("%w: name, event type and event date are required", ErrInvalidInput)
	}
	if !looksLikeEmail(req.Email) {
		return fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
	}
	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guest count must be positive", ErrInvalidInput)
	}
	return s.emailSvc.SendEventRequestNotification(ctx, req)
}

// looksLikeEmail is the same shallow shape check the site's forms apply;
// real validation happens when the relay tries to deliver.
func looksLikeEmail(addr string) bool {
	at := strings.Index(addr, "@")
	return at > 0 && strings.Contains(addr[at+1:], ".")
}
