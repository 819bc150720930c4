package service

import (
	"context"
	"fmt"
	"time"

	"anacarlita-backend/internal/domain"
	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
	emailSvc  EmailService
}

func NewEventService(eventRepo repository.EventRepository, emailSvc EmailService) EventService {
	return &eventService{
		eventRepo: eventRepo,
		emailSvc:  emailSvc,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}

	// The site owner is notified about every new calendar entry.
	if err := s.emailSvc.SendEventNotification(ctx, event); err != nil {
		logger.Error("Failed to send event notification", "event_id", event.ID, "error", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	event.CreatedOn = existing.CreatedOn
	return s.eventRepo.Update(ctx, event)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, page, pageSize int) ([]domain.Event, error) {
	return s.eventRepo.List(ctx, page, pageSize)
}

func (s *eventService) ListEventsForMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.eventRepo.ListBetween(ctx, from, to)
}
