package booking

import (
	"context"
	"errors"
	"time"

	"staysync/internal/domain"
	"staysync/internal/modules/availability"

	"github.com/sirupsen/logrus"
)

// commitAttempts bounds the validate-then-write retry loop. A conditional
// write can only lose to another writer for the same room, so a couple of
// retries either find the range still free or prove a genuine conflict.
const commitAttempts = 3

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewService(bookings BookingRepository, rooms RoomRepository, timeout time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		timeout:  timeout,
		logger:   logger,
	}
}

// Commit validates and persists a new booking with at-most-one-winner
// semantics. Each attempt re-reads the room's bookings (never trusting a
// caller-supplied snapshot), re-validates, and tries the repository's
// conditional insert. Conflicts and transient failures are retried up to
// commitAttempts before surfacing.
func (s *Service) Commit(ctx context.Context, roomID int64, userID string, start, end time.Time) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	var lastErr error
	for attempt := 1; attempt <= commitAttempts; attempt++ {
		b, err := s.tryCommit(ctx, roomID, userID, start, end)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrUnavailable) {
			return nil, err
		}
		lastErr = err
		s.logger.WithFields(logrus.Fields{
			"room_id": roomID,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("booking commit attempt failed, retrying")
	}
	return nil, lastErr
}

func (s *Service) tryCommit(ctx context.Context, roomID int64, userID string, start, end time.Time) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, mapDeadline(err)
	}

	existing, err := s.bookings.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, mapDeadline(err)
	}

	if err := availability.ValidateRequest(room, existing, start, end); err != nil {
		return nil, err
	}

	nights := domain.Nights(start, end)
	b := &domain.Booking{
		RoomID:     roomID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		Nights:     nights,
		TotalPrice: int64(nights) * room.PricePerNight,
	}
	if err := s.bookings.InsertBookingIfFree(ctx, b); err != nil {
		return nil, mapDeadline(err)
	}
	return b, nil
}

// GetMyBookings lists the caller's bookings, check-in ascending.
func (s *Service) GetMyBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	out, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapDeadline(err)
	}
	return out, nil
}

func mapDeadline(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrUnavailable
	}
	return err
}
