package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"staysync/internal/domain"
)

// DateRange is a half-open [Start, End) blocked interval.
type DateRange struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// rangeFloor anchors the virtual blocked range implied by a room's cutoff.
// Nothing in the calendar predates it.
var rangeFloor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
	timeout  time.Duration
}

func NewService(rooms RoomRepository, bookings BookingRepository, timeout time.Duration) *Service {
	return &Service{rooms: rooms, bookings: bookings, timeout: timeout}
}

// ComputeBlockedRanges returns the room's blocked intervals in ascending
// date order: the blocked_until cutoff as a virtual range from the calendar
// floor through the cutoff date, plus every existing booking. Overlapping
// ranges are merged and duplicates dropped; ranges that merely touch stay
// separate, since touching is not overlapping. Read-only and deterministic
// for a fixed repository snapshot.
func (s *Service) ComputeBlockedRanges(ctx context.Context, roomID int64) ([]DateRange, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, mapDeadline(err)
	}

	bookings, err := s.bookings.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, mapDeadline(err)
	}

	ranges := make([]DateRange, 0, len(bookings)+1)
	if room.BlockedUntil != nil {
		// Inclusive cutoff as a half-open range: [floor, cutoff+1day).
		ranges = append(ranges, DateRange{Start: rangeFloor, End: room.BlockedUntil.AddDate(0, 0, 1)})
	}
	for _, b := range bookings {
		ranges = append(ranges, DateRange{Start: b.StartDate, End: b.EndDate})
	}

	sort.Slice(ranges, func(i, j int) bool {
		if !ranges[i].Start.Equal(ranges[j].Start) {
			return ranges[i].Start.Before(ranges[j].Start)
		}
		return ranges[i].End.Before(ranges[j].End)
	})

	out := make([]DateRange, 0, len(ranges))
	for _, r := range ranges {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if Overlaps(last.Start, last.End, r.Start, r.End) {
				if r.End.After(last.End) {
					last.End = r.End
				}
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// ValidateRequest checks a candidate stay against a room snapshot. It alone
// cannot guarantee correctness under concurrency; the commit path re-checks
// inside the repository's conditional write.
func ValidateRequest(room *domain.Room, bookings []domain.Booking, start, end time.Time) error {
	if !start.Before(end) {
		return domain.ErrInvalidRange
	}
	if room.BlockedUntil != nil && BeforeCutoff(start, *room.BlockedUntil) {
		return domain.ErrBeforeCutoff
	}
	for _, b := range bookings {
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return domain.ErrOverlap
		}
	}
	return nil
}

func mapDeadline(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrUnavailable
	}
	return err
}
