package repository

import (
	"context"
	"errors"

	"staysync/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// ListByRoom returns every booking for the room, check-in date ascending.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// InsertBookingIfFree is the atomic commit primitive: the room row is locked
// for the duration of the transaction, the overlap count is re-checked inside
// it, and the insert happens only if the range is still free. Two racing
// commits for intersecting ranges therefore cannot both succeed; the loser
// gets ErrConflict.
func (r *BookingRepository) InsertBookingIfFree(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		q := tx
		// SQLite has no row locks and serializes writers at the database
		// level; the lock matters only on postgres.
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&room, b.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if room.BlockedUntil != nil && !b.StartDate.After(*room.BlockedUntil) {
			return domain.ErrBeforeCutoff
		}

		// Half-open overlap: [a,b) and [c,d) intersect iff a < d && c < b.
		var cnt int64
		err := tx.Model(&domain.Booking{}).
			Where("room_id = ? AND start_date < ? AND ? < end_date", b.RoomID, b.EndDate, b.StartDate).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return domain.ErrConflict
		}

		return tx.Create(b).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation, 23P01 exclusion_violation: the database
		// constraint is the last line of defense against a lost race.
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return domain.ErrConflict
		}
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrUnavailable
	default:
		return err
	}
}
