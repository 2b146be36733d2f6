package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"staysync/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type PaymentSessionRepository struct {
	db *gorm.DB
}

func NewPaymentSessionRepository(db *gorm.DB) *PaymentSessionRepository {
	return &PaymentSessionRepository{db: db}
}

// Create inserts a pending session. The partial unique index on
// (booking_id) WHERE status = 'pending' makes "one open session per
// booking" hold under concurrent checkouts; the loser gets ErrConflict.
func (r *PaymentSessionRepository) Create(ctx context.Context, s *domain.PaymentSession) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return translate(err)
	}
	return nil
}

func (r *PaymentSessionRepository) GetByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	var s domain.PaymentSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// GetPendingByBooking returns the booking's open session, if any.
func (r *PaymentSessionRepository) GetPendingByBooking(ctx context.Context, bookingID int64) (*domain.PaymentSession, error) {
	var s domain.PaymentSession
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND status = ?", bookingID, domain.PaymentSessionPending).
		First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// Transition performs the single pending -> terminal state change as a
// conditional update keyed on "status is still pending". When the
// precondition fails for an existing row the current record is returned
// alongside ErrAlreadyFinalized so callers can decide whether the delivery
// was a duplicate or a contradictory one.
func (r *PaymentSessionRepository) Transition(ctx context.Context, id string, newStatus domain.PaymentSessionStatus, externalRef string) (*domain.PaymentSession, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&domain.PaymentSession{}).
		Where("id = ? AND status = ?", id, domain.PaymentSessionPending).
		Updates(map[string]interface{}{
			"status":       newStatus,
			"external_ref": externalRef,
			"finalized_at": now,
		})
	if res.Error != nil {
		return nil, translate(res.Error)
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return existing, domain.ErrAlreadyFinalized
	}
	return existing, nil
}

// FinalizeCancel makes the pending -> canceled transition and releases the
// booking in one transaction. The delete runs only when this call wins the
// pending precondition, so a cancel racing a success delivery can never
// remove a paid booking.
func (r *PaymentSessionRepository) FinalizeCancel(ctx context.Context, id string, externalRef string) (*domain.PaymentSession, error) {
	var out domain.PaymentSession
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.PaymentSession{}).
			Where("id = ? AND status = ?", id, domain.PaymentSessionPending).
			Updates(map[string]interface{}{
				"status":       domain.PaymentSessionCanceled,
				"external_ref": externalRef,
				"finalized_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyFinalized
		}
		// A missing booking is fine: a prior cancel already released it.
		return tx.Delete(&domain.Booking{}, out.BookingID).Error
	})
	if errors.Is(err, domain.ErrAlreadyFinalized) {
		return &out, domain.ErrAlreadyFinalized
	}
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// isUniqueViolation covers both backends: postgres reports code 23505, the
// pure-Go sqlite driver reports a UNIQUE constraint message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
