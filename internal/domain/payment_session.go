package domain

import "time"

type PaymentSessionStatus string

const (
	PaymentSessionPending   PaymentSessionStatus = "pending"
	PaymentSessionCompleted PaymentSessionStatus = "completed"
	PaymentSessionCanceled  PaymentSessionStatus = "canceled"
)

// Terminal reports whether the status can no longer change.
func (s PaymentSessionStatus) Terminal() bool {
	return s == PaymentSessionCompleted || s == PaymentSessionCanceled
}

// PaymentOutcome is the terminal result reported back by the external
// payment processor's redirect.
type PaymentOutcome string

const (
	OutcomeSuccess PaymentOutcome = "success"
	OutcomeCancel  PaymentOutcome = "cancel"
)

func (o PaymentOutcome) Valid() bool {
	return o == OutcomeSuccess || o == OutcomeCancel
}

// Status maps the processor outcome to the terminal session status.
func (o PaymentOutcome) Status() PaymentSessionStatus {
	if o == OutcomeSuccess {
		return PaymentSessionCompleted
	}
	return PaymentSessionCanceled
}

// PaymentSession tracks one external checkout flow for a booking. It makes
// exactly one pending -> terminal transition; re-delivery of the same
// outcome is a no-op. The partial unique index keeps at most one pending
// session per booking even under concurrent checkouts.
type PaymentSession struct {
	ID            string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingID     int64                `json:"booking_id" gorm:"not null;index;index:uniq_booking_pending,unique,where:status = 'pending'"`
	UserID        string               `json:"user_id" gorm:"type:varchar(64);not null"`
	Amount        int64                `json:"amount" gorm:"not null"` // minor currency units
	Currency      string               `json:"currency" gorm:"type:varchar(8);not null"`
	Status        PaymentSessionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CheckoutToken string               `json:"checkout_token" gorm:"type:varchar(36);uniqueIndex"`
	ExternalRef   string               `json:"external_ref,omitempty" gorm:"type:varchar(128)"`
	FinalizedAt   *time.Time           `json:"finalized_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (PaymentSession) TableName() string { return "payment_sessions" }
