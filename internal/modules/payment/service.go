package payment

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"staysync/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidOutcome = errors.New("outcome must be success or cancel")

// Config points at the external checkout processor. The processor is a
// black box: we hand it an amount and return URLs, it redirects the
// customer back with an outcome.
type Config struct {
	CheckoutBaseURL string
	CallbackURL     string
	SuccessPage     string
	CancelPage      string
	DefaultCurrency string
}

type Service struct {
	sessions sessionRepo
	bookings bookingRepo
	cfg      Config
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewService(sessions sessionRepo, bookings bookingRepo, cfg Config, timeout time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		sessions: sessions,
		bookings: bookings,
		cfg:      cfg,
		timeout:  timeout,
		logger:   logger,
	}
}

// InitCheckout creates a pending payment session for the caller's booking
// and builds the processor redirect URL. Re-invoking for a booking that
// already has an open session returns that session instead of minting a
// second one.
func (s *Service) InitCheckout(ctx context.Context, userID string, bookingID int64, currency string) (*CheckoutResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapDeadline(err)
	}
	if b.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	if existing, err := s.sessions.GetPendingByBooking(ctx, bookingID); err == nil {
		return s.checkoutResponse(existing), nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, mapDeadline(err)
	}

	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	sess := &domain.PaymentSession{
		ID:            uuid.NewString(),
		BookingID:     b.ID,
		UserID:        userID,
		Amount:        b.TotalPrice,
		Currency:      currency,
		Status:        domain.PaymentSessionPending,
		CheckoutToken: uuid.NewString(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost a race with a concurrent checkout for the same booking:
			// hand back the session that won.
			existing, err := s.sessions.GetPendingByBooking(ctx, bookingID)
			if err != nil {
				return nil, mapDeadline(err)
			}
			return s.checkoutResponse(existing), nil
		}
		return nil, mapDeadline(err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"booking_id": b.ID,
		"amount":     sess.Amount,
		"currency":   sess.Currency,
	}).Info("payment session created")

	return s.checkoutResponse(sess), nil
}

func (s *Service) checkoutResponse(sess *domain.PaymentSession) *CheckoutResponse {
	return &CheckoutResponse{
		Session:     toSessionResponse(sess),
		CheckoutURL: s.buildCheckoutURL(sess),
	}
}

// buildCheckoutURL mirrors a hosted-checkout create call: amount in minor
// units, plus the callback URLs the processor redirects to. {EXTERNAL_REF}
// is the processor's placeholder for its own reference.
func (s *Service) buildCheckoutURL(sess *domain.PaymentSession) string {
	success := s.cfg.CallbackURL + "?" + url.Values{
		"session_id": {sess.ID},
		"outcome":    {string(domain.OutcomeSuccess)},
	}.Encode() + "&external_ref={EXTERNAL_REF}"
	cancel := s.cfg.CallbackURL + "?" + url.Values{
		"session_id": {sess.ID},
		"outcome":    {string(domain.OutcomeCancel)},
	}.Encode()

	q := url.Values{}
	q.Set("amount", strconv.FormatInt(sess.Amount, 10))
	q.Set("currency", sess.Currency)
	q.Set("token", sess.CheckoutToken)
	q.Set("success_url", success)
	q.Set("cancel_url", cancel)
	return s.cfg.CheckoutBaseURL + "?" + q.Encode()
}

// Finalize maps a processor callback onto the session state machine:
// pending --success--> completed, pending --cancel--> canceled. Both
// transitions are terminal. Re-delivery of the same outcome is a no-op
// success; the opposite outcome on a terminal session fails with
// ErrAlreadyFinalized alongside the authoritative record.
func (s *Service) Finalize(ctx context.Context, sessionID string, outcome domain.PaymentOutcome, externalRef string) (*domain.PaymentSession, error) {
	if !outcome.Valid() {
		return nil, ErrInvalidOutcome
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapDeadline(err)
	}

	if sess.Status.Terminal() {
		if sess.Status == outcome.Status() {
			// Duplicate delivery (back button, processor retry): return the
			// existing record without re-applying side effects.
			return sess, nil
		}
		return sess, domain.ErrAlreadyFinalized
	}

	// Cancel releases the room inside the same transaction as the status
	// change, so the booking is only ever deleted by the delivery that wins
	// the pending precondition.
	var updated *domain.PaymentSession
	if outcome == domain.OutcomeCancel {
		updated, err = s.sessions.FinalizeCancel(ctx, sessionID, externalRef)
	} else {
		updated, err = s.sessions.Transition(ctx, sessionID, domain.PaymentSessionCompleted, externalRef)
	}
	if errors.Is(err, domain.ErrAlreadyFinalized) {
		// Lost a race with a concurrent delivery. Same outcome converges to
		// a no-op; the opposite outcome surfaces with the winning record.
		if updated != nil && updated.Status == outcome.Status() {
			return updated, nil
		}
		return updated, domain.ErrAlreadyFinalized
	}
	if err != nil {
		return nil, mapDeadline(err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":   sessionID,
		"outcome":      outcome,
		"external_ref": externalRef,
	}).Info("payment session finalized")

	return updated, nil
}

func mapDeadline(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrUnavailable
	}
	return err
}
