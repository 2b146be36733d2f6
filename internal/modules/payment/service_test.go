package payment

import (
	"context"
	"testing"
	"time"

	"staysync/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, s *domain.PaymentSession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepo) GetByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

func (m *MockSessionRepo) GetPendingByBooking(ctx context.Context, bookingID int64) (*domain.PaymentSession, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

func (m *MockSessionRepo) Transition(ctx context.Context, id string, newStatus domain.PaymentSessionStatus, externalRef string) (*domain.PaymentSession, error) {
	args := m.Called(ctx, id, newStatus, externalRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

func (m *MockSessionRepo) FinalizeCancel(ctx context.Context, id string, externalRef string) (*domain.PaymentSession, error) {
	args := m.Called(ctx, id, externalRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func newTestService(sessions *MockSessionRepo, bookings *MockBookingRepo) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(sessions, bookings, Config{
		CheckoutBaseURL: "https://checkout.example.com/session",
		CallbackURL:     "http://localhost:8080/api/v1/payments/callback",
		SuccessPage:     "http://localhost:8080/payment-success",
		CancelPage:      "http://localhost:8080/payment-canceled",
		DefaultCurrency: "inr",
	}, 5*time.Second, logger)
}

func TestService_InitCheckout_CreatesPendingSession(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, RoomID: 1, UserID: "u1", TotalPrice: 9000,
	}, nil)
	sessions.On("GetPendingByBooking", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(sessions, bookings)
	resp, err := svc.InitCheckout(context.Background(), "u1", 10, "")

	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Session.Amount)
	assert.Equal(t, "inr", resp.Session.Currency)
	assert.Equal(t, string(domain.PaymentSessionPending), resp.Session.Status)
	assert.Contains(t, resp.CheckoutURL, "https://checkout.example.com/session?")
	assert.Contains(t, resp.CheckoutURL, "amount=9000")
	sessions.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_InitCheckout_ReusesOpenSession(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: "u1", TotalPrice: 9000,
	}, nil)
	sessions.On("GetPendingByBooking", mock.Anything, int64(10)).Return(&domain.PaymentSession{
		ID: "s-open", BookingID: 10, UserID: "u1", Amount: 9000, Currency: "inr",
		Status: domain.PaymentSessionPending, CheckoutToken: "tok-1",
	}, nil)

	svc := newTestService(sessions, bookings)
	resp, err := svc.InitCheckout(context.Background(), "u1", 10, "")

	require.NoError(t, err)
	assert.Equal(t, "s-open", resp.Session.ID)
	sessions.AssertNotCalled(t, "Create")
}

func TestService_InitCheckout_CreateRaceReturnsWinner(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	winner := &domain.PaymentSession{
		ID: "s-winner", BookingID: 10, UserID: "u1", Amount: 9000, Currency: "inr",
		Status: domain.PaymentSessionPending,
	}

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: "u1", TotalPrice: 9000,
	}, nil)
	// A concurrent checkout creates its session between our existence check
	// and our insert; the unique index rejects ours and we return theirs.
	sessions.On("GetPendingByBooking", mock.Anything, int64(10)).Return(nil, domain.ErrNotFound).Once()
	sessions.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	sessions.On("GetPendingByBooking", mock.Anything, int64(10)).Return(winner, nil).Once()

	svc := newTestService(sessions, bookings)
	resp, err := svc.InitCheckout(context.Background(), "u1", 10, "")

	require.NoError(t, err)
	assert.Equal(t, "s-winner", resp.Session.ID)
}

func TestService_InitCheckout_ForeignBooking(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: "someone-else", TotalPrice: 9000,
	}, nil)

	svc := newTestService(sessions, bookings)
	_, err := svc.InitCheckout(context.Background(), "u1", 10, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	sessions.AssertNotCalled(t, "Create")
}

func TestService_InitCheckout_BookingNotFound(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	bookings.On("GetByID", mock.Anything, int64(77)).Return(nil, domain.ErrNotFound)

	svc := newTestService(sessions, bookings)
	_, err := svc.InitCheckout(context.Background(), "u1", 77, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Finalize_SuccessCompletesSession(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	pending := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionPending}
	completed := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCompleted, ExternalRef: "ref-1"}

	sessions.On("GetByID", mock.Anything, "s1").Return(pending, nil)
	sessions.On("Transition", mock.Anything, "s1", domain.PaymentSessionCompleted, "ref-1").Return(completed, nil)

	svc := newTestService(sessions, bookings)
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeSuccess, "ref-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSessionCompleted, out.Status)
	// Success keeps the booking as the confirmed reservation.
	sessions.AssertNotCalled(t, "FinalizeCancel")
}

func TestService_Finalize_CancelReleasesBooking(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	pending := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionPending}
	canceled := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCanceled, ExternalRef: "ref-2"}

	sessions.On("GetByID", mock.Anything, "s1").Return(pending, nil)
	sessions.On("FinalizeCancel", mock.Anything, "s1", "ref-2").Return(canceled, nil)

	svc := newTestService(sessions, bookings)
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref-2")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSessionCanceled, out.Status)
	sessions.AssertNumberOfCalls(t, "FinalizeCancel", 1)
	sessions.AssertNotCalled(t, "Transition")
}

func TestService_Finalize_DuplicateDeliveryIsNoOp(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	canceled := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCanceled, ExternalRef: "ref-2"}
	sessions.On("GetByID", mock.Anything, "s1").Return(canceled, nil)

	svc := newTestService(sessions, bookings)

	// Browser back-button replays the cancel redirect: same record back,
	// no second cancellation attempt.
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref-2")
	require.NoError(t, err)
	assert.Equal(t, canceled, out)

	out, err = svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref-2")
	require.NoError(t, err)
	assert.Equal(t, canceled, out)

	sessions.AssertNotCalled(t, "FinalizeCancel")
	sessions.AssertNotCalled(t, "Transition")
}

func TestService_Finalize_OppositeOutcomeFails(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	completed := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCompleted}
	sessions.On("GetByID", mock.Anything, "s1").Return(completed, nil)

	svc := newTestService(sessions, bookings)
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref-x")

	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	// The authoritative record comes back alongside the error.
	require.NotNil(t, out)
	assert.Equal(t, domain.PaymentSessionCompleted, out.Status)
	sessions.AssertNotCalled(t, "FinalizeCancel")
}

func TestService_Finalize_CancelLosesRaceToSuccess(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	pending := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionPending}
	completed := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCompleted, ExternalRef: "ref-success"}

	// The session is still pending when the cancel delivery reads it, but a
	// success delivery wins the conditional write first. The cancel's delete
	// lives inside FinalizeCancel's transaction behind the same precondition,
	// so losing the race leaves the paid booking untouched.
	sessions.On("GetByID", mock.Anything, "s1").Return(pending, nil)
	sessions.On("FinalizeCancel", mock.Anything, "s1", "ref-cancel").Return(completed, domain.ErrAlreadyFinalized)

	svc := newTestService(sessions, bookings)
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref-cancel")

	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	require.NotNil(t, out)
	assert.Equal(t, domain.PaymentSessionCompleted, out.Status)
	sessions.AssertNotCalled(t, "Transition")
}

func TestService_Finalize_SessionNotFound(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	sessions.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := newTestService(sessions, bookings)
	_, err := svc.Finalize(context.Background(), "missing", domain.OutcomeSuccess, "ref")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Finalize_InvalidOutcome(t *testing.T) {
	svc := newTestService(new(MockSessionRepo), new(MockBookingRepo))

	_, err := svc.Finalize(context.Background(), "s1", domain.PaymentOutcome("refund"), "ref")
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestService_Finalize_LostRaceSameOutcome(t *testing.T) {
	sessions := new(MockSessionRepo)
	bookings := new(MockBookingRepo)

	pending := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionPending}
	canceled := &domain.PaymentSession{ID: "s1", BookingID: 10, Status: domain.PaymentSessionCanceled}

	// A concurrent delivery of the same cancel finalized the session between
	// our read and our conditional write.
	sessions.On("GetByID", mock.Anything, "s1").Return(pending, nil)
	sessions.On("FinalizeCancel", mock.Anything, "s1", "ref").Return(canceled, domain.ErrAlreadyFinalized)

	svc := newTestService(sessions, bookings)
	out, err := svc.Finalize(context.Background(), "s1", domain.OutcomeCancel, "ref")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSessionCanceled, out.Status)
}
