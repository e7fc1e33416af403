package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tixbox/pkg/config"
	apperrors "tixbox/pkg/errors"
	"tixbox/pkg/model"
	"tixbox/pkg/sanitizer"
)

// Store owns every event, seat and booking and enforces all lifecycle
// transitions atomically with respect to concurrent callers. Nothing
// outside the store ever holds a mutable reference to its state; every
// returned entity is a snapshot.
type Store interface {
	CreateEvent(ctx context.Context, title string, external bool) (*model.Event, error)
	ListEvents(ctx context.Context, titleFilter string, limit, offset int) ([]*model.Event, int64, error)
	ListSeats(ctx context.Context, eventID int64, page, pageSize int) ([]*model.Seat, int64, error)
	CreateBooking(ctx context.Context, eventID int64) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	SelectSeat(ctx context.Context, bookingID string, seatID int64) error
	ReleaseSeat(ctx context.Context, seatID int64) error
	InitiatePayment(ctx context.Context, bookingID string) (*model.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	ConfirmPayment(ctx context.Context, bookingID string) error
	FailPayment(ctx context.Context, bookingID string) error
	Close()
}

type seatRecord struct {
	seat   model.Seat
	heldBy string // booking id while RESERVED or SOLD, empty while FREE
}

type bookingRecord struct {
	id      string
	eventID int64
	status  model.BookingStatus
	seats   map[int64]struct{}
}

type bookingStore struct {
	cfg *config.Config

	mu         sync.Mutex
	events     map[int64]model.Event
	eventIDs   []int64
	seats      map[int64]*seatRecord
	eventSeats map[int64][]int64 // seat ids in row-major creation order
	bookings   map[string]*bookingRecord
	bookingIDs []string
	timers     map[int64]*time.Timer // live reservation timer per RESERVED seat

	nextEventID int64
	nextSeatID  int64
}

func New(cfg *config.Config) Store {
	return &bookingStore{
		cfg:        cfg,
		events:     make(map[int64]model.Event),
		seats:      make(map[int64]*seatRecord),
		eventSeats: make(map[int64][]int64),
		bookings:   make(map[string]*bookingRecord),
		timers:     make(map[int64]*time.Timer),
	}
}

func (s *bookingStore) CreateEvent(ctx context.Context, title string, external bool) (*model.Event, error) {
	title = sanitizer.NormalizeTitle(title)
	if title == "" {
		return nil, apperrors.InvalidInput("event title cannot be empty")
	}

	rows, seatsPerRow := s.cfg.EventRows, s.cfg.EventSeatsPerRow
	if s.isLargeEvent(title) {
		rows, seatsPerRow = s.cfg.LargeEventRows, s.cfg.LargeEventSeatsPerRow
	}

	s.mu.Lock()
	s.nextEventID++
	event := model.Event{
		ID:       s.nextEventID,
		Title:    title,
		External: external,
		Seats:    rows * seatsPerRow,
	}
	s.events[event.ID] = event
	s.eventIDs = append(s.eventIDs, event.ID)

	seatIDs := make([]int64, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for number := 1; number <= seatsPerRow; number++ {
			s.nextSeatID++
			s.seats[s.nextSeatID] = &seatRecord{
				seat: model.Seat{
					ID:      s.nextSeatID,
					EventID: event.ID,
					Row:     row,
					Number:  number,
					Status:  model.SeatFree,
					Price:   s.cfg.SeatPrice,
				},
			}
			seatIDs = append(seatIDs, s.nextSeatID)
		}
	}
	s.eventSeats[event.ID] = seatIDs
	s.mu.Unlock()

	s.cfg.Log.Info("Event created",
		"event_id", event.ID,
		"title", title,
		"external", external,
		"seats", len(seatIDs),
	)
	return &event, nil
}

func (s *bookingStore) isLargeEvent(title string) bool {
	return strings.HasPrefix(strings.ToLower(title), strings.ToLower(s.cfg.LargeEventPrefix))
}

func (s *bookingStore) ListEvents(ctx context.Context, titleFilter string, limit, offset int) ([]*model.Event, int64, error) {
	filter := strings.ToLower(strings.TrimSpace(titleFilter))

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*model.Event, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		event := s.events[id]
		if filter != "" && !strings.Contains(strings.ToLower(event.Title), filter) {
			continue
		}
		matched = append(matched, &event)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*model.Event{}, total, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], total, nil
}

func (s *bookingStore) ListSeats(ctx context.Context, eventID int64, page, pageSize int) ([]*model.Seat, int64, error) {
	if page < 1 {
		return nil, 0, apperrors.InvalidInput("page must be >= 1")
	}
	if pageSize < 1 || pageSize > config.MaxSeatPageSize {
		return nil, 0, apperrors.InvalidInput("page_size must be between 1 and 20")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seatIDs, ok := s.eventSeats[eventID]
	if !ok {
		return nil, 0, apperrors.NotFound("Event")
	}

	total := int64(len(seatIDs))
	offset := (page - 1) * pageSize
	if offset >= len(seatIDs) {
		// Past the end is an empty page, not an error.
		return []*model.Seat{}, total, nil
	}

	end := min(offset+pageSize, len(seatIDs))
	seats := make([]*model.Seat, 0, end-offset)
	for _, id := range seatIDs[offset:end] {
		seat := s.seats[id].seat
		seats = append(seats, &seat)
	}
	return seats, total, nil
}

func (s *bookingStore) CreateBooking(ctx context.Context, eventID int64) (*model.Booking, error) {
	s.mu.Lock()
	if _, ok := s.events[eventID]; !ok {
		s.mu.Unlock()
		return nil, apperrors.NotFound("Event")
	}

	booking := &bookingRecord{
		id:      uuid.NewString(),
		eventID: eventID,
		status:  model.BookingBooked,
		seats:   make(map[int64]struct{}),
	}
	s.bookings[booking.id] = booking
	s.bookingIDs = append(s.bookingIDs, booking.id)
	snapshot := booking.snapshot()
	s.mu.Unlock()

	s.cfg.Log.Info("Booking created", "booking_id", booking.id, "event_id", eventID)
	return snapshot, nil
}

func (s *bookingStore) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*model.Booking, 0, len(s.bookingIDs))
	for _, id := range s.bookingIDs {
		bookings = append(bookings, s.bookings[id].snapshot())
	}
	return bookings, nil
}

// SelectSeat transitions a FREE seat to RESERVED for the given booking.
// The check-and-set runs under the store lock, so of any number of
// concurrent callers targeting the same seat exactly one succeeds; the
// rest observe a conflict.
func (s *bookingStore) SelectSeat(ctx context.Context, bookingID string, seatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return apperrors.NotFoundWithID("Booking", bookingID)
	}
	record, ok := s.seats[seatID]
	if !ok {
		return apperrors.NotFound("Seat")
	}
	if booking.status != model.BookingBooked {
		return apperrors.Conflict("booking is not open for seat selection")
	}
	if record.seat.EventID != booking.eventID {
		return apperrors.Conflict("seat belongs to a different event")
	}
	if record.seat.Status != model.SeatFree {
		return apperrors.Conflict("seat is not available")
	}

	record.seat.Status = model.SeatReserved
	record.heldBy = bookingID
	booking.seats[seatID] = struct{}{}

	// The timer variable is published before the lock is released, and the
	// fired callback takes the lock first, so the identity check below is
	// safe even for very short TTLs.
	var t *time.Timer
	t = time.AfterFunc(s.cfg.ReservationTTL, func() { s.expireReservation(seatID, t) })
	s.timers[seatID] = t

	s.cfg.Log.Info("Seat selected",
		"booking_id", bookingID,
		"seat_id", seatID,
		"ttl", s.cfg.ReservationTTL,
	)
	return nil
}

// expireReservation is the reservation-timeout callback. A fired timer that
// lost the race against an explicit release, payment initiation or
// cancellation finds itself no longer registered and does nothing.
func (s *bookingStore) expireReservation(seatID int64, t *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.timers[seatID]; !ok || current != t {
		return
	}
	delete(s.timers, seatID)

	record, ok := s.seats[seatID]
	if !ok || record.seat.Status != model.SeatReserved {
		return
	}

	bookingID := record.heldBy
	if booking, ok := s.bookings[bookingID]; ok {
		delete(booking.seats, seatID)
	}
	record.seat.Status = model.SeatFree
	record.heldBy = ""

	s.cfg.Log.Info("Reservation expired", "seat_id", seatID, "booking_id", bookingID)
}

func (s *bookingStore) ReleaseSeat(ctx context.Context, seatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.seats[seatID]
	if !ok {
		return apperrors.NotFound("Seat")
	}
	if record.seat.Status != model.SeatReserved {
		return apperrors.Conflict("seat is not reserved")
	}

	bookingID := record.heldBy
	if booking, ok := s.bookings[bookingID]; ok {
		delete(booking.seats, seatID)
	}
	record.seat.Status = model.SeatFree
	record.heldBy = ""
	s.cancelTimerLocked(seatID)

	s.cfg.Log.Info("Seat released", "seat_id", seatID, "booking_id", bookingID)
	return nil
}

// InitiatePayment moves a booking to payment_initiated and cancels the
// reservation timers of its held seats; the pending payment is the hold
// from this point on. The returned snapshot feeds the payment request.
func (s *bookingStore) InitiatePayment(ctx context.Context, bookingID string) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, apperrors.NotFoundWithID("Booking", bookingID)
	}
	if booking.status != model.BookingBooked {
		return nil, apperrors.Conflict("payment can only be initiated for a booked booking")
	}

	booking.status = model.BookingPaymentInitiated
	for seatID := range booking.seats {
		s.cancelTimerLocked(seatID)
	}

	s.cfg.Log.Info("Payment initiated", "booking_id", bookingID, "seats", len(booking.seats))
	return booking.snapshot(), nil
}

// CancelBooking releases every held seat. A booking already in a terminal
// state acknowledges the cancel without any state change.
func (s *bookingStore) CancelBooking(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return apperrors.NotFoundWithID("Booking", bookingID)
	}
	if booking.status == model.BookingConfirmed || booking.status == model.BookingCancelled {
		s.cfg.Log.Info("Cancel is a no-op", "booking_id", bookingID, "status", booking.status)
		return nil
	}

	s.cancelLocked(booking)
	s.cfg.Log.Info("Booking cancelled", "booking_id", bookingID)
	return nil
}

// ConfirmPayment is the payment-success callback. It is idempotent: an
// unknown booking or one not awaiting payment is acknowledged without any
// state change, since the payment processor cannot meaningfully retry.
func (s *bookingStore) ConfirmPayment(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok || booking.status != model.BookingPaymentInitiated {
		s.cfg.Log.Debug("Payment confirmation ignored", "booking_id", bookingID)
		return nil
	}

	booking.status = model.BookingConfirmed
	for seatID := range booking.seats {
		record := s.seats[seatID]
		record.seat.Status = model.SeatSold
	}

	s.cfg.Log.Info("Payment confirmed", "booking_id", bookingID, "seats", len(booking.seats))
	return nil
}

// FailPayment is the payment-failure callback, idempotent like
// ConfirmPayment. On a confirmed or already-cancelled booking it does
// nothing; otherwise the booking cancels and its seats go back to FREE.
func (s *bookingStore) FailPayment(ctx context.Context, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok || booking.status == model.BookingConfirmed || booking.status == model.BookingCancelled {
		s.cfg.Log.Debug("Payment failure ignored", "booking_id", bookingID)
		return nil
	}

	s.cancelLocked(booking)
	s.cfg.Log.Info("Payment failed, booking cancelled", "booking_id", bookingID)
	return nil
}

// cancelLocked moves a booking to cancelled and frees all held seats.
// Callers hold s.mu.
func (s *bookingStore) cancelLocked(booking *bookingRecord) {
	booking.status = model.BookingCancelled
	for seatID := range booking.seats {
		record := s.seats[seatID]
		record.seat.Status = model.SeatFree
		record.heldBy = ""
		s.cancelTimerLocked(seatID)
		delete(booking.seats, seatID)
	}
}

// cancelTimerLocked stops and deregisters the reservation timer for a seat,
// if one is live. Callers hold s.mu.
func (s *bookingStore) cancelTimerLocked(seatID int64) {
	if t, ok := s.timers[seatID]; ok {
		t.Stop()
		delete(s.timers, seatID)
	}
}

// Close stops all live reservation timers. Used by graceful shutdown and
// tests; the store is not usable for seat selection afterwards.
func (s *bookingStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for seatID, t := range s.timers {
		t.Stop()
		delete(s.timers, seatID)
	}
}

func (b *bookingRecord) snapshot() *model.Booking {
	seats := make([]int64, 0, len(b.seats))
	for seatID := range b.seats {
		seats = append(seats, seatID)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i] < seats[j] })

	return &model.Booking{
		ID:      b.id,
		EventID: b.eventID,
		Status:  b.status,
		Seats:   seats,
	}
}
