package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/planventura/eventos-api/internal/bus"
	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/service"
)

type reservationFixture struct {
	svc      service.ReservationService
	events   *mockEventRepo
	users    *mockUserRepo
	mail     *mockMailer
	pub      *mockPublisher
	intents  *mockIntents
	userID   int64
	freeID   int64
	pricedID int64
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	ctx := context.Background()

	events := newMockEventRepo()
	users := newMockUserRepo()
	reservations := newMockReservationRepo(events)
	mail := &mockMailer{}
	pub := &mockPublisher{}
	intents := &mockIntents{}

	user, err := users.Create(ctx, &domain.CreateUserRequest{
		UserName: "ana", Email: "ana@example.com", Password: "x",
	}, "hash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	free, err := events.Create(ctx, 1, &domain.CreateEventRequest{
		EventName: "Feria del libro", Description: "Feria anual del libro usado",
		EventDate: "2026-10-01", StartTime: "10:00", EndTime: "20:00",
		Price: 0, Availability: 500, LocationID: 1,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	priced, err := events.Create(ctx, 1, &domain.CreateEventRequest{
		EventName: "Concierto de jazz", Description: "Una noche de jazz en la plaza",
		EventDate: "2026-09-15", StartTime: "20:00", EndTime: "23:30",
		Price: 12.5, Availability: 200, LocationID: 1,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}

	return &reservationFixture{
		svc:      service.NewReservationService(reservations, events, users, intents, mail, pub),
		events:   events,
		users:    users,
		mail:     mail,
		pub:      pub,
		intents:  intents,
		userID:   user.ID,
		freeID:   free.ID,
		pricedID: priced.ID,
	}
}

func TestReserveFreeEvent(t *testing.T) {
	f := newReservationFixture(t)

	result, err := f.svc.Reserve(context.Background(), f.userID, f.freeID)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if result.Reservation.EventID != f.freeID || result.Reservation.UserID != f.userID {
		t.Errorf("reservation = %+v", result.Reservation)
	}
	if result.Intent != nil {
		t.Error("free event must not get a payment intent")
	}
	if f.intents.calls != 0 {
		t.Errorf("intent calls = %d, want 0", f.intents.calls)
	}
	if !f.pub.published(bus.ReservationCreated) {
		t.Error("reservation.created not published")
	}
	if len(f.mail.confirmations) != 1 {
		t.Errorf("confirmations = %v", f.mail.confirmations)
	}
}

func TestReservePricedEventCreatesIntent(t *testing.T) {
	f := newReservationFixture(t)

	result, err := f.svc.Reserve(context.Background(), f.userID, f.pricedID)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if result.Intent == nil {
		t.Fatal("priced event must get a payment intent")
	}
	if f.intents.lastAmt != 1250 {
		t.Errorf("amount = %d cents, want 1250", f.intents.lastAmt)
	}
}

func TestReserveUnknownEvent(t *testing.T) {
	f := newReservationFixture(t)

	_, err := f.svc.Reserve(context.Background(), f.userID, 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReserveDuplicate(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Reserve(ctx, f.userID, f.freeID); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	_, err := f.svc.Reserve(ctx, f.userID, f.freeID)
	if !errors.Is(err, domain.ErrDuplicateReservation) {
		t.Fatalf("err = %v, want ErrDuplicateReservation", err)
	}
}

func TestListForUserIncludesEvent(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Reserve(ctx, f.userID, f.pricedID); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	list, err := f.svc.ListForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Event.EventName != "Concierto de jazz" {
		t.Errorf("joined event = %+v", list[0].Event)
	}
}

func TestCancelReservation(t *testing.T) {
	f := newReservationFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Reserve(ctx, f.userID, f.freeID); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := f.svc.Cancel(ctx, f.userID, f.freeID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !f.pub.published(bus.ReservationCanceled) {
		t.Error("reservation.canceled not published")
	}

	list, err := f.svc.ListForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestCancelMissingReservation(t *testing.T) {
	f := newReservationFixture(t)

	err := f.svc.Cancel(context.Background(), f.userID, f.freeID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
