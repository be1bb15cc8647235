package service_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/planventura/eventos-api/internal/domain"
	"github.com/planventura/eventos-api/internal/payments"
)

// ---------- Mocks ----------

type mockUserRepo struct {
	nextID  int64
	byID    map[int64]*domain.User
	byEmail map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{nextID: 1, byID: map[int64]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, req *domain.CreateUserRequest, passwordHash string) (*domain.User, error) {
	if _, exists := m.byEmail[req.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	u := &domain.User{
		ID:           m.nextID,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Age:          req.Age,
		Preference1:  req.Preference1,
		Preference2:  req.Preference2,
		Preference3:  req.Preference3,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.nextID++
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return m.byEmail[email], nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	return m.byID[id], nil
}

func (m *mockUserRepo) Update(_ context.Context, id int64, req *domain.UpdateUserRequest, passwordHash *string) (*domain.User, error) {
	u, exists := m.byID[id]
	if !exists {
		return nil, nil
	}
	if req.UserName != nil {
		u.UserName = *req.UserName
	}
	if req.Email != nil {
		delete(m.byEmail, u.Email)
		u.Email = *req.Email
		m.byEmail[u.Email] = u
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	return u, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	u, exists := m.byID[id]
	if !exists {
		return pgx.ErrNoRows
	}
	delete(m.byEmail, u.Email)
	delete(m.byID, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

type mockOrganizerRepo struct {
	nextID int64
	byID   map[int64]*domain.Organizer
	byName map[string]*domain.Organizer
}

func newMockOrganizerRepo() *mockOrganizerRepo {
	return &mockOrganizerRepo{nextID: 1, byID: map[int64]*domain.Organizer{}, byName: map[string]*domain.Organizer{}}
}

func (m *mockOrganizerRepo) Create(_ context.Context, req *domain.CreateOrganizerRequest, contactHash string) (*domain.Organizer, error) {
	if _, exists := m.byName[req.OrganizerName]; exists {
		return nil, domain.ErrOrganizerNameTaken
	}
	o := &domain.Organizer{
		ID:            m.nextID,
		OrganizerName: req.OrganizerName,
		ContactHash:   contactHash,
		OrganizerType: req.OrganizerType,
	}
	m.nextID++
	m.byID[o.ID] = o
	m.byName[o.OrganizerName] = o
	return o, nil
}

func (m *mockOrganizerRepo) FindByName(_ context.Context, name string) (*domain.Organizer, error) {
	return m.byName[name], nil
}

func (m *mockOrganizerRepo) FindByID(_ context.Context, id int64) (*domain.Organizer, error) {
	return m.byID[id], nil
}

func (m *mockOrganizerRepo) ListRefs(_ context.Context) ([]domain.OrganizerRef, error) {
	var out []domain.OrganizerRef
	for _, o := range m.byID {
		out = append(out, domain.OrganizerRef{ID: o.ID, OrganizerName: o.OrganizerName})
	}
	return out, nil
}

type mockLocationRepo struct {
	byID map[int64]*domain.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{byID: map[int64]*domain.Location{}}
}

func (m *mockLocationRepo) FindByID(_ context.Context, id int64) (*domain.Location, error) {
	return m.byID[id], nil
}

func (m *mockLocationRepo) ListRefs(_ context.Context) ([]domain.LocationRef, error) {
	var out []domain.LocationRef
	for _, l := range m.byID {
		out = append(out, domain.LocationRef{ID: l.ID, Address: l.Address})
	}
	return out, nil
}

type mockEventRepo struct {
	nextID int64
	byID   map[int64]*domain.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{nextID: 1, byID: map[int64]*domain.Event{}}
}

func (m *mockEventRepo) Create(_ context.Context, organizerID int64, req *domain.CreateEventRequest) (*domain.Event, error) {
	e := &domain.Event{
		ID:           m.nextID,
		EventName:    req.EventName,
		Description:  req.Description,
		EventDate:    req.EventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Price:        req.Price,
		Availability: req.Availability,
		Image:        req.Image,
		OrganizerID:  organizerID,
		LocationID:   req.LocationID,
	}
	m.nextID++
	m.byID[e.ID] = e
	return e, nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int64) (*domain.EventDetail, error) {
	e, exists := m.byID[id]
	if !exists {
		return nil, nil
	}
	return &domain.EventDetail{Event: *e}, nil
}

func (m *mockEventRepo) List(_ context.Context) ([]domain.EventDetail, error) {
	var out []domain.EventDetail
	for _, e := range m.byID {
		out = append(out, domain.EventDetail{Event: *e})
	}
	return out, nil
}

func (m *mockEventRepo) ListByOrganizer(_ context.Context, organizerID int64) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range m.byID {
		if e.OrganizerID == organizerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) UpdateOwned(_ context.Context, id, organizerID int64, req *domain.UpdateEventRequest) (*domain.Event, error) {
	e, exists := m.byID[id]
	if !exists || e.OrganizerID != organizerID {
		return nil, nil
	}
	if req.EventName != nil {
		e.EventName = *req.EventName
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Price != nil {
		e.Price = *req.Price
	}
	if req.LocationID != nil {
		e.LocationID = *req.LocationID
	}
	return e, nil
}

func (m *mockEventRepo) DeleteOwned(_ context.Context, id, organizerID int64) (bool, error) {
	e, exists := m.byID[id]
	if !exists || e.OrganizerID != organizerID {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *mockEventRepo) Exists(_ context.Context, id int64) (*domain.Event, error) {
	return m.byID[id], nil
}

type reservationKey struct {
	userID  int64
	eventID int64
}

type mockReservationRepo struct {
	nextID int64
	byKey  map[reservationKey]*domain.Reservation
	events *mockEventRepo
}

func newMockReservationRepo(events *mockEventRepo) *mockReservationRepo {
	return &mockReservationRepo{nextID: 1, byKey: map[reservationKey]*domain.Reservation{}, events: events}
}

func (m *mockReservationRepo) Create(_ context.Context, userID, eventID int64, quantity int) (*domain.Reservation, error) {
	key := reservationKey{userID, eventID}
	if _, exists := m.byKey[key]; exists {
		return nil, domain.ErrDuplicateReservation
	}
	res := &domain.Reservation{
		ID:              m.nextID,
		UserID:          userID,
		EventID:         eventID,
		TicketQuantity:  quantity,
		Status:          domain.ReservationActive,
		ReservationDate: time.Now(),
	}
	m.nextID++
	m.byKey[key] = res
	return res, nil
}

func (m *mockReservationRepo) ListByUser(_ context.Context, userID int64) ([]domain.ReservationWithEvent, error) {
	var out []domain.ReservationWithEvent
	for key, res := range m.byKey {
		if key.userID != userID {
			continue
		}
		item := domain.ReservationWithEvent{Reservation: *res}
		if e, exists := m.events.byID[key.eventID]; exists {
			item.Event = *e
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *mockReservationRepo) DeleteByUserAndEvent(_ context.Context, userID, eventID int64) (bool, error) {
	key := reservationKey{userID, eventID}
	if _, exists := m.byKey[key]; !exists {
		return false, nil
	}
	delete(m.byKey, key)
	return true, nil
}

type mockMailer struct {
	welcomes      []string
	confirmations []string
}

func (m *mockMailer) SendWelcome(toEmail, toName string) error {
	m.welcomes = append(m.welcomes, toEmail)
	return nil
}

func (m *mockMailer) SendReservationConfirmation(toEmail, toName, eventName, eventDate string, quantity int) error {
	m.confirmations = append(m.confirmations, toEmail)
	return nil
}

type mockPublisher struct {
	subjects []string
}

func (m *mockPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func (m *mockPublisher) published(subject string) bool {
	for _, s := range m.subjects {
		if s == subject {
			return true
		}
	}
	return false
}

type mockIntents struct {
	calls   int
	lastAmt int64
}

func (m *mockIntents) CreateIntent(_ context.Context, amountCents int64, description string) (*payments.Intent, error) {
	m.calls++
	m.lastAmt = amountCents
	return &payments.Intent{ID: "pi_test", ClientSecret: "cs_test", Amount: amountCents, Currency: "eur"}, nil
}
