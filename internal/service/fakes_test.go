package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/notify"
	"github.com/eventease/eventease/internal/repository"
	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the repository layer. It mirrors the
// store's semantics: capacity-checked seat claims, duplicate registration
// checks, conflict-driven like toggles and review upserts, and derived social
// counters.
type memStore struct {
	mu         sync.Mutex
	events     map[string]*model.Event
	regs       map[string]*model.Registration
	bookings   map[string]*model.Booking
	invoices   map[string]*model.Invoice
	likes      map[string]map[string]string     // eventID -> userID -> likeID
	reviews    map[string]map[string]*model.Review // eventID -> userID
	users      map[string]*model.User           // by email
	invoiceSeq int
}

func newMemStore() *memStore {
	return &memStore{
		events:   map[string]*model.Event{},
		regs:     map[string]*model.Registration{},
		bookings: map[string]*model.Booking{},
		invoices: map[string]*model.Invoice{},
		likes:    map[string]map[string]string{},
		reviews:  map[string]map[string]*model.Review{},
		users:    map[string]*model.User{},
	}
}

func (m *memStore) addEvent(e model.Event) *model.Event {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	m.events[e.ID] = &e
	return &e
}

// --- EventCatalog / EventGetter / ModerationStore / CounterRefresher ---

func (m *memStore) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.New().String()
	e.Status = model.EventPending
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	m.events[e.ID] = e
	return e, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memStore) ListApproved(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Event
	for _, e := range m.events {
		if e.Status != model.EventApproved {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (m *memStore) ListAll(ctx context.Context) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Event
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *memStore) Moderate(ctx context.Context, id string, status model.EventStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return repository.ErrNotFound
	}
	if e.Status != model.EventPending {
		return repository.ErrAlreadyModerated
	}
	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memStore) RefreshSocialCounters(ctx context.Context, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[eventID]
	if !ok {
		return repository.ErrNotFound
	}
	e.Likes = len(m.likes[eventID])
	var sum, n int
	for _, rev := range m.reviews[eventID] {
		sum += rev.Rating
		n++
	}
	if n == 0 {
		e.Rating = 0
	} else {
		e.Rating = float64(sum) / float64(n)
	}
	return nil
}

// --- RegistrationStore ---

func (m *memStore) CreateRegistration(ctx context.Context, reg *model.Registration) (*model.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[reg.EventID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if e.RegisteredCount+reg.GroupSize > e.TotalCapacity {
		return nil, repository.ErrEventFull
	}
	for _, existing := range m.regs {
		if existing.EventID == reg.EventID && existing.UserID == reg.UserID {
			return nil, repository.ErrAlreadyRegistered
		}
	}
	e.RegisteredCount += reg.GroupSize
	reg.ID = uuid.New().String()
	reg.CreatedAt = time.Now().UTC()
	m.regs[reg.ID] = reg
	return reg, nil
}

func (m *memStore) ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Registration
	for _, reg := range m.regs {
		if reg.EventID == eventID {
			out = append(out, *reg)
		}
	}
	return out, nil
}

// regStore adapts memStore to the RegistrationStore interface without
// colliding with the event Create method.
type regStore struct{ *memStore }

func (s regStore) Create(ctx context.Context, reg *model.Registration) (*model.Registration, error) {
	return s.CreateRegistration(ctx, reg)
}

// --- BookingStore ---

type bookingStore struct{ *memStore }

func (s bookingStore) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[b.EventID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if e.RegisteredCount+b.Quantity > e.TotalCapacity {
		return nil, repository.ErrEventFull
	}
	e.RegisteredCount += b.Quantity
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	s.bookings[b.ID] = b
	return b, nil
}

// --- InvoiceStore / InvoiceReader ---

type invoiceStore struct{ *memStore }

func (s invoiceStore) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoiceSeq++
	inv.ID = uuid.New().String()
	inv.InvoiceNumber = fmt.Sprintf("INV-%d-%06d", inv.IssuedAt.Year(), s.invoiceSeq)
	s.invoices[inv.ID] = inv
	return inv, nil
}

func (s invoiceStore) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (s invoiceStore) GetDetail(ctx context.Context, id string) (*repository.InvoiceDetail, error) {
	inv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	detail := &repository.InvoiceDetail{Invoice: *inv}
	if b, ok := s.bookings[inv.BookingID]; ok {
		cp := *b
		detail.Booking = &cp
		if e, ok := s.events[b.EventID]; ok {
			ecp := *e
			detail.Event = &ecp
		}
	}
	return detail, nil
}

// --- LikeStore ---

type likeStore struct{ *memStore }

func (s likeStore) Toggle(ctx context.Context, eventID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.likes[eventID]
	if !ok {
		byUser = map[string]string{}
		s.likes[eventID] = byUser
	}
	if _, liked := byUser[userID]; liked {
		delete(byUser, userID)
		return false, nil
	}
	byUser[userID] = uuid.New().String()
	return true, nil
}

// --- ReviewStore ---

type reviewStore struct{ *memStore }

func (s reviewStore) Upsert(ctx context.Context, rev *model.Review) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser, ok := s.reviews[rev.EventID]
	if !ok {
		byUser = map[string]*model.Review{}
		s.reviews[rev.EventID] = byUser
	}
	now := time.Now().UTC()
	if existing, ok := byUser[rev.UserID]; ok {
		existing.Rating = rev.Rating
		existing.Comment = rev.Comment
		existing.UpdatedAt = now
		cp := *existing
		return &cp, nil
	}
	rev.ID = uuid.New().String()
	rev.CreatedAt = now
	rev.UpdatedAt = now
	byUser[rev.UserID] = rev
	cp := *rev
	return &cp, nil
}

func (s reviewStore) ListByEvent(ctx context.Context, eventID string) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Review
	for _, rev := range s.reviews[eventID] {
		out = append(out, *rev)
	}
	return out, nil
}

// --- UserStore ---

type userStore struct{ *memStore }

func (s userStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[u.Email]; taken {
		return nil, repository.ErrDuplicateEmail
	}
	u.ID = uuid.New().String()
	u.Role = model.RoleUser
	u.CreatedAt = time.Now().UTC()
	s.users[u.Email] = u
	cp := *u
	return &cp, nil
}

func (s userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// --- Notifier ---

type fakeNotifier struct {
	mu            sync.Mutex
	registrations []notify.RegistrationEmail
	bookings      []notify.BookingEmail
	err           error
}

func (n *fakeNotifier) SendRegistrationEmail(ctx context.Context, p notify.RegistrationEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.registrations = append(n.registrations, p)
	return nil
}

func (n *fakeNotifier) SendBookingEmail(ctx context.Context, p notify.BookingEmail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.bookings = append(n.bookings, p)
	return nil
}
