package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// MemoryStore keeps every collection in process memory. Records are copied on
// the way in and out so callers never alias stored state.
type MemoryStore struct {
	mu  sync.RWMutex
	ids IDAllocator
	now func() time.Time

	users       *collection[domain.User]
	branches    *collection[domain.Branch]
	agents      *collection[domain.Agent]
	customers   *collection[domain.Customer]
	deliveries  *collection[domain.Delivery]
	staff       *collection[domain.Staff]
	leaves      *collection[domain.LeaveRequest]
	attendances *collection[domain.Attendance]
}

var _ Store = (*MemoryStore)(nil)

// MemoryOption customizes a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source used for server-stamped timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore builds an empty store drawing ids from ids.
func NewMemoryStore(ids IDAllocator, opts ...MemoryOption) *MemoryStore {
	if ids == nil {
		ids = NewSequenceAllocator(1)
	}
	s := &MemoryStore{
		ids:         ids,
		now:         time.Now,
		users:       newCollection[domain.User](),
		branches:    newCollection[domain.Branch](),
		agents:      newCollection[domain.Agent](),
		customers:   newCollection[domain.Customer](),
		deliveries:  newCollection[domain.Delivery](),
		staff:       newCollection[domain.Staff](),
		leaves:      newCollection[domain.LeaveRequest](),
		attendances: newCollection[domain.Attendance](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) nextID(ctx context.Context, kind domain.EntityKind) (int64, error) {
	id, err := s.ids.Next(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", kind, err)
	}
	return id, nil
}

func notFound(kind domain.EntityKind, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

func duplicateID(kind domain.EntityKind, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrDuplicateID)
}

// Users

func (s *MemoryStore) GetUser(_ context.Context, id int64) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	return u, ok, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.find(func(u domain.User) bool { return u.Username == username })
	return u, ok, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := s.nextID(ctx, domain.KindUser)
	if err != nil {
		return domain.User{}, err
	}
	user.ID = id
	if user.Role == "" {
		user.Role = domain.DefaultUserRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.users.insert(id, user) {
		return domain.User{}, duplicateID(domain.KindUser, id)
	}
	return user.Clone(), nil
}

// Branches

func (s *MemoryStore) ListBranches(_ context.Context) ([]domain.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.branches.all(), nil
}

func (s *MemoryStore) GetBranch(_ context.Context, id int64) (domain.Branch, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.branches.get(id)
	return b, ok, nil
}

func (s *MemoryStore) CreateBranch(ctx context.Context, branch domain.Branch) (domain.Branch, error) {
	id, err := s.nextID(ctx, domain.KindBranch)
	if err != nil {
		return domain.Branch{}, err
	}
	branch.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.branches.insert(id, branch) {
		return domain.Branch{}, duplicateID(domain.KindBranch, id)
	}
	return branch.Clone(), nil
}

// Agents

func (s *MemoryStore) ListAgents(_ context.Context) ([]domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agents.all(), nil
}

func (s *MemoryStore) GetAgent(_ context.Context, id int64) (domain.Agent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.agents.get(id)
	return a, ok, nil
}

func (s *MemoryStore) CreateAgent(ctx context.Context, agent domain.Agent) (domain.Agent, error) {
	id, err := s.nextID(ctx, domain.KindAgent)
	if err != nil {
		return domain.Agent{}, err
	}
	agent.ID = id
	agent.CreatedAt = s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.agents.insert(id, agent) {
		return domain.Agent{}, duplicateID(domain.KindAgent, id)
	}
	return agent.Clone(), nil
}

func (s *MemoryStore) UpdateAgent(_ context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a, ok := s.agents.update(id, patch.Apply)
	if !ok {
		return domain.Agent{}, notFound(domain.KindAgent, id)
	}
	return a, nil
}

// ModifyAgent computes a patch from the current record and applies it in the
// same critical section. plan must not call back into the store.
func (s *MemoryStore) ModifyAgent(_ context.Context, id int64, plan func(current domain.Agent) domain.AgentPatch) (domain.Agent, domain.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before, after, ok := s.agents.update(id, func(v *domain.Agent) {
		patch := plan(v.Clone())
		patch.Apply(v)
	})
	if !ok {
		return domain.Agent{}, domain.Agent{}, notFound(domain.KindAgent, id)
	}
	return before, after, nil
}

func (s *MemoryStore) DeleteAgent(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agents.remove(id), nil
}

// Customers

func (s *MemoryStore) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.all(), nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id int64) (domain.Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers.get(id)
	return c, ok, nil
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	id, err := s.nextID(ctx, domain.KindCustomer)
	if err != nil {
		return domain.Customer{}, err
	}
	customer.ID = id
	customer.RegisteredAt = s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.customers.insert(id, customer) {
		return domain.Customer{}, duplicateID(domain.KindCustomer, id)
	}
	return customer.Clone(), nil
}

// Deliveries

func (s *MemoryStore) ListDeliveries(_ context.Context) ([]domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deliveries.all(), nil
}

func (s *MemoryStore) GetDelivery(_ context.Context, id int64) (domain.Delivery, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deliveries.get(id)
	return d, ok, nil
}

// GetDeliveryByInvoice matches the invoice number exactly. Callers normalize case.
func (s *MemoryStore) GetDeliveryByInvoice(_ context.Context, invoiceNumber string) (domain.Delivery, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deliveries.find(func(d domain.Delivery) bool { return d.InvoiceNumber == invoiceNumber })
	return d, ok, nil
}

func (s *MemoryStore) CreateDelivery(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error) {
	id, err := s.nextID(ctx, domain.KindDelivery)
	if err != nil {
		return domain.Delivery{}, err
	}
	delivery.ID = id
	delivery.CreatedAt = s.now()
	delivery.CompletedAt = nil
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deliveries.insert(id, delivery) {
		return domain.Delivery{}, duplicateID(domain.KindDelivery, id)
	}
	return delivery.Clone(), nil
}

func (s *MemoryStore) UpdateDelivery(_ context.Context, id int64, patch domain.DeliveryPatch) (domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, d, ok := s.deliveries.update(id, patch.Apply)
	if !ok {
		return domain.Delivery{}, notFound(domain.KindDelivery, id)
	}
	return d, nil
}

// ModifyDelivery computes a patch from the current record and applies it in the
// same critical section. plan must not call back into the store.
func (s *MemoryStore) ModifyDelivery(_ context.Context, id int64, plan func(current domain.Delivery) domain.DeliveryPatch) (domain.Delivery, domain.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before, after, ok := s.deliveries.update(id, func(v *domain.Delivery) {
		patch := plan(v.Clone())
		patch.Apply(v)
	})
	if !ok {
		return domain.Delivery{}, domain.Delivery{}, notFound(domain.KindDelivery, id)
	}
	return before, after, nil
}

func (s *MemoryStore) DeleteDelivery(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveries.remove(id), nil
}

// Staff

func (s *MemoryStore) ListStaff(_ context.Context) ([]domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staff.all(), nil
}

func (s *MemoryStore) GetStaff(_ context.Context, id int64) (domain.Staff, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.staff.get(id)
	return m, ok, nil
}

func (s *MemoryStore) CreateStaff(ctx context.Context, member domain.Staff) (domain.Staff, error) {
	id, err := s.nextID(ctx, domain.KindStaff)
	if err != nil {
		return domain.Staff{}, err
	}
	member.ID = id
	member.HiredAt = s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.staff.insert(id, member) {
		return domain.Staff{}, duplicateID(domain.KindStaff, id)
	}
	return member.Clone(), nil
}

func (s *MemoryStore) UpdateStaff(_ context.Context, id int64, patch domain.StaffPatch) (domain.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, m, ok := s.staff.update(id, patch.Apply)
	if !ok {
		return domain.Staff{}, notFound(domain.KindStaff, id)
	}
	return m, nil
}

// Leave requests

func (s *MemoryStore) ListLeaveRequests(_ context.Context) ([]domain.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaves.all(), nil
}

func (s *MemoryStore) GetLeaveRequest(_ context.Context, id int64) (domain.LeaveRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leaves.get(id)
	return l, ok, nil
}

func (s *MemoryStore) CreateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) (domain.LeaveRequest, error) {
	id, err := s.nextID(ctx, domain.KindLeaveRequest)
	if err != nil {
		return domain.LeaveRequest{}, err
	}
	leave.ID = id
	leave.RequestedAt = s.now()
	leave.ReviewedAt = nil
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.leaves.insert(id, leave) {
		return domain.LeaveRequest{}, duplicateID(domain.KindLeaveRequest, id)
	}
	return leave.Clone(), nil
}

func (s *MemoryStore) UpdateLeaveRequest(_ context.Context, id int64, patch domain.LeaveRequestPatch) (domain.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, l, ok := s.leaves.update(id, patch.Apply)
	if !ok {
		return domain.LeaveRequest{}, notFound(domain.KindLeaveRequest, id)
	}
	return l, nil
}

// ModifyLeaveRequest computes a patch from the current record and applies it in the
// same critical section. plan must not call back into the store.
func (s *MemoryStore) ModifyLeaveRequest(_ context.Context, id int64, plan func(current domain.LeaveRequest) domain.LeaveRequestPatch) (domain.LeaveRequest, domain.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before, after, ok := s.leaves.update(id, func(v *domain.LeaveRequest) {
		patch := plan(v.Clone())
		patch.Apply(v)
	})
	if !ok {
		return domain.LeaveRequest{}, domain.LeaveRequest{}, notFound(domain.KindLeaveRequest, id)
	}
	return before, after, nil
}

// Attendance

func (s *MemoryStore) ListAttendance(_ context.Context) ([]domain.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendances.all(), nil
}

func (s *MemoryStore) ListAttendanceByStaff(_ context.Context, staffID int64) ([]domain.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendances.filter(func(a domain.Attendance) bool { return a.StaffID == staffID }), nil
}

func (s *MemoryStore) GetAttendance(_ context.Context, id int64) (domain.Attendance, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attendances.get(id)
	return a, ok, nil
}

func (s *MemoryStore) CreateAttendance(ctx context.Context, record domain.Attendance) (domain.Attendance, error) {
	id, err := s.nextID(ctx, domain.KindAttendance)
	if err != nil {
		return domain.Attendance{}, err
	}
	record.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attendances.insert(id, record) {
		return domain.Attendance{}, duplicateID(domain.KindAttendance, id)
	}
	return record.Clone(), nil
}

func (s *MemoryStore) UpdateAttendance(_ context.Context, id int64, patch domain.AttendancePatch) (domain.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a, ok := s.attendances.update(id, patch.Apply)
	if !ok {
		return domain.Attendance{}, notFound(domain.KindAttendance, id)
	}
	return a, nil
}

// Counts reports the number of records per kind.
func (s *MemoryStore) Counts() map[domain.EntityKind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[domain.EntityKind]int{
		domain.KindUser:         s.users.len(),
		domain.KindBranch:       s.branches.len(),
		domain.KindAgent:        s.agents.len(),
		domain.KindCustomer:     s.customers.len(),
		domain.KindDelivery:     s.deliveries.len(),
		domain.KindStaff:        s.staff.len(),
		domain.KindLeaveRequest: s.leaves.len(),
		domain.KindAttendance:   s.attendances.len(),
	}
}
