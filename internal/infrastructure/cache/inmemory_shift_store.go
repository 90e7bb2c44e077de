package cache

import (
	"context"
	"sync"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/google/uuid"
)

type shiftKey struct {
	owner    uuid.UUID
	employee uuid.UUID
}

// InMemoryShiftStore keeps running shifts in process memory. They are lost
// on restart; use RedisShiftStore when that matters.
type InMemoryShiftStore struct {
	mu     sync.Mutex
	shifts map[shiftKey]employee.ActiveShift
}

// NewInMemoryShiftStore creates an empty in-memory shift store
func NewInMemoryShiftStore() *InMemoryShiftStore {
	return &InMemoryShiftStore{shifts: make(map[shiftKey]employee.ActiveShift)}
}

// Begin implements employee.ShiftStore
func (s *InMemoryShiftStore) Begin(_ context.Context, shift employee.ActiveShift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := shiftKey{shift.OwnerID, shift.EmployeeID}
	if _, running := s.shifts[k]; running {
		return employee.ErrShiftAlreadyStarted
	}
	s.shifts[k] = shift
	return nil
}

// End implements employee.ShiftStore
func (s *InMemoryShiftStore) End(_ context.Context, ownerID, employeeID uuid.UUID) (*employee.ActiveShift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := shiftKey{ownerID, employeeID}
	shift, running := s.shifts[k]
	if !running {
		return nil, employee.ErrShiftNotStarted
	}
	delete(s.shifts, k)
	return &shift, nil
}

// Find implements employee.ShiftStore
func (s *InMemoryShiftStore) Find(_ context.Context, ownerID, employeeID uuid.UUID) (*employee.ActiveShift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, running := s.shifts[shiftKey{ownerID, employeeID}]
	if !running {
		return nil, employee.ErrShiftNotStarted
	}
	return &shift, nil
}

// ListForOwner implements employee.ShiftStore
func (s *InMemoryShiftStore) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]employee.ActiveShift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []employee.ActiveShift
	for k, shift := range s.shifts {
		if k.owner == ownerID {
			out = append(out, shift)
		}
	}
	return out, nil
}

var _ employee.ShiftStore = (*InMemoryShiftStore)(nil)
