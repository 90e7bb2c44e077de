package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisShiftStore keeps running shifts in Redis so they survive restarts
// and are shared by every server instance. One key per shift:
//
//	<prefix><ownerID>:<employeeID> = start time in unix milliseconds
type RedisShiftStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisShiftStore creates a Redis-backed shift store
func NewRedisShiftStore(client redis.UniversalClient, keyPrefix string) *RedisShiftStore {
	if keyPrefix == "" {
		keyPrefix = "ledger:shift:"
	}
	return &RedisShiftStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisShiftStore) key(ownerID, employeeID uuid.UUID) string {
	return s.keyPrefix + ownerID.String() + ":" + employeeID.String()
}

// Begin implements employee.ShiftStore using SETNX
func (s *RedisShiftStore) Begin(ctx context.Context, shift employee.ActiveShift) error {
	ok, err := s.client.SetNX(ctx, s.key(shift.OwnerID, shift.EmployeeID), shift.StartedAt.UnixMilli(), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to start shift: %w", err)
	}
	if !ok {
		return employee.ErrShiftAlreadyStarted
	}
	return nil
}

// End implements employee.ShiftStore using GETDEL
func (s *RedisShiftStore) End(ctx context.Context, ownerID, employeeID uuid.UUID) (*employee.ActiveShift, error) {
	raw, err := s.client.GetDel(ctx, s.key(ownerID, employeeID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, employee.ErrShiftNotStarted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to end shift: %w", err)
	}
	return decodeShift(ownerID, employeeID, raw)
}

// Find implements employee.ShiftStore
func (s *RedisShiftStore) Find(ctx context.Context, ownerID, employeeID uuid.UUID) (*employee.ActiveShift, error) {
	raw, err := s.client.Get(ctx, s.key(ownerID, employeeID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, employee.ErrShiftNotStarted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read shift: %w", err)
	}
	return decodeShift(ownerID, employeeID, raw)
}

// ListForOwner implements employee.ShiftStore by scanning the owner's keys
func (s *RedisShiftStore) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]employee.ActiveShift, error) {
	ownerPrefix := s.keyPrefix + ownerID.String() + ":"

	var shifts []employee.ActiveShift
	iter := s.client.Scan(ctx, 0, ownerPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		employeeID, err := uuid.Parse(strings.TrimPrefix(key, ownerPrefix))
		if err != nil {
			continue
		}
		raw, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			// ended between SCAN and GET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read shift: %w", err)
		}
		shift, err := decodeShift(ownerID, employeeID, raw)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

func decodeShift(ownerID, employeeID uuid.UUID, raw string) (*employee.ActiveShift, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt shift start %q: %w", raw, err)
	}
	return &employee.ActiveShift{
		OwnerID:    ownerID,
		EmployeeID: employeeID,
		StartedAt:  time.UnixMilli(ms),
	}, nil
}

var _ employee.ShiftStore = (*RedisShiftStore)(nil)
