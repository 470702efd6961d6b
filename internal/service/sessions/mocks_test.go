package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

type mockAvailability struct {
	mock.Mock
}

func (m *mockAvailability) Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*get_available_slots.Response)
	return resp, args.Error(1)
}

type mockBooking struct {
	mock.Mock
}

func (m *mockBooking) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*create_booking.Response)
	return resp, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) SetActiveSessions(n int) {
	m.Called(n)
}

// fakeClock управляемые часы для тестов
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
