package create_booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) ListForDay(ctx context.Context, dayStart time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, dayStart)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) Insert(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appointment)
	if fn, ok := args.Get(0).(func(*domain.Appointment) *domain.Appointment); ok {
		return fn(appointment), args.Error(1)
	}
	created, _ := args.Get(0).(*domain.Appointment)
	return created, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, record domain.BookingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) AppointmentCreated(serviceType string) {
	m.Called(serviceType)
}

func (m *mockMetrics) BookingRejected(reason string) {
	m.Called(reason)
}

// inlineTxManager выполняет функцию без настоящей транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fakeTx транзакция без базы данных
type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

// fakeTxBeginner выдаёт fakeTx для настоящего txmanager
type fakeTxBeginner struct {
	txs []*fakeTx
}

func (b *fakeTxBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
