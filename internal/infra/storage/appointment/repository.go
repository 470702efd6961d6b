package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

const table = "appointments"

// uniqueViolation код ошибки PostgreSQL 23505
const uniqueViolation = "23505"

var columns = []string{
	"id",
	"pet_name",
	"owner_name",
	"whatsapp",
	"service",
	"weight",
	"addons",
	"price_cents",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий записей на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет запись. Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Insert(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var weight *string
	if appointment.Weight != nil {
		w := string(*appointment.Weight)
		weight = &w
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"pet_name",
			"owner_name",
			"whatsapp",
			"service",
			"weight",
			"addons",
			"price_cents",
			"start_time",
			"end_time",
		).
		Values(
			appointment.ID,
			appointment.PetName,
			appointment.OwnerName,
			appointment.Whatsapp,
			string(appointment.Service),
			weight,
			pq.Array(addonStrings(appointment.Addons)),
			appointment.Price.Centavos(),
			appointment.StartTime,
			appointment.EndTime,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, appointment.ID)
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt
	return appointment, nil
}

// GetByID получает запись по id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// ListFrom возвращает записи, начинающиеся не раньше from, по возрастанию времени начала
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListFrom", squirrel.GtOrEq{"start_time": from}, false)
}

// ListForDay возвращает записи, начинающиеся в интервале [dayStart, dayStart+24h).
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка вместимости
// и вставка выполнялись атомарно.
func (r *Repository) ListForDay(ctx context.Context, dayStart time.Time) ([]*domain.Appointment, error) {
	where := squirrel.And{
		squirrel.GtOrEq{"start_time": dayStart},
		squirrel.Lt{"start_time": dayStart.AddDate(0, 0, 1)},
	}
	return r.list(ctx, "ListForDay", where, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer, lock bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("start_time ASC", "created_at ASC")

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %w", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %w", ErrScanRow, op, err)
	}

	return appointments, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a          domain.Appointment
		service    string
		weight     sql.NullString
		addons     []string
		priceCents int64
	)

	err := row.Scan(
		&a.ID,
		&a.PetName,
		&a.OwnerName,
		&a.Whatsapp,
		&service,
		&weight,
		pq.Array(&addons),
		&priceCents,
		&a.StartTime,
		&a.EndTime,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Service = domain.ServiceType(service)
	if weight.Valid {
		w := domain.PetWeight(weight.String)
		a.Weight = &w
	}
	a.Addons = make([]domain.AddonID, 0, len(addons))
	for _, id := range addons {
		a.Addons = append(a.Addons, domain.AddonID(id))
	}
	a.Price = domain.Money(priceCents)

	return &a, nil
}

func addonStrings(ids []domain.AddonID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, string(id))
	}
	return result
}
