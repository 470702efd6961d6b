package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Dispatcher рассылает запись о бронировании всем настроенным получателям параллельно
type Dispatcher struct {
	sinks   []Sink
	metrics MetricsRecorder
	log     Logger
}

// NewDispatcher создаёт диспетчер. Клиенты с пустым адресом пропускаются.
func NewDispatcher(log Logger, metrics MetricsRecorder, clients ...*Client) *Dispatcher {
	sinks := make([]Sink, 0, len(clients))
	for _, c := range clients {
		if c == nil || !c.Enabled() {
			continue
		}
		sinks = append(sinks, c)
	}
	return NewDispatcherWithSinks(log, metrics, sinks...)
}

// NewDispatcherWithSinks создаёт диспетчер с произвольными получателями
func NewDispatcherWithSinks(log Logger, metrics MetricsRecorder, sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks, metrics: metrics, log: log}
}

// Sinks возвращает имена активных получателей
func (d *Dispatcher) Sinks() []string {
	names := make([]string, 0, len(d.sinks))
	for _, s := range d.sinks {
		names = append(names, s.Name())
	}
	return names
}

// Notify отправляет запись каждому получателю и ждёт всех.
// Ошибка одного получателя не прерывает отправку остальным; возвращаются все ошибки.
func (d *Dispatcher) Notify(ctx context.Context, record domain.BookingRecord) error {
	if len(d.sinks) == 0 {
		d.log.Warn("Notifier: no sinks configured, booking id=%s not delivered", record.ID)
		return nil
	}

	payload := NewPayload(record)
	errs := make([]error, len(d.sinks))

	var g errgroup.Group
	for i, sink := range d.sinks {
		i, sink := i, sink
		g.Go(func() error {
			start := time.Now()
			err := sink.Send(ctx, payload)
			if d.metrics != nil {
				d.metrics.NotificationSent(sink.Name(), time.Since(start), err)
			}
			if err != nil {
				d.log.Error("Notifier: failed to deliver booking id=%s to %s: %v", record.ID, sink.Name(), err)
				errs[i] = fmt.Errorf("%s: %w", sink.Name(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}
