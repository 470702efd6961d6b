package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе получателя
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrDelivery возвращается диспетчером, если хотя бы один получатель не принял запись
	ErrDelivery = errors.New("notifier: delivery failed")
)
