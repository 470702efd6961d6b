package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInvalidEvent возвращается при некорректном событии
	ErrInvalidEvent = errors.New("sessions: invalid event")

	// ErrStepIncomplete возвращается, когда текущий шаг не заполнен
	ErrStepIncomplete = errors.New("sessions: current step is incomplete")

	// ErrDateNotAvailable возвращается для выходных и прошедших дат
	ErrDateNotAvailable = errors.New("sessions: date is not available")

	// ErrSlotNotAvailable возвращается, когда выбранный час недоступен
	ErrSlotNotAvailable = errors.New("sessions: slot is not available")

	// ErrNotReadyToSubmit возвращается, когда выбор не готов к отправке
	ErrNotReadyToSubmit = errors.New("sessions: selection is not ready to submit")

	// ErrSubmissionInProgress возвращается, пока отправка сессии не завершилась
	ErrSubmissionInProgress = errors.New("sessions: submission already in progress")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
