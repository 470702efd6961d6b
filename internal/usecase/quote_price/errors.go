package quote_price

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("quote_price: service not found")

	// ErrInvalidWeight возвращается при неизвестной весовой категории
	ErrInvalidWeight = errors.New("quote_price: invalid pet weight")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")
)
