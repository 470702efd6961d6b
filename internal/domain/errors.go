package domain

import "errors"

var (
	// ErrInvalidCatalog возвращается, когда каталог не прошёл проверку целостности
	ErrInvalidCatalog = errors.New("domain: invalid catalog")
)
