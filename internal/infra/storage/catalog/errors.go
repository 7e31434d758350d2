package catalog

import "errors"

var (
	// ErrPackOfferNotFound возвращается, когда пакет не найден
	ErrPackOfferNotFound = errors.New("catalog.repository: pack offer not found")

	// ErrDecorNotFound возвращается, когда декорация не найдена
	ErrDecorNotFound = errors.New("catalog.repository: decor not found")

	// ErrThemeNotFound возвращается, когда тема не найдена
	ErrThemeNotFound = errors.New("catalog.repository: theme not found")

	// ErrSupplementNotFound возвращается, когда доплата не найдена
	ErrSupplementNotFound = errors.New("catalog.repository: supplement service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
