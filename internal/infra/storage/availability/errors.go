package availability

import "errors"

var (
	// ErrConfigNotFound возвращается, когда строка конфигурации отсутствует
	ErrConfigNotFound = errors.New("availability.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке сериализации расписания недели
	ErrEncodeSchedule = errors.New("availability.repository: failed to encode business hours")

	// ErrDecodeSchedule возвращается при ошибке десериализации расписания недели
	ErrDecodeSchedule = errors.New("availability.repository: failed to decode business hours")
)
