package docstore

import "errors"

var (
	// ErrDocNotFound возвращается, когда документ не найден
	ErrDocNotFound = errors.New("docstore: document not found")

	// ErrMarshal возвращается при ошибке сериализации документа
	ErrMarshal = errors.New("docstore: failed to marshal document")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("docstore: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("docstore: failed to scan row")

	// ErrListenerStarted возвращается при повторном запуске слушателя
	ErrListenerStarted = errors.New("docstore: listener already started")
)
