package entity

import "errors"

// Виды ошибок. Конкретные ошибки оборачивают их через %w, проверка: errors.Is.
var (
	// ErrIO: изображение или граф не удалось прочитать или записать.
	ErrIO = errors.New("io error")
	// ErrParse граф повреждён: невалидный JSON, нет обязательных полей,
	// дубликаты id или ребро ссылается на несуществующий узел.
	ErrParse = errors.New("parse error")
	// ErrLookup: при featurization ребро ссылается на узел вне индекса.
	ErrLookup = errors.New("lookup error")
)
