package port

import (
	"context"
	"image"
	"math/rand/v2"

	"pcb-partgraph/internal/domain/entity"
)

// GraphRepository хранилище графов разметки
type GraphRepository interface {
	// Load читает и валидирует граф
	Load(ctx context.Context, path string) (*entity.Graph, error)

	// Decode разбирает граф из JSON документа
	Decode(data []byte) (*entity.Graph, error)

	// Save записывает граф
	Save(ctx context.Context, path string, g *entity.Graph) error
}

// ImageStore хранилище изображений
type ImageStore interface {
	// Load декодирует изображение из файла
	Load(ctx context.Context, path string) (image.Image, error)

	// Decode декодирует изображение из байтов
	Decode(data []byte) (image.Image, error)

	// Save записывает изображение в PNG
	Save(ctx context.Context, path string, img image.Image) error

	// EncodePNG кодирует изображение в PNG
	EncodePNG(img image.Image) ([]byte, error)
}

// SampleStore раскладка датасета по каталогам
type SampleStore interface {
	// Sample возвращает пути i-го образца (нумерация с 1)
	Sample(dir string, index int) (entity.Sample, error)

	// List возвращает образцы каталога в порядке имён
	List(dir string) ([]entity.Sample, error)
}

// SceneRenderer рисует синтетическую плату вместе с графом разметки
type SceneRenderer interface {
	// Render рисует сцену; imagePath записывается в метаданные графа
	Render(rng *rand.Rand, imagePath string) (image.Image, *entity.Graph, error)
}

// SessionRepository интерфейс хранилища сессий бота
type SessionRepository interface {
	// Get возвращает сессию пользователя, создаёт новую если не найдена
	Get(ctx context.Context, userID, chatID int64) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error

	// UpdateState обновляет состояние сессии
	UpdateState(ctx context.Context, userID int64, state entity.SessionState) error
}
