package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// ImageFileStore читает PNG, JPEG, GIF, BMP и TIFF, пишет PNG.
type ImageFileStore struct{}

// NewImageFileStore создаёт файловое хранилище изображений.
func NewImageFileStore() *ImageFileStore {
	return &ImageFileStore{}
}

// Load открывает и декодирует изображение. Любая ошибка: ErrIO.
func (s *ImageFileStore) Load(ctx context.Context, path string) (image.Image, error) {
	_ = ctx
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open image: %w", entity.ErrIO, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image %s: %w", entity.ErrIO, path, err)
	}
	return img, nil
}

// Decode декодирует изображение из байтов.
func (s *ImageFileStore) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %w", entity.ErrIO, err)
	}
	return img, nil
}

// Save пишет изображение в PNG, создавая каталоги.
func (s *ImageFileStore) Save(ctx context.Context, path string, img image.Image) error {
	_ = ctx
	data, err := s.EncodePNG(img)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// EncodePNG кодирует изображение в PNG.
func (s *ImageFileStore) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

var _ port.ImageStore = (*ImageFileStore)(nil)
