package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/domain/port"
)

// ErrNoBoardPhoto граф пришёл раньше фото платы.
var ErrNoBoardPhoto = errors.New("board photo is not found")

type InspectionService struct {
	sessions  *SessionService
	images    port.ImageStore
	graphs    port.GraphRepository
	detector  port.PadDetector
	overlay   port.OverlayRenderer
	evaluator *EvaluationService
	boards    map[int64]image.Image
	mu        sync.RWMutex
}

// InspectionOutput содержит результат и картинку с подсветкой в PNG.
type InspectionOutput struct {
	Report      *entity.EvaluationReport
	Highlighted []byte
}

// NewInspectionService создаёт сервис, который ведёт проверку плат в боте.
func NewInspectionService(
	sessions *SessionService,
	images port.ImageStore,
	graphs port.GraphRepository,
	detector port.PadDetector,
	overlay port.OverlayRenderer,
	evaluator *EvaluationService,
) *InspectionService {
	return &InspectionService{
		sessions:  sessions,
		images:    images,
		graphs:    graphs,
		detector:  detector,
		overlay:   overlay,
		evaluator: evaluator,
		boards:    make(map[int64]image.Image),
	}
}

// ProcessBoardPhoto ищет площадки на фото и возвращает пользователя в главное меню.
func (s *InspectionService) ProcessBoardPhoto(ctx context.Context, userID, chatID int64, photo []byte) (out *InspectionOutput, err error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}
	defer func() {
		if _, resetErr := s.sessions.SetState(ctx, userID, chatID, entity.StateMainMenu); resetErr != nil && err == nil {
			out, err = nil, fmt.Errorf("reset session: %w", resetErr)
		}
	}()

	img, err := s.images.Decode(photo)
	if err != nil {
		return nil, err
	}

	detections, err := s.detector.DetectPads(ctx, img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	report := &entity.EvaluationReport{
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		Detections:  detections,
		Metrics:     entity.Metrics{DetectionCount: len(detections)},
	}

	var highlighted []byte
	if len(detections) > 0 {
		highlighted, err = s.images.EncodePNG(s.overlay.RenderDetections(img, detections))
		if err != nil {
			return nil, fmt.Errorf("encode overlay: %w", err)
		}
	}

	return &InspectionOutput{Report: report, Highlighted: highlighted}, nil
}

// AcceptEvalPhoto сохраняет фото платы и ждёт граф разметки.
func (s *InspectionService) AcceptEvalPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*entity.Session, error) {
	img, err := s.images.Decode(photo)
	if err != nil {
		return nil, err
	}

	// Держим фото в памяти до прихода графа.
	s.mu.Lock()
	s.boards[userID] = img
	s.mu.Unlock()
	return s.sessions.SetState(ctx, userID, chatID, entity.StateAwaitingGraph)
}

// ProcessGraphDocument оценивает сохранённое фото по присланному графу.
func (s *InspectionService) ProcessGraphDocument(ctx context.Context, userID, chatID int64, document []byte) (*InspectionOutput, error) {
	if s.evaluator == nil {
		return nil, errors.New("evaluator is not configured")
	}

	s.mu.RLock()
	img, ok := s.boards[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoBoardPhoto
	}

	g, err := s.graphs.Decode(document)
	if err != nil {
		return nil, err
	}

	report, err := s.evaluator.EvaluateImage(ctx, img, g)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.boards, userID)
	s.mu.Unlock()
	if _, err := s.sessions.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
		return nil, err
	}

	highlighted, err := s.images.EncodePNG(s.overlay.Render(img, report))
	if err != nil {
		return nil, fmt.Errorf("encode overlay: %w", err)
	}
	return &InspectionOutput{Report: report, Highlighted: highlighted}, nil
}

// Forget удаляет сохранённое фото пользователя.
func (s *InspectionService) Forget(userID int64) {
	s.mu.Lock()
	delete(s.boards, userID)
	s.mu.Unlock()
}
