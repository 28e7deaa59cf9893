package container

import (
	"github.com/rs/zerolog"

	"pcb-partgraph/config"
	app "pcb-partgraph/internal/application"
	"pcb-partgraph/internal/domain/port"
	"pcb-partgraph/internal/infrastructure/render"
	"pcb-partgraph/internal/infrastructure/storage"
	"pcb-partgraph/internal/infrastructure/vision"
)

type Container struct {
	SessionService       *app.SessionService
	InspectionService    *app.InspectionService
	EvaluationService    *app.EvaluationService
	FeaturizationService *app.FeaturizationService
	DatasetService       *app.DatasetService
}

func New(cfg *config.Config, logger zerolog.Logger) *Container {
	sessionRepo := storage.NewMemorySessionRepository()
	images := storage.NewImageFileStore()
	graphs := storage.NewGraphFileRepository()

	detector := vision.NewPadDetector(cfg.DetectionSettings(), newMasker(cfg.MaskBackend), logger)
	overlay := vision.NewOverlayRenderer()

	sessionService := app.NewSessionService(sessionRepo)
	evaluationService := app.NewEvaluationService(images, graphs, detector, overlay, cfg.MatchSettings(), logger)
	inspectionService := app.NewInspectionService(sessionService, images, graphs, detector, overlay, evaluationService)
	featurizationService := app.NewFeaturizationService(graphs, logger)
	datasetService := app.NewDatasetService(
		render.NewSceneRenderer(),
		storage.NewDatasetLayout(),
		images,
		graphs,
		evaluationService,
		logger,
	)

	return &Container{
		SessionService:       sessionService,
		InspectionService:    inspectionService,
		EvaluationService:    evaluationService,
		FeaturizationService: featurizationService,
		DatasetService:       datasetService,
	}
}

func newMasker(backend string) port.MaskExtractor {
	if backend == "gocv" {
		return vision.NewGoCVMasker()
	}
	return vision.NewNativeMasker()
}
