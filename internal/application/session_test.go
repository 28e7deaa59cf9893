package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pcb-partgraph/internal/domain/entity"
	"pcb-partgraph/internal/infrastructure/storage"
)

func TestSessionService_BeginDetectAndCancel(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	svc := NewSessionService(repo)
	ctx := context.Background()

	session, err := svc.BeginDetect(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingBoard, session.State)

	session, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, session.State)
}

func TestSessionService_BeginEvaluate(t *testing.T) {
	repo := storage.NewMemorySessionRepository()
	svc := NewSessionService(repo)
	ctx := context.Background()

	session, err := svc.BeginEvaluate(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingEvalBoard, session.State)

	got, err := svc.Get(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingEvalBoard, got.State)
}
