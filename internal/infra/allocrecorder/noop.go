package allocrecorder

import (
	"context"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AllocationRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordAllocation(_ context.Context, _ domain.AllocationRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
