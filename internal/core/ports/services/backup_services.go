package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// BackupSvcFacade serializes the whole store to a portable document and back.
// Import is destructive and non-merging; it validates structure only and
// leaves the store untouched on failure.
type BackupSvcFacade interface {
	Export(ctx context.Context) (*domain.BackupDocument, error)
	Import(ctx context.Context, raw []byte) error
	ClearAll(ctx context.Context) error
}
