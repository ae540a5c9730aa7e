package interfaces

import (
	"context"

	"restoration_billing/internal/domain/entities"
)

// IEstimateDocumentRepository abstracts DynamoDB persistence for estimate
// documents.
//
// The billing service must be able to:
//   - store a freshly built document snapshot
//   - reload a document for editing or preview
//   - replace the full content on save (single-writer editing sessions)
//   - flip the workflow status (send/approve/decline)

type IEstimateDocumentRepository interface {
	Create(ctx context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDocument, error)
	Replace(ctx context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.DocumentStatus) (entities.EstimateDocument, error)
	DeleteByID(ctx context.Context, id string) error
}
