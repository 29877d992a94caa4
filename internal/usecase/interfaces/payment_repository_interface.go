package interfaces

import (
	"context"

	"paygate/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository.go -package=mock_interfaces

// IPaymentRepository abstracts persistence of Payment records.
//
// Save is an idempotent upsert keyed by payment ID. GetByID returns the zero
// Payment (empty ID) when nothing is stored under the given identifier.

type IPaymentRepository interface {
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}
