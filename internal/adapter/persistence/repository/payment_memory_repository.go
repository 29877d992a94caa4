package repository

import (
	"context"
	"sync"

	"paygate/internal/domain/entities"
	"paygate/internal/usecase/interfaces"
)

// PaymentMemoryRepository keeps payments in a process-local map.
//
// This is the default store: records live for the process lifetime only.
// Safe for concurrent readers and writers; last writer wins per ID.

type PaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{payments: make(map[string]entities.Payment)}
}

func (r *PaymentMemoryRepository) Save(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return p, nil
}

func (r *PaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}
