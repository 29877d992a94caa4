package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"paygate/internal/domain/entities"
)

func TestPaymentMemoryRepository_SaveAndGet(t *testing.T) {
	repo := NewPaymentMemoryRepository()
	ctx := context.Background()

	p := entities.Payment{
		ID:                 "pay-1",
		Status:             entities.PaymentStatusAuthorized,
		CardNumberLastFour: "4242",
		ExpiryMonth:        4,
		ExpiryYear:         2027,
		Currency:           "USD",
		Amount:             100,
	}

	saved, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != p {
		t.Fatalf("expected saved payment to equal input, got %+v", saved)
	}

	t.Run("round trip returns identical record", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != p {
			t.Fatalf("expected %+v, got %+v", p, got)
		}
	})

	t.Run("repeated lookups are identical", func(t *testing.T) {
		first, _ := repo.GetByID(ctx, "pay-1")
		second, _ := repo.GetByID(ctx, "pay-1")
		if first != second {
			t.Fatalf("lookups differ: %+v vs %+v", first, second)
		}
	})

	t.Run("unknown id returns zero payment", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "never-used")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero payment, got %+v", got)
		}
	})

	t.Run("save is an upsert", func(t *testing.T) {
		updated := p
		updated.Status = entities.PaymentStatusDeclined
		if _, err := repo.Save(ctx, updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "pay-1")
		if got.Status != entities.PaymentStatusDeclined {
			t.Fatalf("expected last write to win, got %+v", got)
		}
	})
}

func TestPaymentMemoryRepository_Concurrent(t *testing.T) {
	repo := NewPaymentMemoryRepository()
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("pay-%d", i)
			if _, err := repo.Save(ctx, entities.Payment{ID: id, Status: entities.PaymentStatusAuthorized, Amount: i}); err != nil {
				t.Errorf("save %s: %v", id, err)
			}
			if _, err := repo.GetByID(ctx, id); err != nil {
				t.Errorf("get %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		id := fmt.Sprintf("pay-%d", i)
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if got.ID != id || got.Amount != i {
			t.Fatalf("expected %s with amount %d, got %+v", id, i, got)
		}
	}
}
