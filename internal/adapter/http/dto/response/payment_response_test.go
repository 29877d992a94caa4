package response

import (
	"testing"

	"paygate/internal/adapter/http/dto/request"
	"paygate/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	p := entities.Payment{
		ID:                 "pay-1",
		Status:             entities.PaymentStatusAuthorized,
		CardNumberLastFour: "4242",
		ExpiryMonth:        4,
		ExpiryYear:         2027,
		Currency:           "USD",
		Amount:             100,
	}

	got := FromPayment(p)
	if got.ID != p.ID || got.Status != "Authorized" || got.CardNumberLastFour != "4242" ||
		got.ExpiryMonth != 4 || got.ExpiryYear != 2027 || got.Currency != "USD" || got.Amount != 100 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestNewRejected(t *testing.T) {
	errs := []request.FieldViolation{{Field: "card_number", Message: "must be 14 to 19 digits"}}
	got := NewRejected("Validation failed", errs)
	if got.Status != "Rejected" {
		t.Fatalf("expected Rejected status, got %s", got.Status)
	}
	if got.Message != "Validation failed" || len(got.Errors) != 1 || got.Errors[0].Field != "card_number" {
		t.Fatalf("unexpected rejection body: %+v", got)
	}
}
