package usecase

import (
	"strings"
	"testing"
	"time"

	"paygate/internal/domain/entities"
	"paygate/internal/domain/rules"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

func validRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		CardNumber:  "4242424242424242",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "USD",
		Amount:      100,
		CVV:         "123",
	}
}

func newTestValidator() *PaymentValidator {
	return NewPaymentValidator(rules.NewSupportedCurrencies(nil), fixedNow)
}

func TestPaymentValidator_Valid(t *testing.T) {
	v := newTestValidator()

	t.Run("typical request", func(t *testing.T) {
		req := validRequest()
		if err := v.Validate(&req); err != nil {
			t.Fatalf("expected valid request, got %v", err)
		}
	})

	t.Run("card number boundary lengths 14 and 19", func(t *testing.T) {
		for _, length := range []int{14, 19} {
			req := validRequest()
			req.CardNumber = strings.Repeat("4", length)
			if err := v.Validate(&req); err != nil {
				t.Fatalf("expected %d-digit card to be valid, got %v", length, err)
			}
		}
	})

	t.Run("four digit cvv", func(t *testing.T) {
		req := validRequest()
		req.CVV = "1234"
		if err := v.Validate(&req); err != nil {
			t.Fatalf("expected 4-digit cvv to be valid, got %v", err)
		}
	})

	t.Run("expiry next month", func(t *testing.T) {
		req := validRequest()
		req.ExpiryMonth = 9
		req.ExpiryYear = 2026
		if err := v.Validate(&req); err != nil {
			t.Fatalf("expected next month expiry to be valid, got %v", err)
		}
	})

	t.Run("lowercase supported currency", func(t *testing.T) {
		req := validRequest()
		req.Currency = "gbp"
		if err := v.Validate(&req); err != nil {
			t.Fatalf("expected lowercase currency to be valid, got %v", err)
		}
	})
}

func TestPaymentValidator_Invalid(t *testing.T) {
	v := newTestValidator()

	cases := []struct {
		name   string
		mutate func(*entities.PaymentRequest)
		field  string
	}{
		{"empty card number", func(r *entities.PaymentRequest) { r.CardNumber = "" }, "card_number"},
		{"card number too short", func(r *entities.PaymentRequest) { r.CardNumber = strings.Repeat("4", 13) }, "card_number"},
		{"card number too long", func(r *entities.PaymentRequest) { r.CardNumber = strings.Repeat("4", 20) }, "card_number"},
		{"card number with letters", func(r *entities.PaymentRequest) { r.CardNumber = "42424242424242ab" }, "card_number"},
		{"empty cvv", func(r *entities.PaymentRequest) { r.CVV = "" }, "cvv"},
		{"cvv too short", func(r *entities.PaymentRequest) { r.CVV = "12" }, "cvv"},
		{"cvv too long", func(r *entities.PaymentRequest) { r.CVV = "12345" }, "cvv"},
		{"cvv with letters", func(r *entities.PaymentRequest) { r.CVV = "12a" }, "cvv"},
		{"month zero", func(r *entities.PaymentRequest) { r.ExpiryMonth = 0 }, "expiry_month"},
		{"month thirteen", func(r *entities.PaymentRequest) { r.ExpiryMonth = 13 }, "expiry_month"},
		{"expiry in the past", func(r *entities.PaymentRequest) { r.ExpiryMonth = 1; r.ExpiryYear = 2025 }, "expiry_date"},
		{"expiry equals current month", func(r *entities.PaymentRequest) { r.ExpiryMonth = 8; r.ExpiryYear = 2026 }, "expiry_date"},
		{"empty currency", func(r *entities.PaymentRequest) { r.Currency = "" }, "currency"},
		{"currency not three letters", func(r *entities.PaymentRequest) { r.Currency = "USDX" }, "currency"},
		{"currency outside policy", func(r *entities.PaymentRequest) { r.Currency = "JPY" }, "currency"},
		{"amount zero", func(r *entities.PaymentRequest) { r.Amount = 0 }, "amount"},
		{"amount negative", func(r *entities.PaymentRequest) { r.Amount = -5 }, "amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			err := v.Validate(&req)
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q (%s)", tc.field, verr.Field, verr.Message)
			}
		})
	}

	t.Run("nil request", func(t *testing.T) {
		err := v.Validate(nil)
		verr, ok := err.(*ValidationError)
		if !ok || verr.Field != "payment" {
			t.Fatalf("expected payment field error, got %v", err)
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		req := validRequest()
		req.CardNumber = "123"
		req.CVV = "1"
		req.Amount = 0
		err := v.Validate(&req)
		verr, ok := err.(*ValidationError)
		if !ok || verr.Field != "card_number" {
			t.Fatalf("expected card_number to fail first, got %v", err)
		}
	})
}

func TestPaymentValidator_DefaultClock(t *testing.T) {
	v := NewPaymentValidator(rules.NewSupportedCurrencies(nil), nil)
	req := validRequest()
	req.ExpiryYear = time.Now().Year() + 2
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected request expiring in two years to be valid, got %v", err)
	}
}
