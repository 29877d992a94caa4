package usecase

import (
	"fmt"
	"regexp"
	"time"

	"paygate/internal/domain/entities"
	"paygate/internal/domain/rules"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{14,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidationError names the first request field that failed validation.
// Field uses the external snake_case name.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// PaymentValidator applies the domain validation rules to a payment request
// before any bank call. Checks run in a fixed order and the first failure
// wins; the transport layer owns the accumulate-everything variant.

type PaymentValidator struct {
	currencies rules.SupportedCurrencies
	now        func() time.Time
}

// NewPaymentValidator wires the currency policy and the clock. A nil clock
// defaults to time.Now; tests inject a fixed instant for the expiry check.
func NewPaymentValidator(currencies rules.SupportedCurrencies, now func() time.Time) *PaymentValidator {
	if now == nil {
		now = time.Now
	}
	return &PaymentValidator{currencies: currencies, now: now}
}

func (v *PaymentValidator) Validate(req *entities.PaymentRequest) error {
	if req == nil {
		return &ValidationError{Field: "payment", Message: "request is required"}
	}
	if !cardNumberPattern.MatchString(req.CardNumber) {
		return &ValidationError{Field: "card_number", Message: "must be 14 to 19 digits"}
	}
	if !cvvPattern.MatchString(req.CVV) {
		return &ValidationError{Field: "cvv", Message: "must be 3 or 4 digits"}
	}
	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		return &ValidationError{Field: "expiry_month", Message: "must be between 1 and 12"}
	}
	if !expiryInFuture(req.ExpiryYear, req.ExpiryMonth, v.now()) {
		return &ValidationError{Field: "expiry_date", Message: "must be in the future"}
	}
	if len(req.Currency) != 3 || !v.currencies.IsSupported(req.Currency) {
		return &ValidationError{Field: "currency", Message: "is not supported"}
	}
	if req.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	return nil
}

// expiryInFuture reports whether (year, month) is strictly after the current
// (year, month) of now. A card expiring this month is already invalid.
func expiryInFuture(year, month int, now time.Time) bool {
	if year != now.Year() {
		return year > now.Year()
	}
	return month > int(now.Month())
}
