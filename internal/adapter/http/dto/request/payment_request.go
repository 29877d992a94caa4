package request

import (
	"regexp"
	"time"

	"paygate/internal/domain/entities"
	"paygate/internal/domain/rules"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{14,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	currencyPattern   = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

// CreatePaymentRequest is the POST /payments payload.

type CreatePaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int    `json:"amount"`
	CVV         string `json:"cvv"`
}

// FieldViolation names one invalid field for the Rejected response body.

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations collects every structural violation at once so the 400 body can
// list all of them; the domain validator inside the workflow re-checks and
// short-circuits. The expiry-in-future check only fires once the month is in
// range, matching the structural validator of the original contract.
func (r CreatePaymentRequest) Violations(now time.Time, currencies rules.SupportedCurrencies) []FieldViolation {
	var violations []FieldViolation

	if !cardNumberPattern.MatchString(r.CardNumber) {
		violations = append(violations, FieldViolation{Field: "card_number", Message: "must be 14 to 19 digits"})
	}
	if !cvvPattern.MatchString(r.CVV) {
		violations = append(violations, FieldViolation{Field: "cvv", Message: "must be 3 or 4 digits"})
	}
	switch {
	case r.ExpiryMonth < 1 || r.ExpiryMonth > 12:
		violations = append(violations, FieldViolation{Field: "expiry_month", Message: "must be between 1 and 12"})
	case r.ExpiryYear < now.Year() || (r.ExpiryYear == now.Year() && r.ExpiryMonth <= int(now.Month())):
		violations = append(violations, FieldViolation{Field: "expiry_date", Message: "must be in the future"})
	}
	if !currencyPattern.MatchString(r.Currency) || !currencies.IsSupported(r.Currency) {
		violations = append(violations, FieldViolation{Field: "currency", Message: "is not supported"})
	}
	if r.Amount <= 0 {
		violations = append(violations, FieldViolation{Field: "amount", Message: "must be greater than zero"})
	}
	return violations
}

// ToDomain maps the payload onto the workflow's request type.
func (r CreatePaymentRequest) ToDomain() entities.PaymentRequest {
	return entities.PaymentRequest{
		CardNumber:  r.CardNumber,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		Currency:    r.Currency,
		Amount:      r.Amount,
		CVV:         r.CVV,
	}
}
