package response

import (
	"paygate/internal/adapter/http/dto/request"
	"paygate/internal/domain/entities"
)

// PaymentResponse is the 200 body for processed and retrieved payments.
// Only the last four card digits ever leave the service.

type PaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"card_number_last_four"`
	ExpiryMonth        int    `json:"expiry_month"`
	ExpiryYear         int    `json:"expiry_year"`
	Currency           string `json:"currency"`
	Amount             int    `json:"amount"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		Status:             string(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}

// RejectedPaymentResponse is the 400 body for requests that fail validation.
// Status is always "Rejected"; Errors lists each offending field.

type RejectedPaymentResponse struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Errors  []request.FieldViolation `json:"errors"`
}

func NewRejected(message string, errs []request.FieldViolation) RejectedPaymentResponse {
	return RejectedPaymentResponse{
		Status:  string(entities.PaymentStatusRejected),
		Message: message,
		Errors:  errs,
	}
}
