package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "paygate/internal/adapter/http/dto/request"
	response "paygate/internal/adapter/http/dto/response"
	"paygate/internal/domain/rules"
	"paygate/internal/usecase"
	"paygate/internal/usecase/interfaces"
	"paygate/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles HTTP requests for payment authorization.
//
// This is the single place where workflow failures are mapped onto the
// transport contract: Rejected -> 400, not found -> 404, bank unavailable ->
// 503, bank protocol error -> 502, anything else -> 500.

type PaymentHandler struct {
	usecase    usecase.IPaymentUseCase
	currencies rules.SupportedCurrencies
	now        func() time.Time
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, currencies rules.SupportedCurrencies, now func() time.Time) *PaymentHandler {
	if now == nil {
		now = time.Now
	}
	return &PaymentHandler{usecase: uc, currencies: currencies, now: now}
}

// ProcessPayment authorizes a card payment and returns the recorded outcome.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] malformed request err=%v", err)
		c.JSON(http.StatusBadRequest, response.NewRejected("Malformed request",
			[]request.FieldViolation{{Field: "body", Message: "Malformed JSON"}}))
		return
	}

	if violations := payload.Violations(h.now(), h.currencies); len(violations) > 0 {
		log.Printf("[payment][handler] request rejected violations=%d", len(violations))
		c.JSON(http.StatusBadRequest, response.NewRejected("Validation failed", violations))
		return
	}

	payment, err := h.usecase.Process(c.Request.Context(), payload.ToDomain())
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, response.NewRejected("Validation failed",
				[]request.FieldViolation{{Field: verr.Field, Message: verr.Message}}))
			return
		}
		log.Printf("[payment][handler] process failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] processed payment_id=%s status=%s", payment.ID, payment.Status)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GetPaymentByID returns a previously recorded payment.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		log.Printf("[payment][handler] invalid payment id id=%q", id)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrBankUnavailable):
		return pkg.NewDomainError("BANK_UNAVAILABLE", "Bank unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrBankProtocol):
		return pkg.NewDomainError("BANK_ERROR", "Bank error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
