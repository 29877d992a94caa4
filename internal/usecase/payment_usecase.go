package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"paygate/internal/domain/entities"
	"paygate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks paygate/internal/usecase IPaymentUseCase

// IPaymentUseCase is the payment authorization workflow.
//
// Process runs one authorization attempt end to end: validate, ask the bank,
// derive the final status, persist, return the record. GetByID returns a
// previously recorded payment.

type IPaymentUseCase interface {
	Process(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	bank      interfaces.IBankGateway
	validator *PaymentValidator
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, bank interfaces.IBankGateway, validator *PaymentValidator) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bank: bank, validator: validator}
}

// Process performs a single authorization attempt. Requests that fail
// validation never reach the bank and are never persisted; bank failures
// abort before persistence. Only a bank decision (approved or declined)
// produces a stored Payment.
func (u *PaymentUseCase) Process(ctx context.Context, req entities.PaymentRequest) (entities.Payment, error) {
	if err := u.validator.Validate(&req); err != nil {
		log.Printf("[payment][usecase] request rejected field=%s", validationField(err))
		return entities.Payment{}, err
	}

	auth, err := u.bank.Authorize(ctx, req)
	if err != nil {
		return entities.Payment{}, classifyBankError(err)
	}

	status := entities.PaymentStatusDeclined
	if auth.Authorized {
		status = entities.PaymentStatusAuthorized
	}

	payment := entities.Payment{
		ID:                 uuid.NewString(),
		Status:             status,
		CardNumberLastFour: req.LastFour(),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           strings.ToUpper(req.Currency),
		Amount:             req.Amount,
	}

	saved, err := u.repo.Save(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] save failed payment_id=%s err=%v", payment.ID, err)
		return entities.Payment{}, fmt.Errorf("saving payment %s: %w", payment.ID, err)
	}
	log.Printf("[payment][usecase] processed payment_id=%s status=%s amount=%d currency=%s last4=%s",
		saved.ID, saved.Status, saved.Amount, saved.Currency, saved.CardNumberLastFour)
	return saved, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("loading payment %s: %w", id, err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// classifyBankError guarantees that only the two bank failure kinds leave the
// workflow. A gateway error that is neither kind is treated as a protocol
// violation rather than passed through unclassified.
func classifyBankError(err error) error {
	if errors.Is(err, interfaces.ErrBankUnavailable) {
		log.Printf("[payment][usecase] bank unavailable err=%v", err)
		return err
	}
	if errors.Is(err, interfaces.ErrBankProtocol) {
		log.Printf("[payment][usecase] bank protocol error err=%v", err)
		return err
	}
	log.Printf("[payment][usecase] unclassified bank error err=%v", err)
	return fmt.Errorf("%w: %v", interfaces.ErrBankProtocol, err)
}

func validationField(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	return "payment"
}
