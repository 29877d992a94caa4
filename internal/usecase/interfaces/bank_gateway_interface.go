package interfaces

import (
	"context"
	"errors"

	"paygate/internal/domain/entities"
)

//go:generate mockgen -source=bank_gateway_interface.go -destination=mocks/mock_bank_gateway.go -package=mock_interfaces

// Bank failure kinds. Every failed Authorize call wraps exactly one of
// these; adapters must not let an unclassified transport error escape.
var (
	// ErrBankUnavailable covers transient failures: connection errors,
	// timeouts and an explicit unavailability signal from the bank.
	ErrBankUnavailable = errors.New("bank unavailable")
	// ErrBankProtocol covers unexpected bank behavior: malformed response
	// bodies and bank-reported client errors.
	ErrBankProtocol = errors.New("unexpected response from bank")
)

// IBankGateway abstracts the remote acquiring bank.
//
// Authorize performs a single synchronous authorization attempt. A nil error
// means the bank made a business decision, carried in the returned
// BankAuthorization; retries are the caller's concern, not the gateway's.

type IBankGateway interface {
	Authorize(ctx context.Context, req entities.PaymentRequest) (entities.BankAuthorization, error)
}
