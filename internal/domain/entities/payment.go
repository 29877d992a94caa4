package entities

// PaymentStatus is the final outcome of a payment authorization attempt.
//
// Rejected never reaches the store: it is the caller-facing status for
// requests that fail validation before any bank call happens.

type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "Authorized"
	PaymentStatusDeclined   PaymentStatus = "Declined"
	PaymentStatusRejected   PaymentStatus = "Rejected"
)

// PaymentRequest is the caller-supplied card payment to authorize.
//
// The full card number and CVV live only for the duration of one Process
// call; the persisted Payment keeps the last four digits at most.

type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int
	CVV         string
}

// LastFour returns the final four characters of the card number.
// Callers must only use it on a card number that passed validation.
func (r PaymentRequest) LastFour() string {
	return r.CardNumber[len(r.CardNumber)-4:]
}

// Payment is the record persisted for every authorization the bank decided
// on, approved or declined. Immutable after creation.

type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int           `json:"amount"`
}

// BankAuthorization is the bank's business decision for a single attempt.
// The authorization code is kept for diagnostics; it is absent on declines.

type BankAuthorization struct {
	Authorized        bool
	AuthorizationCode string
}
