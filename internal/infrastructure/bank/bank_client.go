package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"paygate/internal/domain/entities"
	"paygate/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "http://localhost:8090"
	defaultTimeout = 5 * time.Second
)

type bankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int    `json:"amount"`
	CVV        string `json:"cvv"`
}

type bankPaymentResponse struct {
	Authorized        *bool  `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Client calls the acquiring bank's payments endpoint over HTTP and
// classifies every outcome into the two bank failure kinds or a decision.
//
// Classification:
//   - 2xx with a well-formed authorized flag: bank decision.
//   - 2xx with a missing or malformed body: ErrBankProtocol.
//   - 503: ErrBankUnavailable.
//   - any other non-2xx: ErrBankProtocol.
//   - transport failure, including the enforced timeout: ErrBankUnavailable.

type Client struct {
	httpClient  *http.Client
	paymentsURL string
}

var _ interfaces.IBankGateway = (*Client)(nil)

// NewClient builds the bank client. Empty baseURL and zero timeout fall back
// to the local simulator defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[bank][client] configured url=%s/payments timeout=%s", strings.TrimRight(baseURL, "/"), timeout)
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		paymentsURL: strings.TrimRight(baseURL, "/") + "/payments",
	}
}

func (c *Client) Authorize(ctx context.Context, req entities.PaymentRequest) (entities.BankAuthorization, error) {
	body, err := json.Marshal(toBankRequest(req))
	if err != nil {
		return entities.BankAuthorization{}, fmt.Errorf("%w: encoding request: %v", interfaces.ErrBankProtocol, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.paymentsURL, bytes.NewReader(body))
	if err != nil {
		return entities.BankAuthorization{}, fmt.Errorf("%w: building request: %v", interfaces.ErrBankProtocol, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[bank][client] transport failure err=%v", err)
		return entities.BankAuthorization{}, fmt.Errorf("%w: %v", interfaces.ErrBankUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		log.Printf("[bank][client] bank reported unavailable status=%d", resp.StatusCode)
		return entities.BankAuthorization{}, fmt.Errorf("%w: bank returned status %d", interfaces.ErrBankUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[bank][client] unexpected status status=%d", resp.StatusCode)
		return entities.BankAuthorization{}, fmt.Errorf("%w: bank returned status %d", interfaces.ErrBankProtocol, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.BankAuthorization{}, fmt.Errorf("%w: reading response: %v", interfaces.ErrBankUnavailable, err)
	}

	var decoded bankPaymentResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Printf("[bank][client] malformed response body err=%v", err)
		return entities.BankAuthorization{}, fmt.Errorf("%w: decoding response: %v", interfaces.ErrBankProtocol, err)
	}
	if decoded.Authorized == nil {
		log.Printf("[bank][client] response missing authorized flag")
		return entities.BankAuthorization{}, fmt.Errorf("%w: response missing authorized flag", interfaces.ErrBankProtocol)
	}

	log.Printf("[bank][client] decision authorized=%t", *decoded.Authorized)
	return entities.BankAuthorization{
		Authorized:        *decoded.Authorized,
		AuthorizationCode: decoded.AuthorizationCode,
	}, nil
}

func toBankRequest(req entities.PaymentRequest) bankPaymentRequest {
	return bankPaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%04d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   strings.ToUpper(req.Currency),
		Amount:     req.Amount,
		CVV:        req.CVV,
	}
}
