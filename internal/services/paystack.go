package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var paystackHTTPClient = &http.Client{Timeout: 15 * time.Second}

const defaultPaystackVerifyURL = "https://api.paystack.co/transaction/verify/"

// PaystackService verifies transaction references against the Paystack API.
// Without a valid secret key it runs in a permissive dev fallback that
// accepts any non-empty reference; that mode is logged loudly because it
// must never reach a production deployment unnoticed.
type PaystackService struct {
	secretKey string
	verifyURL string
}

// NewPaystackService builds the verifier. A secret is considered usable only
// when it carries Paystack's `sk_` prefix.
func NewPaystackService(secretKey string) *PaystackService {
	s := &PaystackService{secretKey: secretKey, verifyURL: defaultPaystackVerifyURL}
	if !s.Configured() {
		log.Println("[Paystack] No valid secret key configured: payment verification runs in DEV FALLBACK mode and will accept any reference")
	}
	return s
}

// Configured reports whether real upstream verification is active.
func (s *PaystackService) Configured() bool {
	return strings.HasPrefix(s.secretKey, "sk_")
}

// VerificationData is the transaction detail subset surfaced to clients.
type VerificationData struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	TransactionDate string `json:"transaction_date"`
	Status          string `json:"status"`
	Reference       string `json:"reference"`
}

type paystackVerifyResponse struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    *VerificationData `json:"data"`
}

// Verify checks a transaction reference with Paystack. It reports success
// only when the upstream call succeeds and the transaction status is
// "success"; in dev fallback mode every non-empty reference verifies.
func (s *PaystackService) Verify(reference string) (*VerificationData, error) {
	if reference == "" {
		return nil, fmt.Errorf("missing reference")
	}

	if !s.Configured() {
		log.Printf("[Paystack] DEV FALLBACK: accepting reference %q without upstream verification", reference)
		return &VerificationData{
			Amount:          0,
			Currency:        "NGN",
			TransactionDate: time.Now().UTC().Format(time.RFC3339),
			Status:          "success",
			Reference:       reference,
		}, nil
	}

	req, err := http.NewRequest(http.MethodGet, s.verifyURL+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := paystackHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paystack response read failed: %w", err)
	}

	var parsed paystackVerifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("paystack response parse failed: %w", err)
	}

	if !parsed.Status || parsed.Data == nil || parsed.Data.Status != "success" {
		return nil, fmt.Errorf("payment verification failed")
	}

	return parsed.Data, nil
}
