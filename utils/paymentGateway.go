package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
	"uplearn/config"

	"github.com/go-resty/resty/v2"
)

// RazorpayOrder is the order object returned by the payment gateway
type RazorpayOrder struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"` // minor units (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes"`
}

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateRazorpayOrder creates a payment order with the gateway. Amount is in
// minor units. Notes are round-tripped by the gateway and presented back in
// the webhook; they are untrusted input until the webhook signature verifies.
func CreateRazorpayOrder(amountMinorUnits int64, currency, receipt string, notes map[string]string) (*RazorpayOrder, error) {
	client := resty.New().
		SetBaseURL(config.AppConfig.RazorpayApiURL).
		SetTimeout(10 * time.Second).
		SetBasicAuth(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)

	var order RazorpayOrder
	var apiErr razorpayErrorResponse

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(razorpayOrderRequest{
			Amount:   amountMinorUnits,
			Currency: currency,
			Receipt:  receipt,
			Notes:    notes,
		}).
		SetResult(&order).
		SetError(&apiErr).
		Post("orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %v", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode(), apiErr.Error.Description)
	}

	return &order, nil
}

// VerifyWebhookSignature recomputes the HMAC-SHA256 of the raw webhook body
// and compares it against the signature header in constant time.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
