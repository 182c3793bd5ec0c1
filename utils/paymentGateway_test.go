package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"payload":{"payment":{"entity":{"notes":{"courseId":"1","userId":"2"}}}}}`)
	secret := "webhook-secret"

	assert.True(t, VerifyWebhookSignature(body, sign(body, secret), secret))
}

func TestVerifyWebhookSignatureTampered(t *testing.T) {
	body := []byte(`{"payload":{"payment":{"entity":{"notes":{"courseId":"1","userId":"2"}}}}}`)
	secret := "webhook-secret"
	signature := sign(body, secret)

	tampered := []byte(`{"payload":{"payment":{"entity":{"notes":{"courseId":"1","userId":"3"}}}}}`)
	assert.False(t, VerifyWebhookSignature(tampered, signature, secret))
}

func TestVerifyWebhookSignatureWrongSecret(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	assert.False(t, VerifyWebhookSignature(body, sign(body, "other-secret"), "webhook-secret"))
}

func TestVerifyWebhookSignatureEmptyInputs(t *testing.T) {
	body := []byte(`{}`)

	assert.False(t, VerifyWebhookSignature(body, "", "secret"), "missing signature header must fail")
	assert.False(t, VerifyWebhookSignature(body, sign(body, ""), ""), "unconfigured secret must fail")
}
