package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureVerifier checks gateway-issued HMAC signatures.
// Secrets are held unexported and never rendered.
type SignatureVerifier struct {
	keySecret     []byte
	webhookSecret []byte
}

func NewSignatureVerifier(keySecret, webhookSecret string) *SignatureVerifier {
	return &SignatureVerifier{
		keySecret:     []byte(keySecret),
		webhookSecret: []byte(webhookSecret),
	}
}

// String keeps secrets out of %v formatting
func (v *SignatureVerifier) String() string {
	return "SignatureVerifier{secrets: redacted}"
}

// ComputeSignature returns lowercase hex HMAC-SHA256(secret, message)
func ComputeSignature(secret, message []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// PaymentSignature is the signature the gateway issues for an order/payment pair
func (v *SignatureVerifier) PaymentSignature(orderID, paymentID string) string {
	return ComputeSignature(v.keySecret, []byte(orderID+"|"+paymentID))
}

// VerifyPayment checks a client-submitted payment signature in constant time
func (v *SignatureVerifier) VerifyPayment(orderID, paymentID, signature string) bool {
	return verifyDigest(v.keySecret, []byte(orderID+"|"+paymentID), signature)
}

// VerifyWebhook checks the webhook signature header against the raw request body
func (v *SignatureVerifier) VerifyWebhook(body []byte, signature string) bool {
	if len(v.webhookSecret) == 0 {
		return false
	}
	return verifyDigest(v.webhookSecret, body, signature)
}

func verifyDigest(secret, message []byte, signature string) bool {
	given, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(given) != sha256.Size {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return hmac.Equal(mac.Sum(nil), given)
}
