package client

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentClient obtains a payment reference for online bookings. The core
// never settles payments; it only records the gateway order id.
type PaymentClient interface {
	CreateOrderReference(amount float64, currency, receipt string) (string, error)
}

type RazorpayClient struct {
	client *razorpay.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

// DisabledPaymentClient rejects online payments when no gateway is
// configured. Pay-at-venue bookings are unaffected.
type DisabledPaymentClient struct{}

func (DisabledPaymentClient) CreateOrderReference(float64, string, string) (string, error) {
	return "", fmt.Errorf("payment gateway not configured")
}

// CreateOrderReference creates a Razorpay order and returns its id. Amount
// is converted to the smallest currency unit as the gateway requires.
func (c *RazorpayClient) CreateOrderReference(amount float64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create payment order: %w", err)
	}

	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("payment gateway returned no order id")
	}

	return id, nil
}
