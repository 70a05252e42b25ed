package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// OrderNotification is the payload posted to the ops webhook after a
// successful checkout.
type OrderNotification struct {
	OrderID   uint    `json:"orderId"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// NotifyOrderCreated posts an order summary to ORDER_WEBHOOK_URL. It is
// best-effort: callers log the error but never fail the checkout over it.
// A missing webhook URL disables notification entirely.
func NotifyOrderCreated(notification OrderNotification) error {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(notification).
		Post(webhookURL)

	if err != nil {
		return err
	}

	if resp.StatusCode() >= 300 {
		return fmt.Errorf("order webhook responded with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}
