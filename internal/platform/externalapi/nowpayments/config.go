// Package nowpayments provides a client for the NOWPayments invoice API.
package nowpayments

import "time"

// DefaultBaseURL is the production endpoint of the NOWPayments API.
const DefaultBaseURL = "https://api.nowpayments.io/v1"

// Config holds configuration for the NOWPayments API client.
type Config struct {
	APIKey         string        // API key sent in the x-api-key header
	BaseURL        string        // Base URL for the API (e.g., "https://api.nowpayments.io/v1")
	IPNCallbackURL string        // URL the provider calls with payment status updates
	SuccessURL     string        // Page the customer lands on after paying
	CancelURL      string        // Page the customer lands on after cancelling
	Timeout        time.Duration // HTTP request timeout
}
