package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("")  // Base error for invalid parameter
var ErrVerification = errors.New("")      // Base error for inbound signature verification
var ErrWebhookEventError = errors.New("") // Base error for WebhookEvent
var ErrWebhookConfigError = errors.New("") // Base error for WebhookConfig
var ErrDeliveryError = errors.New("")     // Base error for WebhookDelivery

// Verification errors. All of them reject the request before anything is persisted.
var ErrMissingHeader = fmt.Errorf("missing required header%w", ErrVerification)
var ErrUntrustedCertURL = fmt.Errorf("certificate URL is not trusted%w", ErrVerification)
var ErrDisallowedAlgorithm = fmt.Errorf("signature algorithm is not allowed%w", ErrVerification)
var ErrSignatureMismatch = fmt.Errorf("signature mismatch%w", ErrVerification)
var ErrTimestampOutOfTolerance = fmt.Errorf("timestamp outside tolerance window%w", ErrVerification)
var ErrUnknownProvider = fmt.Errorf("unknown provider%w", ErrVerification)
var ErrCertUnavailable = fmt.Errorf("certificate cannot be fetched%w", ErrVerification)

// WebhookEvent errors
var ErrEventNotFound = fmt.Errorf("webhook event not found%w", ErrWebhookEventError)

// WebhookConfig errors
var ErrConfigNotFound = fmt.Errorf("webhook config not found%w", ErrWebhookConfigError)

// WebhookDelivery errors
var ErrDeliveryNotFound = fmt.Errorf("webhook delivery not found%w", ErrDeliveryError)
var ErrDeliveryNotTerminal = fmt.Errorf("webhook delivery is not in a terminal state%w", ErrDeliveryError)
var ErrEndpointUnreachable = fmt.Errorf("endpoint unreachable%w", ErrDeliveryError)

func ErrorToHttpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter), errors.Is(err, ErrVerification):
		return http.StatusBadRequest
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrConfigNotFound), errors.Is(err, ErrDeliveryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDeliveryNotTerminal):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
