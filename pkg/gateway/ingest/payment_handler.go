package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/sirupsen/logrus"
)

// PaymentCapture is the normalized form of a successful payment notification.
type PaymentCapture struct {
	Provider  model.Provider `json:"provider"`
	CaptureID string         `json:"capture_id"`
	Amount    model.Money    `json:"amount"`
}

// CaptureSink receives normalized payment captures. The zero value logs them.
type CaptureSink interface {
	RecordCapture(ctx context.Context, capture PaymentCapture) error
}

type logCaptureSink struct{}

func (logCaptureSink) RecordCapture(_ context.Context, capture PaymentCapture) error {
	logrus.Infof("payment capture %s from %s: %s %s", capture.CaptureID, capture.Provider, capture.Amount.Value.String(), capture.Amount.Currency)
	return nil
}

// PaymentHandler normalizes payment capture events from the supported
// providers and forwards them to a sink. Non-positive amounts are rejected.
type PaymentHandler struct {
	sink CaptureSink
}

func NewPaymentHandler(sink CaptureSink) *PaymentHandler {
	if sink == nil {
		sink = logCaptureSink{}
	}
	return &PaymentHandler{sink: sink}
}

func (h *PaymentHandler) Handle(ctx context.Context, event model.WebhookEvent) error {
	capture, err := parseCapture(event)
	if err != nil {
		return err
	}
	if !capture.Amount.Value.IsPositive() {
		return fmt.Errorf("capture %s has non-positive amount %s", capture.CaptureID, capture.Amount.Value.String())
	}
	return h.sink.RecordCapture(ctx, capture)
}

// Currencies Stripe quotes without a fractional part.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {},
	"vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func minorUnitExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return 0
	}
	return 2
}

func parseCapture(event model.WebhookEvent) (PaymentCapture, error) {
	switch event.Provider {
	case model.ProviderPayPal:
		payload := struct {
			Resource struct {
				ID     string `json:"id"`
				Amount struct {
					Value        string `json:"value"`
					CurrencyCode string `json:"currency_code"`
				} `json:"amount"`
			} `json:"resource"`
		}{}
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return PaymentCapture{}, fmt.Errorf("parse capture payload: %w", err)
		}
		value, err := model.NewDecimalFromString(payload.Resource.Amount.Value)
		if err != nil {
			return PaymentCapture{}, fmt.Errorf("parse capture amount: %w", err)
		}
		return PaymentCapture{
			Provider:  event.Provider,
			CaptureID: payload.Resource.ID,
			Amount:    model.Money{Value: value, Currency: payload.Resource.Amount.CurrencyCode},
		}, nil
	case model.ProviderStripe:
		payload := struct {
			Data struct {
				Object struct {
					ID       string `json:"id"`
					Amount   int64  `json:"amount"`
					Currency string `json:"currency"`
				} `json:"object"`
			} `json:"data"`
		}{}
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return PaymentCapture{}, fmt.Errorf("parse capture payload: %w", err)
		}
		// Stripe amounts arrive in the currency's minor unit.
		value := model.NewDecimalFromMinorUnits(payload.Data.Object.Amount, minorUnitExponent(payload.Data.Object.Currency))
		return PaymentCapture{
			Provider:  event.Provider,
			CaptureID: payload.Data.Object.ID,
			Amount:    model.Money{Value: value, Currency: payload.Data.Object.Currency},
		}, nil
	default:
		return PaymentCapture{}, fmt.Errorf("no capture mapping for provider %s", event.Provider)
	}
}
