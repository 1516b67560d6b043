// Package api hosts the public ingest endpoint providers POST webhook
// notifications to.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/hookworks/hookd/pkg/gateway/delivery"
	"github.com/hookworks/hookd/pkg/gateway/ingest"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/hookworks/hookd/pkg/gateway/verifier"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/sirupsen/logrus"
)

// Inbound payloads larger than this are rejected before verification.
const maxRequestBody = 1 << 20

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	Verifier     verifier.Config             `yaml:"verifier"`
}

type API struct {
	ingestor ingest.Ingestor

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	scheduler, err := delivery.NewSchedulerWithConfig(
		delivery.Config{Database: cfg.Database},
		delivery.WithDeliveryStorage(storage),
		delivery.WithConfigStorage(storage),
	)
	if err != nil {
		return nil, err
	}

	ingestor := ingest.NewIngestor(
		storage,
		verifier.NewRegistryWithConfig(cfg.Verifier),
		ingest.WithEnqueuer(scheduler),
	)
	ingestor.RegisterHandler(model.ProviderPayPal, "PAYMENT.CAPTURE.*", ingest.NewPaymentHandler(nil))
	ingestor.RegisterHandler(model.ProviderStripe, "charge.*", ingest.NewPaymentHandler(nil))

	return NewAPIWithController(ingestor, cfg.LocalAddress)
}

func NewAPIWithController(ingestor ingest.Ingestor, localAddress string) (*API, error) {
	apiServer := &API{
		ingestor: ingestor,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", apiServer.health).Methods(http.MethodGet)
	r.HandleFunc("/webhooks/{provider}", apiServer.ingestWebhook).Methods(http.MethodPost)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (a *API) ingestWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := model.Provider(mux.Vars(r)["provider"])

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	result, err := a.ingestor.Ingest(ctx, time.Now().Unix(), provider, r.Header, body)
	if err != nil {
		status := model.ErrorToHttpStatus(err)
		if status == http.StatusInternalServerError {
			http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("ingestWebhook failed to encode/write response: %v", err)
	}
}
