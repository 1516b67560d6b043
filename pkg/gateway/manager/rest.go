// Package manager hosts the management API: webhook config CRUD, event and
// delivery inspection, replay and redrive, tenant provisioning and a live
// event stream.
package manager

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/hookworks/hookd/pkg/gateway/auth"
	"github.com/hookworks/hookd/pkg/gateway/delivery"
	"github.com/hookworks/hookd/pkg/gateway/ingest"
	"github.com/hookworks/hookd/pkg/gateway/middleware"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/hookworks/hookd/pkg/gateway/replay"
	"github.com/hookworks/hookd/pkg/gateway/storage"
	"github.com/hookworks/hookd/pkg/gateway/storage/postgres"
	"github.com/hookworks/hookd/pkg/gateway/subscription"
	"github.com/hookworks/hookd/pkg/gateway/verifier"
	"github.com/hookworks/hookd/pkg/util"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 20

type ManagerConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	AdminSecret  string                      `yaml:"admin_secret"`
	Verifier     verifier.Config             `yaml:"verifier"`
}

type Manager struct {
	authenticator auth.APIKeyAuthenticator
	tenantMgr     auth.TenantManager
	configCtrl    subscription.ConfigController
	replaySvc     replay.Service
	hub           *EventHub

	httpServer *http.Server
}

func NewManagerWithConfig(cfg ManagerConfig) (*Manager, error) {
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

	hub := NewEventHub()
	ingestor := ingest.NewIngestor(
		storage,
		verifier.NewRegistryWithConfig(cfg.Verifier),
		ingest.WithEnqueuer(scheduler),
		ingest.WithNotifier(hub),
	)
	ingestor.RegisterHandler(model.ProviderPayPal, "PAYMENT.CAPTURE.*", ingest.NewPaymentHandler(nil))
	ingestor.RegisterHandler(model.ProviderStripe, "charge.*", ingest.NewPaymentHandler(nil))

	return NewManagerWithController(
		auth.NewAPIKeyAuthenticator(storage),
		auth.NewAdminTokenVerifier([]byte(cfg.AdminSecret)),
		auth.NewTenantManager(storage),
		subscription.NewConfigController(storage, storage),
		replay.NewService(storage, storage, ingestor),
		hub,
		cfg.LocalAddress,
	)
}

func NewManagerWithController(
	authenticator auth.APIKeyAuthenticator,
	adminVerifier *auth.AdminTokenVerifier,
	tenantMgr auth.TenantManager,
	configCtrl subscription.ConfigController,
	replaySvc replay.Service,
	hub *EventHub,
	localAddress string,
) (*Manager, error) {
	mgr := &Manager{
		authenticator: authenticator,
		tenantMgr:     tenantMgr,
		configCtrl:    configCtrl,
		replaySvc:     replaySvc,
		hub:           hub,
	}

	r := mux.NewRouter()
	r.Use(middleware.TimeTrace)

	adminAuth := middleware.NewAdminTokenAuth(adminVerifier).Authenticate
	apiKeyAuth := middleware.NewAPIKeyAuth(mgr.authenticator).Authenticate

	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(adminAuth)
	adminRouter.HandleFunc("/tenants", mgr.createTenant).Methods(http.MethodPost)
	adminRouter.HandleFunc("/tenants/{id}", mgr.getTenant).Methods(http.MethodGet)
	adminRouter.HandleFunc("/tenants/{id}/api_keys", mgr.createAPIKey).Methods(http.MethodPost)
	adminRouter.HandleFunc("/tenants/{id}/api_keys/{key_id}", mgr.revokeAPIKey).Methods(http.MethodDelete)

	// Events have no owning tenant: one inbound event may fan out to every
	// subscribed tenant. Event inspection, replay and the live stream are
	// operator surfaces, so they sit behind the admin token. These
	// subrouters register before the general /webhooks one and win its
	// prefix.
	eventRouter := r.PathPrefix("/webhooks/events").Subrouter()
	eventRouter.Use(adminAuth)
	eventRouter.HandleFunc("", mgr.listEvent).Methods(http.MethodGet)
	eventRouter.HandleFunc("/{id}", mgr.getEvent).Methods(http.MethodGet)
	eventRouter.HandleFunc("/{id}/replay", mgr.replayEvent).Methods(http.MethodPost)

	streamRouter := r.PathPrefix("/webhooks/stream").Subrouter()
	streamRouter.Use(adminAuth)
	streamRouter.Handle("", mgr.hub).Methods(http.MethodGet)

	webhookRouter := r.PathPrefix("/webhooks").Subrouter()
	webhookRouter.Use(apiKeyAuth)
	webhookRouter.HandleFunc("/configs", requireScope(auth.APIKeyScopeWrite, mgr.createConfig)).Methods(http.MethodPost)
	webhookRouter.HandleFunc("/configs", requireScope(auth.APIKeyScopeRead, mgr.listConfig)).Methods(http.MethodGet)
	webhookRouter.HandleFunc("/configs/{id}", requireScope(auth.APIKeyScopeRead, mgr.getConfig)).Methods(http.MethodGet)
	webhookRouter.HandleFunc("/configs/{id}", requireScope(auth.APIKeyScopeWrite, mgr.updateConfig)).Methods(http.MethodPut)
	webhookRouter.HandleFunc("/configs/{id}", requireScope(auth.APIKeyScopeWrite, mgr.deleteConfig)).Methods(http.MethodDelete)
	webhookRouter.HandleFunc("/configs/{id}/rotate_secret", requireScope(auth.APIKeyScopeWrite, mgr.rotateConfigSecret)).Methods(http.MethodPost)
	webhookRouter.HandleFunc("/deliveries", requireScope(auth.APIKeyScopeRead, mgr.listDelivery)).Methods(http.MethodGet)
	webhookRouter.HandleFunc("/deliveries/{id}", requireScope(auth.APIKeyScopeRead, mgr.getDelivery)).Methods(http.MethodGet)
	webhookRouter.HandleFunc("/deliveries/{id}/redrive", requireScope(auth.APIKeyScopeWrite, mgr.redriveDelivery)).Methods(http.MethodPost)

	mgr.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return mgr, nil
}

func (m *Manager) Run() error {
	err := m.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (m *Manager) Close(ctx context.Context) error {
	m.httpServer.SetKeepAlivesEnabled(false)
	return m.httpServer.Shutdown(ctx)
}

// requireScope gates a handler on the scopes of the authenticated API key.
func requireScope(scope auth.APIKeyScope, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scopes, _ := r.Context().Value(middleware.API_KEY_SCOPES).([]string)
		if !auth.HasScope(scopes, scope) {
			http.Error(w, fmt.Sprintf("api key lacks scope %s", scope), http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func renderError(w http.ResponseWriter, err error) {
	status := model.ErrorToHttpStatus(err)
	if status == http.StatusInternalServerError {
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func renderJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func parsePagination(r *http.Request) (offset, limit int, err error) {
	limit = defaultListLimit
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, parseErr := strconv.ParseInt(offsetStr, 10, 32)
		if parseErr != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("offset is invalid%w", model.ErrInvalidParameter)
		}
		offset = int(parsed)
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, parseErr := strconv.ParseInt(limitStr, 10, 32)
		if parseErr != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("limit is invalid%w", model.ErrInvalidParameter)
		}
		limit = int(parsed)
	}
	return offset, limit, nil
}

func (m *Manager) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject, _ := ctx.Value(middleware.ADMIN_SUBJECT).(string)

	var req auth.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = subject

	result, err := m.tenantMgr.CreateTenant(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusCreated, result)
}

func (m *Manager) getTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := mux.Vars(r)["id"]

	result, err := m.tenantMgr.GetTenant(ctx, tenantID)
	if errors.Is(err, auth.ErrTenantNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

type createAPIKeyResponse struct {
	APIKey       storage.APIKeyRecord `json:"api_key"`
	APIKeyString auth.APIKeyString    `json:"api_key_string"`
}

func (m *Manager) createAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject, _ := ctx.Value(middleware.ADMIN_SUBJECT).(string)

	var req auth.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = subject
	req.TenantID = mux.Vars(r)["id"]

	record, keyString, err := m.tenantMgr.CreateAPIKey(ctx, time.Now().Unix(), req)
	if errors.Is(err, auth.ErrTenantNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusCreated, createAPIKeyResponse{APIKey: record, APIKeyString: keyString})
}

func (m *Manager) revokeAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subject, _ := ctx.Value(middleware.ADMIN_SUBJECT).(string)

	req := auth.RevokeAPIKeyRequest{
		Requester: subject,
		TenantID:  mux.Vars(r)["id"],
		ID:        mux.Vars(r)["key_id"],
	}

	err := m.tenantMgr.RevokeAPIKey(ctx, time.Now().Unix(), req)
	if errors.Is(err, auth.ErrAPIKeyNotFound) || errors.Is(err, auth.ErrTenantNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (m *Manager) createConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)
	apiKeyID, _ := ctx.Value(middleware.API_KEY_ID).(string)

	var req subscription.CreateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = apiKeyID
	req.TenantID = tenantID

	result, err := m.configCtrl.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusCreated, result)
}

func (m *Manager) listConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)

	offset, limit, err := parsePagination(r)
	if err != nil {
		renderError(w, err)
		return
	}

	result, err := m.configCtrl.List(ctx, subscription.ListConfigRequest{
		Offset:   offset,
		Limit:    limit,
		TenantID: tenantID,
	})
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)

	result, err := m.configCtrl.Get(ctx, tenantID, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) updateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)
	apiKeyID, _ := ctx.Value(middleware.API_KEY_ID).(string)

	var req subscription.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ID = mux.Vars(r)["id"]
	req.Requester = apiKeyID
	req.TenantID = tenantID

	result, err := m.configCtrl.Update(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) deleteConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)
	apiKeyID, _ := ctx.Value(middleware.API_KEY_ID).(string)

	req := subscription.DeleteConfigRequest{
		ID:        mux.Vars(r)["id"],
		Requester: apiKeyID,
		TenantID:  tenantID,
	}

	if err := m.configCtrl.Delete(ctx, time.Now().Unix(), req); err != nil {
		renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (m *Manager) rotateConfigSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)
	apiKeyID, _ := ctx.Value(middleware.API_KEY_ID).(string)

	req := subscription.RotateSecretRequest{
		ID:        mux.Vars(r)["id"],
		Requester: apiKeyID,
		TenantID:  tenantID,
	}

	result, err := m.configCtrl.RotateSecret(ctx, time.Now().Unix(), req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) listEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r)
	if err != nil {
		renderError(w, err)
		return
	}

	req := storage.ListEventRequest{
		Offset:   offset,
		Limit:    limit,
		Provider: r.URL.Query().Get("provider"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []string{status}
	}

	result, err := m.replaySvc.ListEvents(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) getEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := m.replaySvc.GetEvent(ctx, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) replayEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := m.replaySvc.ReplayEvent(ctx, time.Now().Unix(), mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) listDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)

	offset, limit, err := parsePagination(r)
	if err != nil {
		renderError(w, err)
		return
	}

	req := storage.ListDeliveryRequest{
		Offset:   offset,
		Limit:    limit,
		TenantID: tenantID,
		ConfigID: r.URL.Query().Get("config_id"),
		EventID:  r.URL.Query().Get("event_id"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Statuses = []string{status}
	}
	if deadLettered := r.URL.Query().Get("dead_lettered"); deadLettered != "" {
		parsed, parseErr := strconv.ParseBool(deadLettered)
		if parseErr != nil {
			renderError(w, fmt.Errorf("dead_lettered is invalid%w", model.ErrInvalidParameter))
			return
		}
		req.DeadLettered = &parsed
	}

	result, err := m.replaySvc.ListDeliveries(ctx, req)
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) getDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)

	result, err := m.replaySvc.GetDelivery(ctx, tenantID, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}

func (m *Manager) redriveDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := ctx.Value(middleware.TENANT_ID).(string)

	result, err := m.replaySvc.RedriveDelivery(ctx, time.Now().Unix(), tenantID, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}
