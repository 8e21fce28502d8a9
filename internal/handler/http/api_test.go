package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/models"
)

// vaultClient drives a real server over HTTP.
type vaultClient struct {
	t     *testing.T
	base  string
	token string
}

func newVaultServer(t *testing.T) *vaultClient {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{Backend: config.BackendMemory}, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, config.App{
		MasterPassword:   "open-sesame",
		LockoutThreshold: 3,
		MatchMode:        config.MatchModeStrict,
		TokenSignKey:     "sign-key",
		TokenIssuer:      "vault-test",
		SessionTTL:       time.Minute,
		Version:          "test",
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, 5*time.Second, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return &vaultClient{t: t, base: srv.URL}
}

func (c *vaultClient) call(method, path string, body any) (*http.Response, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = strings.NewReader(string(b))
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, raw
}

func (c *vaultClient) openSession() {
	c.t.Helper()
	resp, raw := c.call(http.MethodPost, "/api/session", nil)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode)
	c.token = decodeBody[models.SessionResponse](c.t, raw).Token
}

func TestAPI_StoreRetrieveLockoutScenario(t *testing.T) {
	c := newVaultServer(t)
	c.openSession()

	resp, raw := c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "note1", Text: "hello", Passkey: "pw1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stored := decodeBody[models.StoreResult](t, raw)
	require.Equal(t, "note1", stored.ID)
	require.NotEmpty(t, stored.Ciphertext)
	assert.NotContains(t, stored.Ciphertext, "hello")

	good := models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "pw1"}
	bad := models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "nope"}

	resp, raw = c.call(http.MethodPost, "/api/vault/retrieve", good)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", decodeBody[models.RetrieveResult](t, raw).Plaintext)

	for _, want := range []string{"2", "1", "0"} {
		resp, raw = c.call(http.MethodPost, "/api/vault/retrieve", bad)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, want, resp.Header.Get(attemptsRemainingHeader))
		assert.NotContains(t, string(raw), "hello")
	}

	// locked: even the right passkey is refused
	resp, _ = c.call(http.MethodPost, "/api/vault/retrieve", good)
	require.Equal(t, http.StatusLocked, resp.StatusCode)

	resp, raw = c.call(http.MethodGet, "/api/vault/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decodeBody[models.VaultStatus](t, raw)
	assert.False(t, status.Authorized)
	assert.Equal(t, 3, status.FailedAttempts)
	assert.Zero(t, status.AttemptsRemaining)

	resp, raw = c.call(http.MethodPost, "/api/vault/reauthorize", models.ReauthorizeRequest{MasterSecret: "guess"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, decodeBody[models.ReauthorizeResponse](t, raw).Authorized)

	resp, raw = c.call(http.MethodPost, "/api/vault/reauthorize", models.ReauthorizeRequest{MasterSecret: "open-sesame"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[models.ReauthorizeResponse](t, raw).Authorized)

	resp, raw = c.call(http.MethodPost, "/api/vault/retrieve", good)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", decodeBody[models.RetrieveResult](t, raw).Plaintext)
}

func TestAPI_DuplicatesValidationAndReset(t *testing.T) {
	c := newVaultServer(t)
	c.openSession()

	resp, raw := c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "a", Text: "first", Passkey: "k"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeBody[models.StoreResult](t, raw)

	resp, _ = c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "a", Text: "second", Passkey: "k"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "", Text: "x", Passkey: "k"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "b", Text: "x", Passkey: "k"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw = c.call(http.MethodGet, "/api/vault/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"a", "b"}, decodeBody[models.IDList](t, raw).IDs)

	resp, _ = c.call(http.MethodPost, "/api/vault/retrieve", models.RetrieveRequest{ID: "a", Ciphertext: first.Ciphertext, Passkey: "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = c.call(http.MethodPost, "/api/vault/attempts/reset", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = c.call(http.MethodGet, "/api/vault/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.VaultStatus{
		LockoutState:      models.LockoutState{FailedAttempts: 0, Authorized: true},
		Threshold:         3,
		AttemptsRemaining: 3,
		EntryCount:        2,
	}, decodeBody[models.VaultStatus](t, raw))

	// the original entry survived the duplicate
	resp, raw = c.call(http.MethodPost, "/api/vault/retrieve", models.RetrieveRequest{ID: "a", Ciphertext: first.Ciphertext, Passkey: "k"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "first", decodeBody[models.RetrieveResult](t, raw).Plaintext)
}

func TestAPI_SessionLifecycle(t *testing.T) {
	c := newVaultServer(t)

	resp, _ := c.call(http.MethodGet, "/api/vault/entries", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	c.openSession()
	resp, _ = c.call(http.MethodPost, "/api/vault/entries", models.StoreRequest{ID: "a", Text: "b", Passkey: "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	other := &vaultClient{t: t, base: c.base}
	other.openSession()
	resp, raw := other.call(http.MethodGet, "/api/vault/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[models.IDList](t, raw).IDs)

	resp, _ = c.call(http.MethodDelete, "/api/session", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = c.call(http.MethodGet, "/api/vault/entries", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CompressesJSON(t *testing.T) {
	api := newTestAPI(t)
	api.authorized()
	api.vault.EXPECT().ListIDs(gomock.Any()).Return([]string{"a"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vault/entries", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, decodeBody[models.IDList](t, raw).IDs)
}

func TestAPI_PlainWithoutAcceptEncoding(t *testing.T) {
	api := newTestAPI(t)
	api.authorized()
	api.vault.EXPECT().ListIDs(gomock.Any()).Return([]string{"a"}, nil)

	rec := api.do(http.MethodGet, "/api/vault/entries", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"ids":["a"]}`, rec.Body.String())
}
