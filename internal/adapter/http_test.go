package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	handlerhttp "github.com/MKhiriev/go-secure-vault/internal/handler/http"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
	"github.com/MKhiriev/go-secure-vault/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpVaultAdapter {
	t.Helper()

	a, err := NewHTTPVaultAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpVaultAdapter)
}

// newRealServer runs the vault HTTP API over in-memory storage.
func newRealServer(t *testing.T) *httptest.Server {
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
		Version:          "9.9.9",
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, 5*time.Second, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://vault.example.com/ ", want: "https://vault.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPVaultAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPVaultAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAdapter_AgainstRealServer(t *testing.T) {
	srv := newRealServer(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	version, err := a.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)

	// the first vault call opens a session
	assert.Empty(t, a.Token())
	stored, err := a.Store(ctx, models.StoreRequest{ID: "note1", Text: "hello", Passkey: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.Token())
	assert.Equal(t, "note1", stored.ID)

	_, err = a.Store(ctx, models.StoreRequest{ID: "note1", Text: "again", Passkey: "pw1"})
	assert.ErrorIs(t, err, store.ErrDuplicateID)

	_, err = a.Store(ctx, models.StoreRequest{ID: "", Text: "x", Passkey: "y"})
	assert.ErrorIs(t, err, service.ErrValidation)

	got, err := a.Retrieve(ctx, models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Plaintext)

	for want := 2; want >= 0; want-- {
		_, err = a.Retrieve(ctx, models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "bad"})
		require.ErrorIs(t, err, service.ErrNotFoundOrWrongPasskey)
		remaining, ok := service.AttemptsRemaining(err)
		require.True(t, ok)
		assert.Equal(t, want, remaining)
	}

	_, err = a.Retrieve(ctx, models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "pw1"})
	require.ErrorIs(t, err, lockout.ErrLocked)

	ok, err := a.Reauthorize(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.Reauthorize(ctx, "open-sesame")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = a.Retrieve(ctx, models.RetrieveRequest{ID: "note1", Ciphertext: stored.Ciphertext, Passkey: "bad"})
	require.ErrorIs(t, err, service.ErrNotFoundOrWrongPasskey)
	require.NoError(t, a.ResetAttempts(ctx))

	ids, err := a.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"note1"}, ids)

	status, err := a.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultStatus{
		LockoutState:      models.LockoutState{FailedAttempts: 0, Authorized: true},
		Threshold:         3,
		AttemptsRemaining: 3,
		EntryCount:        1,
	}, status)

	require.NoError(t, a.CloseSession(ctx))
	assert.Empty(t, a.Token())
	require.NoError(t, a.CloseSession(ctx))

	// a fresh session starts empty
	ids, err = a.ListIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAdapter_ExpiredSession(t *testing.T) {
	srv := newRealServer(t)
	a := newTestAdapter(t, srv.URL)

	forged, err := utils.GenerateSessionToken("vault-test", "ghost", time.Minute, "sign-key")
	require.NoError(t, err)
	a.setToken(forged.String())

	_, err = a.ListIDs(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  string
		body    string
		wantErr error
		check   func(t *testing.T, err error)
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"id is required"}`, wantErr: service.ErrValidation},
		{
			name: "wrong passkey from body", status: http.StatusUnauthorized,
			body: `{"error":"nope","attempts_remaining":1}`, wantErr: service.ErrNotFoundOrWrongPasskey,
			check: func(t *testing.T, err error) {
				n, ok := service.AttemptsRemaining(err)
				require.True(t, ok)
				assert.Equal(t, 1, n)
			},
		},
		{
			name: "wrong passkey from header", status: http.StatusUnauthorized, header: "0",
			body: `{"error":"nope"}`, wantErr: service.ErrNotFoundOrWrongPasskey,
			check: func(t *testing.T, err error) {
				n, ok := service.AttemptsRemaining(err)
				require.True(t, ok)
				assert.Zero(t, n)
			},
		},
		{name: "session gone", status: http.StatusUnauthorized, body: `{"error":"session not found"}`, wantErr: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, wantErr: store.ErrDuplicateID},
		{name: "locked", status: http.StatusLocked, wantErr: lockout.ErrLocked},
		{name: "decryption", status: http.StatusUnprocessableEntity, wantErr: crypto.ErrDecryption},
		{name: "internal", status: http.StatusInternalServerError, body: "oops", wantErr: ErrInternalServerError},
		{name: "too large", status: http.StatusRequestEntityTooLarge, body: `{"error":"request body too large"}`, wantErr: ErrRequestTooLarge},
		{name: "session cap", status: http.StatusServiceUnavailable, body: `{"error":"too many open sessions"}`, wantErr: service.ErrTooManySessions},
		{
			name: "unavailable", status: http.StatusServiceUnavailable, body: "maintenance",
			wantErr: ErrServiceUnavailable,
			check: func(t *testing.T, err error) {
				assert.NotErrorIs(t, err, service.ErrTooManySessions)
			},
		},
		{
			name: "other", status: http.StatusTeapot,
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "http 418: I'm a teapot")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set(attemptsRemainingHeader, tt.header)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestAdapter(t, srv.URL).client.R().Get("/")
			require.NoError(t, err)

			err = mapHTTPError(resp)
			if tt.wantErr == nil && tt.check == nil {
				assert.NoError(t, err)
				return
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestOpenSession_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetStatus(context.Background())
	assert.Error(t, err)
	assert.Empty(t, a.Token())
}
