package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", "session-1", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "session-1", token.SessionID)
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "session-1", claims.Subject)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty session", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.sessionID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("iss", "session-42", time.Hour, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(token.SignedString, "key", "iss")
	require.NoError(t, err)
	assert.Equal(t, "session-42", parsed.SessionID)
	assert.Equal(t, token.SignedString, parsed.SignedString)
}

func TestValidateAndParseSessionToken_Rejects(t *testing.T) {
	valid, err := GenerateSessionToken("iss", "s", time.Hour, "key")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "s",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte("key"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubjectString, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "iss", Subject: "s"})
	noExpiryString, err := noExpiry.SignedString([]byte("key"))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "s",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	hs512String, err := hs512.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "iss"},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "other"},
		{name: "garbage", token: "not.a.token", key: "key", issuer: "iss"},
		{name: "expired", token: expiredString, key: "key", issuer: "iss"},
		{name: "no subject", token: noSubjectString, key: "key", issuer: "iss"},
		{name: "no expiry", token: noExpiryString, key: "key", issuer: "iss"},
		{name: "unexpected algorithm", token: hs512String, key: "key", issuer: "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseSessionToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "padded", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionIDGenerator_Generate(t *testing.T) {
	g := NewSessionIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('4'), a[14], "random uuid version")
}
