package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwksFixture struct {
	key    *rsa.PrivateKey
	kid    string
	server *httptest.Server
	hits   int
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &jwksFixture{key: key, kid: "test-key-1"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits++
		doc := jwksDocument{Keys: []jwksKey{{
			Kid: f.kid,
			Kty: "RSA",
			N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}}}
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *jwksFixture) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = f.kid
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func (f *jwksFixture) verifier(allowlist Allowlist) *Verifier {
	v := NewVerifier(f.server.URL, "client-1", allowlist, nil)
	// The well-known path is Cognito-shaped; the fixture serves the
	// document at every path, so point straight at the server.
	v.jwksURL = f.server.URL
	return v
}

func baseClaims(f *jwksFixture) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   f.server.URL,
		"aud":   "client-1",
		"sub":   "user-123",
		"email": "student@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerifyValidToken(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})

	claims, err := v.Verify(context.Background(), f.sign(t, baseClaims(f)))
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestVerifyCachesKeySet(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})
	ctx := context.Background()

	_, err := v.Verify(ctx, f.sign(t, baseClaims(f)))
	require.NoError(t, err)
	_, err = v.Verify(ctx, f.sign(t, baseClaims(f)))
	require.NoError(t, err)

	assert.Equal(t, 1, f.hits)
}

func TestVerifyRefetchesOnUnknownKid(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})
	ctx := context.Background()

	_, err := v.Verify(ctx, f.sign(t, baseClaims(f)))
	require.NoError(t, err)

	// Rotate the key id; the next token forces one refetch.
	f.kid = "test-key-2"
	_, err = v.Verify(ctx, f.sign(t, baseClaims(f)))
	require.NoError(t, err)
	assert.Equal(t, 2, f.hits)
}

func TestVerifyExpiredToken(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})

	claims := baseClaims(f)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})

	claims := baseClaims(f)
	claims["iss"] = "https://somewhere-else.example.com"

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAudienceMismatch(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})

	claims := baseClaims(f)
	claims["aud"] = "other-client"

	_, err := v.Verify(context.Background(), f.sign(t, claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAcceptsAccessTokenClientID(t *testing.T) {
	f := newJWKSFixture(t)
	v := f.verifier(Allowlist{})

	claims := baseClaims(f)
	delete(claims, "aud")
	delete(claims, "email")
	claims["client_id"] = "client-1"

	got, err := v.Verify(context.Background(), f.sign(t, claims))
	require.NoError(t, err)
	assert.Equal(t, "user-123", got.Subject)
	assert.Empty(t, got.Email)
}

func TestVerifyAllowlist(t *testing.T) {
	f := newJWKSFixture(t)

	t.Run("email allowed", func(t *testing.T) {
		v := f.verifier(Allowlist{Emails: []string{"student@example.com"}})
		_, err := v.Verify(context.Background(), f.sign(t, baseClaims(f)))
		assert.NoError(t, err)
	})

	t.Run("domain allowed", func(t *testing.T) {
		v := f.verifier(Allowlist{Domains: []string{"example.com"}})
		_, err := v.Verify(context.Background(), f.sign(t, baseClaims(f)))
		assert.NoError(t, err)
	})

	t.Run("not allowed", func(t *testing.T) {
		v := f.verifier(Allowlist{Emails: []string{"teacher@school.org"}})
		_, err := v.Verify(context.Background(), f.sign(t, baseClaims(f)))
		assert.ErrorIs(t, err, ErrEmailNotAllowed)
	})
}

func TestAllowlistRules(t *testing.T) {
	tests := []struct {
		name      string
		allowlist Allowlist
		email     string
		want      bool
	}{
		{"empty allows all", Allowlist{}, "anyone@anywhere.net", true},
		{"exact email", Allowlist{Emails: []string{"a@b.com"}}, "a@b.com", true},
		{"case insensitive", Allowlist{Emails: []string{"A@B.com"}}, "a@b.com", true},
		{"domain with at prefix", Allowlist{Domains: []string{"@b.com"}}, "x@b.com", true},
		{"wrong domain", Allowlist{Domains: []string{"b.com"}}, "x@c.com", false},
		{"no match", Allowlist{Emails: []string{"a@b.com"}}, "z@b.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.allowlist.Allows(tt.email))
		})
	}
}
