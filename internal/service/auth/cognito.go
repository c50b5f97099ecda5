package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
)

// jwksKey is one entry of a JWKS document. Only RSA fields are kept;
// Cognito signs with RS256 exclusively.
type jwksKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwksKey `json:"keys"`
}

// Verifier validates RS256 tokens against a JWKS endpoint and applies
// an email allowlist. It caches the key set and refetches once when a
// token references an unknown kid, which covers key rotation.
type Verifier struct {
	issuer     string
	audience   string
	allowlist  Allowlist
	jwksURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

var _ TokenVerifier = (*Verifier)(nil)

// NewCognitoVerifier builds a Verifier for the configured Cognito user
// pool. The issuer and JWKS URL follow Cognito's well-known layout.
func NewCognitoVerifier(cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.Region, cfg.UserPoolID)
	return NewVerifier(issuer, cfg.ClientID, Allowlist{
		Emails:  cfg.AllowedEmails,
		Domains: cfg.AllowedDomains,
	}, logger)
}

// NewVerifier builds a Verifier for an arbitrary issuer. The JWKS URL
// is derived from the issuer's well-known path.
func NewVerifier(issuer, audience string, allowlist Allowlist, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		issuer:     issuer,
		audience:   audience,
		allowlist:  allowlist,
		jwksURL:    issuer + "/.well-known/jwks.json",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With(slog.String("component", "auth_verifier")),
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// Verify parses and validates the token, then applies the allowlist.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.Parse(tokenString, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.publicKey(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if !v.audienceMatches(claims) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	if email != "" && !v.allowlist.Allows(email) {
		return nil, ErrEmailNotAllowed
	}

	return &Claims{Subject: sub, Email: email, Raw: claims}, nil
}

// audienceMatches accepts either the id-token aud claim or the
// access-token client_id claim, both of which carry the app client id.
func (v *Verifier) audienceMatches(claims jwt.MapClaims) bool {
	if v.audience == "" {
		return true
	}
	if clientID, _ := claims["client_id"].(string); clientID == v.audience {
		return true
	}
	aud, err := claims.GetAudience()
	if err != nil {
		return false
	}
	for _, a := range aud {
		if a == v.audience {
			return true
		}
	}
	return false
}

func (v *Verifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("signing key %q not found in key set", kid)
	}
	return key, nil
}

func (v *Verifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("building jwks request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching jwks: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decoding jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := rsaPublicKey(k)
		if err != nil {
			v.logger.Warn("skipping unparseable jwks key",
				slog.String("kid", k.Kid), slog.String("error", err.Error()))
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return errors.New("jwks document contained no usable keys")
	}

	v.mu.Lock()
	v.keys = keys
	v.mu.Unlock()
	v.logger.Debug("refreshed jwks key set", slog.Int("keys", len(keys)))
	return nil
}

// rsaPublicKey assembles an RSA public key from the JWKS modulus and
// exponent, both base64url without padding.
func rsaPublicKey(k jwksKey) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 1 {
		return nil, errors.New("invalid public exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
