package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// DefaultCertsURL publishes the x509 certificates that sign Firebase ID tokens.
const DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const (
	issuerPrefix    = "https://securetoken.google.com/"
	defaultCertsTTL = time.Hour
	// unknownKidCooldown bounds how often a token with an unrecognized kid
	// may trigger a refetch while the cached set is still fresh.
	unknownKidCooldown = time.Minute
)

// FirebaseVerifier verifies Firebase ID tokens (RS256) against Google's
// published signing certificates.
type FirebaseVerifier struct {
	projectID  string
	certsURL   string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time

	fetches singleflight.Group

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expires   time.Time
	fetchedAt time.Time // last attempt, successful or not
}

type keySnapshot struct {
	key       *rsa.PublicKey
	fresh     bool
	fetchedAt time.Time
}

// NewFirebaseVerifier creates a verifier for tokens issued to projectID.
// An empty certsURL uses DefaultCertsURL.
func NewFirebaseVerifier(projectID, certsURL string, logger *slog.Logger) *FirebaseVerifier {
	if certsURL == "" {
		certsURL = DefaultCertsURL
	}
	return &FirebaseVerifier{
		projectID:  projectID,
		certsURL:   certsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "firebase_auth"),
		now:        time.Now,
	}
}

// Verify parses and validates an ID token and returns the caller identity.
// Every failure wraps domain.ErrUnauthorized.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			kid, _ := t.Header["kid"].(string)
			if kid == "" {
				return nil, errors.New("missing kid header")
			}
			return v.publicKey(ctx, kid)
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: parse token: %v", domain.ErrUnauthorized, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}

	id := Identity{Subject: subject, Claims: claims}
	if email, ok := claims["email"].(string); ok && email != "" {
		id.Email = &email
	}
	return id, nil
}

// publicKey returns the key for kid. An expired set is refreshed; a fresh
// set that lacks kid is refreshed at most once per unknownKidCooldown, since
// the kid comes from a token whose signature has not been checked yet.
// Concurrent refreshes share one request and no lock is held during I/O.
func (v *FirebaseVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	snap := v.snapshot(kid)
	switch {
	case snap.fresh && snap.key != nil:
		return snap.key, nil
	case snap.fresh && v.now().Sub(snap.fetchedAt) < unknownKidCooldown:
		return nil, fmt.Errorf("unknown key id %q", kid)
	}

	keys, err := v.refresh(ctx, snap.fetchedAt)
	if err != nil {
		if snap.key != nil {
			v.log.WarnContext(ctx, "firebase certs stale", slog.String("kid", kid))
			return snap.key, nil
		}
		return nil, err
	}
	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

func (v *FirebaseVerifier) snapshot(kid string) keySnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return keySnapshot{
		key:       v.keys[kid],
		fresh:     v.now().Before(v.expires),
		fetchedAt: v.fetchedAt,
	}
}

// refresh fetches the certificate set unless another caller already did so
// after seen.
func (v *FirebaseVerifier) refresh(ctx context.Context, seen time.Time) (map[string]*rsa.PublicKey, error) {
	res, err, _ := v.fetches.Do("certs", func() (any, error) {
		v.mu.RLock()
		current, newer := v.keys, v.fetchedAt.After(seen)
		v.mu.RUnlock()
		if newer && current != nil {
			return current, nil
		}

		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		keys, ttl, err := v.fetchKeys(context.WithoutCancel(ctx))

		v.mu.Lock()
		defer v.mu.Unlock()
		v.fetchedAt = v.now()
		if err != nil {
			return nil, err
		}
		v.keys = keys
		v.expires = v.now().Add(ttl)
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(map[string]*rsa.PublicKey), nil
}

func (v *FirebaseVerifier) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("firebase: create request: %w", err)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "firebase certs fetch failed", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("firebase: certs unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "firebase certs fetch failed", slog.Int("status", resp.StatusCode))
		return nil, 0, fmt.Errorf("firebase: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("firebase: read body: %w", err)
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, 0, fmt.Errorf("firebase: decode certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		key, err := parseCertKey(certPEM)
		if err != nil {
			v.log.WarnContext(ctx, "firebase cert skipped", slog.String("kid", kid), slog.String("error", err.Error()))
			continue
		}
		keys[kid] = key
	}

	v.log.DebugContext(ctx, "firebase certs refreshed", slog.Int("keys", len(keys)))

	return keys, maxAge(resp.Header.Get("Cache-Control")), nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (v *FirebaseVerifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := v.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	v.log.WarnContext(ctx, "firebase certs retry")

	time.Sleep(500 * time.Millisecond)

	return v.httpClient.Do(req)
}

func parseCertKey(certPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil {
		return nil, errors.New("no PEM block")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("certificate key is not RSA")
	}
	return key, nil
}

// maxAge extracts max-age from a Cache-Control header, falling back to an hour.
func maxAge(header string) time.Duration {
	for _, directive := range strings.Split(header, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(directive), "=")
		if !ok || !strings.EqualFold(name, "max-age") {
			continue
		}
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			break
		}
		return time.Duration(secs) * time.Second
	}
	return defaultCertsTTL
}
