package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// jwk is the subset of an RFC 7517 JSON Web Key needed to rebuild an RSA
// public key.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// keySet caches the provider's published signing keys by key id.
//
// The cache is lazily populated: an unknown kid triggers a refresh, but
// refreshes are rate-limited so a flood of garbage tokens cannot hammer
// the provider's JWKS endpoint. Concurrent refreshes are harmless (last
// write wins, the documents are identical).
type keySet struct {
	client  *resty.Client
	url     string
	limiter *rate.Limiter

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func newKeySet(jwksURL string, requestsPerMinute int) *keySet {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}

	return &keySet{
		client:  resty.New().SetTimeout(10 * time.Second),
		url:     jwksURL,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute),
		keys:    make(map[string]*rsa.PublicKey),
	}
}

// keyFor returns the RSA public key for kid, refreshing the cached key set
// if the kid is unknown and the rate limiter permits another fetch.
func (k *keySet) keyFor(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	k.mu.RLock()
	key, ok := k.keys[kid]
	k.mu.RUnlock()
	if ok {
		return key, nil
	}

	if !k.limiter.Allow() {
		return nil, fmt.Errorf("%w: refresh rate limit reached", ErrKeySetUnavailable)
	}

	if err := k.refresh(ctx); err != nil {
		return nil, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	if key, ok := k.keys[kid]; ok {
		return key, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
}

func (k *keySet) refresh(ctx context.Context) error {
	resp, err := k.client.R().
		SetContext(ctx).
		Get(k.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: http %d", ErrKeySetUnavailable, resp.StatusCode())
	}

	var doc jwksDocument
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return fmt.Errorf("%w: decoding document: %w", ErrKeySetUnavailable, err)
	}

	fresh := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, key := range doc.Keys {
		if key.Kty != "RSA" || key.Kid == "" {
			continue
		}
		pub, err := key.publicKey()
		if err != nil {
			// skip malformed entries, the rest of the set is still usable
			continue
		}
		fresh[key.Kid] = pub
	}

	k.mu.Lock()
	k.keys = fresh
	k.mu.Unlock()

	return nil
}

// publicKey rebuilds an *rsa.PublicKey from the base64url-encoded modulus
// and exponent of a JWK entry.
func (j jwk) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(j.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(j.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}

	e := 0
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}
	if e <= 1 {
		return nil, fmt.Errorf("invalid public exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}
