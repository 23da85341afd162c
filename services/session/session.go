package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"tutormatch/models"
	"tutormatch/utils"

	"go.uber.org/zap"
)

// CookieName is the cookie that may carry the session token instead of the
// Authorization header.
const CookieName = "session_token"

var ErrRevocationUnavailable = errors.New("session revocation store is not configured")

// Provider resolves the caller of a request. A request without a valid
// session yields a nil principal and a nil error.
type Provider interface {
	CurrentSession(r *http.Request) (*models.Principal, error)
}

// JWTProvider accepts HS256 tokens issued by the identity provider and honours
// sign-outs recorded in a RevocationStore.
type JWTProvider struct {
	secret  []byte
	revoked RevocationStore
	now     func() time.Time
}

// NewJWTProvider returns a provider verifying tokens with secret. revoked may
// be nil, in which case sign-out is unavailable.
func NewJWTProvider(secret string, revoked RevocationStore) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), revoked: revoked, now: time.Now}
}

// TokenFromRequest returns the bearer token or, failing that, the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (p *JWTProvider) CurrentSession(r *http.Request) (*models.Principal, error) {
	token := TokenFromRequest(r)
	if token == "" {
		return nil, nil
	}
	claims, err := utils.ParseToken(p.secret, token)
	if err != nil {
		utils.GetLogger().Debug("Rejected session token", zap.Error(err))
		return nil, nil
	}

	if p.revoked != nil {
		revoked, err := p.revoked.IsRevoked(r.Context(), revocationKey(claims, token))
		if err != nil {
			utils.GetLogger().Warn("Revocation lookup failed, accepting token", zap.Error(err))
		} else if revoked {
			return nil, nil
		}
	}

	return &models.Principal{UserID: claims.Subject, Email: claims.Email, TokenID: claims.ID}, nil
}

// Revoke signs token out until it expires.
func (p *JWTProvider) Revoke(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(p.secret, token)
	if err != nil {
		return utils.AuthenticationError("Please login first")
	}
	if p.revoked == nil {
		return ErrRevocationUnavailable
	}

	ttl := claims.ExpiresAt.Time.Sub(p.now())
	if ttl < time.Second {
		ttl = time.Second
	}
	return p.revoked.Revoke(ctx, revocationKey(claims, token), ttl)
}

// revocationKey prefers the token id and falls back to a hash of the token.
func revocationKey(claims *utils.SessionClaims, token string) string {
	if claims.ID != "" {
		return claims.ID
	}
	return utils.HashToken(token)
}
