// Package identity resolves the user making a request from the certificate
// they present. Users are created on first contact.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/Booru/internal/api/apierror"
	"github.com/hbomb79/Booru/internal/user"
	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderCertificateHash = "X-Client-Certificate-Hash"

	contextKey = "user"
)

var log = logger.Get("Identity")

type (
	Store interface {
		GetOrCreateUser(ctx context.Context, certificateHash string) (*user.User, error)
	}

	Provider struct {
		store       Store
		validate    *validator.Validate
		trustHeader bool
	}
)

// New creates an identity provider. When trustHeader is true the certificate
// hash may be supplied by a fronting proxy via the X-Client-Certificate-Hash
// header, which takes precedence over any TLS peer certificate.
func New(store Store, validate *validator.Validate, trustHeader bool) *Provider {
	return &Provider{store: store, validate: validate, trustHeader: trustHeader}
}

// Middleware resolves the user for every request which carries an identity and
// stores it in the request context. Anonymous requests are passed through
// untouched; use RequireUser to reject them.
func (provider *Provider) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			hash := provider.certificateHash(ec.Request())
			if hash == "" {
				return next(ec)
			}

			u, err := provider.store.GetOrCreateUser(ec.Request().Context(), hash)
			if err != nil {
				return apierror.APIError{Status: http.StatusInternalServerError, InternalMessage: "failed to resolve user: " + err.Error()}
			}

			ec.Set(contextKey, u)
			return next(ec)
		}
	}
}

// RequireUser rejects requests which did not present an identity.
func (provider *Provider) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			if _, ok := UserFromContext(ec); !ok {
				return apierror.ErrUnauthorized
			}

			return next(ec)
		}
	}
}

// UserFromContext returns the user resolved by the Middleware, if any.
func UserFromContext(ec echo.Context) (*user.User, bool) {
	u, ok := ec.Get(contextKey).(*user.User)
	return u, ok
}

func (provider *Provider) certificateHash(r *http.Request) string {
	if provider.trustHeader {
		if raw := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderCertificateHash))); raw != "" {
			if err := provider.validate.Var(raw, "hexadecimal,max=64"); err != nil {
				log.Emit(logger.WARNING, "Ignoring malformed %s header: %v\n", HeaderCertificateHash, err)
				return ""
			}

			return raw
		}
	}

	if r.TLS != nil && len(r.TLS.PeerCertificates) > 0 {
		sum := sha256.Sum256(r.TLS.PeerCertificates[0].Raw)
		return hex.EncodeToString(sum[:])
	}

	return ""
}
