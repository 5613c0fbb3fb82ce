package middleware

import (
	"context"
	"net/http"

	"github.com/aspect/anchor/internal/api/apierr"
	"github.com/aspect/anchor/internal/model"
)

type contextKey string

const signerContextKey contextKey = "signer"

// Signer creates middleware that extracts the caller identity from the
// X-Anchor-Signer header (hex-encoded 32 bytes). Signature verification
// happens in the gateway upstream of this service; by the time a request
// reaches here the header value is the proved identity, and this layer only
// carries it to the handlers.
func Signer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-Anchor-Signer")
			if raw == "" {
				apierr.WriteError(w, apierr.NewSignerRequiredError())
				return
			}

			signer, err := model.AuthorityFromHex(raw)
			if err != nil {
				apierr.WriteError(w, apierr.NewInvalidRequestError("malformed X-Anchor-Signer header"))
				return
			}

			ctx := context.WithValue(r.Context(), signerContextKey, signer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSigner returns the signer identity from the request context
func GetSigner(ctx context.Context) (model.Authority, bool) {
	signer, ok := ctx.Value(signerContextKey).(model.Authority)
	return signer, ok
}

// MustGetSigner returns the signer identity or panics
func MustGetSigner(ctx context.Context) model.Authority {
	signer, ok := GetSigner(ctx)
	if !ok {
		panic("no signer in context - signer middleware not applied?")
	}
	return signer
}
