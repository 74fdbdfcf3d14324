package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/applicants/internal/core"
)

// WithRequestMetadata records the caller's address and user agent in ctx so
// service logs can name them. RemoteAddr has already been resolved by
// TrustedRealIP.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	return core.ContextWithClient(ctx, core.ClientInfo{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	})
}
