package core

import "context"

type contextKey string

const ctxKeyClient contextKey = "client"

// ClientInfo describes the caller of a service operation for logging.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// ContextWithClient adds caller details to ctx.
func ContextWithClient(ctx context.Context, c ClientInfo) context.Context {
	return context.WithValue(ctx, ctxKeyClient, c)
}

// ClientFromContext extracts caller details, or the zero value.
func ClientFromContext(ctx context.Context) ClientInfo {
	if v, ok := ctx.Value(ctxKeyClient).(ClientInfo); ok {
		return v
	}
	return ClientInfo{}
}
