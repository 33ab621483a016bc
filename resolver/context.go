package resolver

import (
	"context"
	"net/http"
)

// paramsContextKey is an unexported type for the params context key.
type paramsContextKey struct{}

// NewContext returns a copy of ctx carrying params.
func NewContext(ctx context.Context, params Params) context.Context {
	return context.WithValue(ctx, paramsContextKey{}, params)
}

// ParamsFromContext returns the params stored in ctx by Middleware or
// NewContext, or nil if there are none.
func ParamsFromContext(ctx context.Context) Params {
	if params, ok := ctx.Value(paramsContextKey{}).(Params); ok {
		return params
	}
	return nil
}

// RequestParams returns the resolved params for the current request, if any.
func RequestParams(r *http.Request) Params {
	return ParamsFromContext(r.Context())
}

// ParamGet returns the value of a single resolved param by name and a
// boolean indicating whether the param exists.
func ParamGet(r *http.Request, name string) (string, bool) {
	params := RequestParams(r)
	if params == nil {
		return "", false
	}
	val, exists := params[name]
	return val, exists
}
