package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/dating-app/internal/jwt"
	"github.com/sbilibin2017/dating-app/internal/middlewares"
)

// withURLParams attaches chi route parameters to the request context.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withClaims attaches token claims to the request context, as the auth
// middleware would.
func withClaims(r *http.Request, claims *jwt.Claims) *http.Request {
	return r.WithContext(middlewares.SetClaimsToContext(r.Context(), claims))
}
