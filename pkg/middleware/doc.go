// Package middleware provides HTTP observability middleware for apps
// hosting gallery pickers: Prometheus request metrics and OpenTelemetry
// tracing. Both are standard func(http.Handler) http.Handler middleware
// and compose with chi or any other router.
package middleware
