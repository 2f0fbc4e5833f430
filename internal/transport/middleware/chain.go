package middleware

import "net/http"

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one. The first argument becomes the
// outermost wrapper: Chain(a, b)(h) serves a request through a, then b,
// then h.
func Chain(mws ...Middleware) Middleware {
	return func(inner http.Handler) http.Handler {
		wrapped := inner
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
