package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/handler/http/respond"
)

// Timeout returns middleware that answers 504 with an error envelope when
// the handler has not finished within d. The request context is canceled so
// downstream storage calls stop.
//
// The handler writes into a buffer with its own header map; the response is
// copied to the client only when the handler returns in time. Writes after
// the timeout fail with http.ErrHandlerTimeout. A panic in the handler is
// re-raised on the calling goroutine so Recover still sees it.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			done := make(chan struct{})
			panicChan := make(chan any, 1)
			tw := &timeoutResponseWriter{header: make(http.Header)}

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicChan:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				dst := w.Header()
				for k, vv := range tw.header {
					dst[k] = vv
				}
				if tw.code == 0 {
					tw.code = http.StatusOK
				}
				w.WriteHeader(tw.code)
				if tw.buf.Len() > 0 {
					_, _ = w.Write(tw.buf.Bytes())
				}
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					// client went away
					return
				}
				body, _ := json.Marshal(respond.Failure(http.StatusGatewayTimeout, apperror.CodeInternal,
					"Request timeout", "the request took longer than "+d.String()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusGatewayTimeout)
				_, _ = w.Write(append(body, '\n'))
			}
		})
	}
}

// timeoutResponseWriter buffers the handler's response until it returns.
type timeoutResponseWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      bytes.Buffer
	code     int
	timedOut bool
}

func (w *timeoutResponseWriter) Header() http.Header { return w.header }

func (w *timeoutResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timedOut || w.code != 0 {
		return
	}
	w.code = statusCode
}

func (w *timeoutResponseWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if w.code == 0 {
		w.code = http.StatusOK
	}
	return w.buf.Write(data)
}
