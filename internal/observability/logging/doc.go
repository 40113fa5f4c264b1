// Package logging wraps log/slog with the logger construction and context
// helpers shared by the API.
//
//	logger := logging.NewLogger(cfg.LogLevel)
//	slog.SetDefault(logger)
//
//	func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.ForRequest(r.Context(), h.Logger)
//	    logger.Info("listing doctors")
//	}
package logging
