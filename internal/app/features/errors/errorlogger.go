// internal/app/features/errors/errorlogger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for the friendly error page.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// ErrorLogger pairs structured logging with a friendly error page, so
// handlers fail in one line instead of hand-rolling both.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogBadRequest logs a client-caused failure and renders the error page
// with a 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusBadRequest)
	renderErrorPage(w, r, "Invalid request", userMsg, backURL)
}

// LogServerError logs a server-side failure and renders the error page
// with a 500.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	renderErrorPage(w, r, "Something went wrong", userMsg, backURL)
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	templates.Render(w, r, "error_page", pageData{
		Title:   title,
		Message: msg,
		BackURL: backURL,
	})
}
