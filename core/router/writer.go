package router

import (
	"net/http"
)

// responseWriter wraps http.ResponseWriter to track the status and whether
// anything has been written. Middleware reads both for access logs.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
	bytes   int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Written reports whether WriteHeader has been called.
func (w *responseWriter) Written() bool { return w.written }

// Status returns the HTTP status code, or 0 before anything was written.
func (w *responseWriter) Status() int { return w.status }

// BytesWritten returns the number of body bytes written.
func (w *responseWriter) BytesWritten() int { return w.bytes }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// ResponseStatus returns the status written to w if w was produced by the
// router, and 0 otherwise. A body written without WriteHeader counts as 200.
func ResponseStatus(w http.ResponseWriter) int {
	if ww, ok := w.(*responseWriter); ok {
		return ww.Status()
	}
	return 0
}
