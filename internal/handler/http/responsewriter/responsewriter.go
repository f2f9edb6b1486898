// Package responsewriter wraps http.ResponseWriter to capture the status code
// and body size for access logs and metrics.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the first status code sent and the bytes written.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

// Wrap returns w wrapped. The status defaults to 200 until WriteHeader is called.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards only the first call; later calls are ignored like net/http does.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded HTTP status code.
func (w *ResponseWriter) StatusCode() int { return w.statusCode }

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int { return w.bytesWritten }

// WroteHeader reports whether a status line has been sent.
func (w *ResponseWriter) WroteHeader() bool { return w.wroteHeader }

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
