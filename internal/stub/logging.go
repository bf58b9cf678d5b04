package stub

import (
	"fmt"
	"net/http"
)

// Logger receives one formatted line per request
type Logger interface {
	Logf(format string, args ...interface{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// LogRequests wraps next so that every request is logged as its request line
// and status:
//
//	"GET / HTTP/1.1" 200 -
func LogRequests(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		logger.Logf(`"%s" %d -`, requestLine(r), status)
	})
}

func requestLine(r *http.Request) string {
	return fmt.Sprintf("%s %s %s", r.Method, r.URL.RequestURI(), r.Proto)
}
