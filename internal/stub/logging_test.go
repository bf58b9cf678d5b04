package stub

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Logf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestLogRequests(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
		want    string
	}{
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			},
			method: http.MethodGet,
			target: "/status?x=1",
			want:   `"GET /status?x=1 HTTP/1.1" 200 -`,
		},
		{
			name:    "explicit status",
			handler: NotImplemented,
			method:  http.MethodPut,
			target:  "/",
			want:    `"PUT / HTTP/1.1" 501 -`,
		},
		{
			name:    "no body written",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			method:  http.MethodGet,
			target:  "/data",
			want:    `"GET /data HTTP/1.1" 200 -`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			h := LogRequests(logger, tt.handler)

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, nil))

			require.Len(t, logger.lines, 1)
			assert.Equal(t, tt.want, logger.lines[0])
		})
	}
}
