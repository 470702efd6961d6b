package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingService/pkg/logger"
)

type finished struct {
	method string
	path   string
	status int
}

type fakeMetrics struct {
	started  int
	finished []finished
}

func (f *fakeMetrics) HTTPRequestStarted() {
	f.started++
}

func (f *fakeMetrics) HTTPRequestFinished(method, path string, status int, _ time.Duration) {
	f.finished = append(f.finished, finished{method: method, path: path, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	m := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/api/v1/appointments/{appointmentId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/catalog", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/appointments/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	assert.Equal(t, 2, m.started)
	require.Len(t, m.finished, 2)
	assert.Equal(t, finished{http.MethodGet, "/api/v1/appointments/{appointmentId}", http.StatusNotFound}, m.finished[0])
	assert.Equal(t, finished{http.MethodGet, "/api/v1/catalog", http.StatusOK}, m.finished[1])
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "erro interno do servidor")
}
