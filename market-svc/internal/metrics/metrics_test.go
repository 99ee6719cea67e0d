package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] == "0" {
			http.Error(w, "nope", http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}).Methods("GET")

	ok := httpRequestsTotal.WithLabelValues("GET", "/things/{id}", "200")
	missing := httpRequestsTotal.WithLabelValues("GET", "/things/{id}", "404")
	okBefore := testutil.ToFloat64(ok)
	missingBefore := testutil.ToFloat64(missing)

	for _, path := range []string{"/things/1", "/things/2", "/things/0"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(ok))
	assert.Equal(t, missingBefore+1, testutil.ToFloat64(missing))
}

func TestMiddlewareReusesStatusRecorder(t *testing.T) {
	rec := NewStatusRecorder(httptest.NewRecorder())
	var seen http.ResponseWriter
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unrouted", nil))

	assert.Same(t, rec, seen)
	assert.Equal(t, http.StatusTeapot, rec.Status)
}

func TestRecordOrderOperation(t *testing.T) {
	success := orderOperations.WithLabelValues("create", "success")
	failure := orderOperations.WithLabelValues("create", "error")
	successBefore := testutil.ToFloat64(success)
	failureBefore := testutil.ToFloat64(failure)

	RecordOrderOperation("create", true)
	RecordOrderOperation("create", false)
	RecordOrderOperation("create", false)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, failureBefore+2, testutil.ToFloat64(failure))
}
