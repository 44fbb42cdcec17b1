package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsMatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/items/:id", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/items/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestRecordCostComputation(t *testing.T) {
	before := testutil.ToFloat64(costComputations.WithLabelValues("false"))
	RecordCostComputation(false, 0)
	assert.Equal(t, before+1, testutil.ToFloat64(costComputations.WithLabelValues("false")))

	RecordCostComputation(true, 3*time.Millisecond)
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordCostComputation(true, time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "profranchising_cost_computations_total"))
}
