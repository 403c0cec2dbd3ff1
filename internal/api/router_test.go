package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/route-terrain-go/internal/config"
	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/service"
	"github.com/jengzang/route-terrain-go/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAnalyzer struct {
	err  error
	seen *models.RouteAnalysisRequest
}

func (s *stubAnalyzer) Analyze(_ context.Context, req *models.RouteAnalysisRequest) (*models.RouteAnalysisResponse, error) {
	s.seen = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.RouteAnalysisResponse{Analysis: "ok", TerrainType: "hilly", LengthKm: 12.5, DailyRoutes: []models.DailyRoute{}}, nil
}

type stubElevation struct {
	err  error
	seen []models.Coordinate
}

func (s *stubElevation) Acquire(_ context.Context, coords []models.Coordinate) (*models.ElevationResponse, error) {
	s.seen = coords
	if s.err != nil {
		return nil, s.err
	}
	resp := &models.ElevationResponse{Status: "OK", Source: "stub"}
	for _, c := range coords {
		resp.Results = append(resp.Results, models.ElevationSample{Elevation: 100, Location: models.LatLng{Lat: c.Lat, Lng: c.Lon}})
	}
	return resp, nil
}

type stubGeo struct{}

func (stubGeo) Aggregate(context.Context, []models.Coordinate) models.GeographicContext {
	return models.GeographicContext{
		Countries: []string{"Georgia"}, Regions: []string{"Svaneti"}, Areas: []string{},
		Localities: []string{"Mestia"}, TotalPointsAnalyzed: 2,
	}
}

type testServer struct {
	engine    *gin.Engine
	analyzer  *stubAnalyzer
	elevation *stubElevation
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{CORSOrigins: []string{"https://planner.example.org"}},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 600, Burst: 100},
		Analysis:  config.AnalysisConfig{Timeout: 5 * time.Second},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	s := &testServer{analyzer: &stubAnalyzer{}, elevation: &stubElevation{}}
	engine, err := SetupRouter(t.Context(), cfg, Services{Analyzer: s.analyzer, Elevation: s.elevation, Geo: stubGeo{}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	s.engine = engine
	return s
}

func (s *testServer) post(path, body string, header ...string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "routeterrain_http_requests_total")
}

func TestAnalyzeRoute_AcceptsBothCoordinateForms(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := s.post("/api/v1/analyze-route", `{"coordinates":[[43.05,42.72],[43.04,42.75]],"tourismType":"hiking"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0, env.Code)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, models.Route{{Lat: 43.05, Lon: 42.72}, {Lat: 43.04, Lon: 42.75}}, s.analyzer.seen.Route())

	w, _ = s.post("/api/v1/analyze-route", `{"points":[{"lat":43.05,"lng":42.72},{"lat":43.04,"lng":42.75}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, s.analyzer.seen.Route(), 2)
}

func TestAnalyzeRoute_RejectsOutOfRangeCoordinate(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := s.post("/api/v1/analyze-route", `{"coordinates":[[43.05,42.72],[95,42.75]]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeValidation, env.Error)
	assert.Contains(t, env.Message, "latitude")
	assert.Nil(t, s.analyzer.seen)
}

func TestAnalyzeRoute_MalformedBody(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := s.post("/api/v1/analyze-route", `{"coordinates":[[1,2,3]]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeBadRequest, env.Error)
	assert.Contains(t, env.Message, "invalid request body")
	assert.Nil(t, s.analyzer.seen)
}

func TestAnalyzeRoute_ErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: need 2 points", service.ErrValidation), http.StatusBadRequest, response.CodeValidation},
		{fmt.Errorf("wrap: %w", service.ErrAcquisition), http.StatusBadGateway, response.CodeElevation},
		{fmt.Errorf("%w: HTTP 401", service.ErrUpstreamAuth), http.StatusServiceUnavailable, response.CodeReasoningAuth},
		{fmt.Errorf("%w: boom", service.ErrUpstreamFailure), http.StatusBadGateway, response.CodeReasoningFailed},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, response.CodeTimeout},
		{fmt.Errorf("unexpected"), http.StatusInternalServerError, response.CodeInternal},
	} {
		s := newTestServer(t, testConfig())
		s.analyzer.err = tc.err

		w, env := s.post("/api/v1/analyze-route", `{"coordinates":[[1,2],[1.1,2.1]]}`)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, tc.code, env.Error, tc.err.Error())
	}
}

func TestElevation_FiltersInvalidCoordinates(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := s.post("/api/v1/elevation", `{"coordinates":[[46.5,7.9],[120,7.9],[46.6,200]]}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []models.Coordinate{{Lat: 46.5, Lon: 7.9}}, s.elevation.seen)
	data, _ := json.Marshal(env.Data)
	assert.Contains(t, string(data), `"status":"OK"`)

	s.elevation.seen = nil
	w, env = s.post("/api/v1/elevation", `{"coordinates":[[120,7.9]]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeValidation, env.Error)
	assert.Nil(t, s.elevation.seen)
}

func TestElevation_AllProvidersDown(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.elevation.err = fmt.Errorf("%w: 3 providers tried", service.ErrAcquisition)

	w, env := s.post("/api/v1/elevation", `{"coordinates":[[46.5,7.9]]}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, response.CodeElevation, env.Error)
}

func TestGeoContext(t *testing.T) {
	s := newTestServer(t, testConfig())

	w, env := s.post("/api/v1/geo-context", `{"coordinates":[[43.05,42.72]]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data, _ := json.Marshal(env.Data)
	assert.Contains(t, string(data), `"countries":["Georgia"]`)
	assert.Contains(t, string(data), "formattedGeoContext")

	w, _ = s.post("/api/v1/geo-context", `{"coordinates":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.AuthConfig{Enabled: true, JWTSecret: "0123456789abcdef"}
	s := newTestServer(t, cfg)

	w, env := s.post("/api/v1/geo-context", `{"coordinates":[[43.05,42.72]]}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeUnauthorized, env.Error)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze-route", nil)
	req.Header.Set("Origin", "https://planner.example.org")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://planner.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/analyze-route", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
