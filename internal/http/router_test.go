package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "airline/internal/config"
	"airline/internal/domain/models"
	h "airline/internal/http/handlers"
	"airline/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	env := intconfig.Env{CORSOrigins: []string{"*"}, FetchLimit: 1000}
	return &testServer{t: t, engine: NewRouter(env, h.New(repositories.NewMemoryStore(), env.FetchLimit))}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *testServer) seed() {
	rec := s.do(http.MethodPost, "/api/initialize-data", nil)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
}

func flightByID(t *testing.T, s *testServer, id string) models.FlightRoute {
	t.Helper()
	for _, f := range decode[[]models.FlightRoute](t, s.do(http.MethodGet, "/api/flights", nil)) {
		if f.FlightID == id {
			return f
		}
	}
	t.Fatalf("flight %s not listed", id)
	return models.FlightRoute{}
}

func TestSeedThenBoardScenario(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	assert.Len(t, decode[[]models.Airport](t, s.do(http.MethodGet, "/api/airports", nil)), 6)
	assert.Len(t, decode[[]models.FlightRoute](t, s.do(http.MethodGet, "/api/flights", nil)), 8)
	passengers := decode[[]models.Passenger](t, s.do(http.MethodGet, "/api/passengers", nil))
	require.Len(t, passengers, 12)
	for _, p := range passengers {
		assert.Equal(t, models.StatusPending, p.Status)
	}

	rec := s.do(http.MethodPost, "/api/boarding-queue/AI101/enqueue?ticket_id=TKTABC12345", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	enq := decode[map[string]any](t, rec)
	assert.Equal(t, "Passenger added to queue", enq["message"])
	assert.EqualValues(t, 0, enq["position"])

	rec = s.do(http.MethodPost, "/api/boarding-queue/AI101/dequeue", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	deq := decode[struct {
		Message string                   `json:"message"`
		Boarded models.BoardingQueueItem `json:"boarded"`
	}](t, rec)
	assert.Equal(t, "Passenger boarded", deq.Message)
	assert.Equal(t, "TKTABC12345", deq.Boarded.TicketID)
	assert.NotContains(t, rec.Body.String(), "seq")

	p := decode[models.Passenger](t, s.do(http.MethodGet, "/api/passengers/search/TKTABC12345", nil))
	assert.Equal(t, models.StatusBoarded, p.Status)
}

func TestCancelThenPopScenario(t *testing.T) {
	s := newTestServer(t)
	s.seed()
	k := flightByID(t, s, "AI102").BookedSeats
	require.Equal(t, 2, k)

	rec := s.do(http.MethodPost, "/api/cancellations/push?ticket_id=TKTGHI11223", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	pushed := decode[struct {
		Message      string                  `json:"message"`
		Cancellation models.CancellationItem `json:"cancellation"`
	}](t, rec)
	assert.Equal(t, "Cancellation recorded", pushed.Message)
	assert.Equal(t, "TKTGHI11223", pushed.Cancellation.TicketID)
	assert.Equal(t, k-1, flightByID(t, s, "AI102").BookedSeats)

	rec = s.do(http.MethodPost, "/api/cancellations/pop", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	popped := decode[struct {
		Cancellation models.CancellationItem `json:"cancellation"`
	}](t, rec)
	assert.Equal(t, "TKTGHI11223", popped.Cancellation.TicketID)
	assert.Equal(t, k-1, flightByID(t, s, "AI102").BookedSeats)

	rec = s.do(http.MethodPost, "/api/cancellations/pop", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No cancellations found", decode[h.ErrorResponse](t, rec).Detail)
}

func TestErrorStatusMapping(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		detail string
	}{
		{"duplicate airport", http.MethodPost, "/api/airports", models.AirportCreate{Code: "DEL", Name: "x", City: "y"}, http.StatusBadRequest, "Airport code already exists"},
		{"missing airport", http.MethodDelete, "/api/airports/XXX", nil, http.StatusNotFound, "Airport not found"},
		{"unknown destination airport", http.MethodPost, "/api/flights", map[string]any{"flight_id": "Z1", "source_code": "DEL", "destination_code": "XXX", "departure_time": "10:00"}, http.StatusBadRequest, "Source or destination airport not found"},
		{"missing flight", http.MethodDelete, "/api/flights/ZZ000", nil, http.StatusNotFound, "Flight not found"},
		{"booking unknown flight", http.MethodPost, "/api/passengers", models.PassengerCreate{Name: "a", Passport: "b", FlightID: "ZZ000", SeatNumber: "1A"}, http.StatusBadRequest, "Flight not found"},
		{"unknown ticket", http.MethodGet, "/api/passengers/search/TKTNOPE0000", nil, http.StatusNotFound, "Passenger not found"},
		{"flight mismatch", http.MethodPost, "/api/boarding-queue/AI102/enqueue?ticket_id=TKTABC12345", nil, http.StatusBadRequest, "Passenger flight mismatch"},
		{"empty queue", http.MethodPost, "/api/boarding-queue/AI101/dequeue", nil, http.StatusNotFound, "Queue is empty"},
		{"cancel unknown", http.MethodPost, "/api/cancellations/push?ticket_id=TKTNOPE0000", nil, http.StatusNotFound, "Passenger not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(tc.method, tc.path, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			body := decode[h.ErrorResponse](t, rec)
			assert.Equal(t, tc.detail, body.Detail)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	rec := s.do(http.MethodPost, "/api/airports", `{"code":"GOI","name":"Dabolim"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decode[h.ErrorResponse](t, rec).Code)

	rec = s.do(http.MethodPost, "/api/airports", `{"code":"GOI","name":"Dabolim","city":"Goa","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/flights", `{"flight_id":"X1","source_code":"DEL","destination_code":"BOM","departure_time":"25:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[h.ErrorResponse](t, rec).Detail, "departure_time")

	rec = s.do(http.MethodPost, "/api/boarding-queue/AI101/enqueue", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/airports", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateResources(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	rec := s.do(http.MethodPost, "/api/airports", models.AirportCreate{Code: "GOI", Name: "Dabolim", City: "Goa"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[models.Airport](t, rec).ID)

	rec = s.do(http.MethodPost, "/api/flights", map[string]any{
		"flight_id": "AI900", "source_code": "GOI", "destination_code": "DEL", "departure_time": "05:30",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	f := decode[models.FlightRoute](t, rec)
	assert.Equal(t, 180, f.TotalSeats)

	rec = s.do(http.MethodPost, "/api/passengers", models.PassengerCreate{Name: "Meera", Passport: "P9", FlightID: "AI900", SeatNumber: "1A"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	p := decode[models.Passenger](t, rec)
	assert.Regexp(t, `^TKT[0-9A-F]{8}$`, p.TicketID)
	assert.Equal(t, 1, flightByID(t, s, "AI900").BookedSeats)

	heap := decode[[]models.FlightRoute](t, s.do(http.MethodGet, "/api/scheduler/heap", nil))
	assert.Equal(t, "AI900", heap[0].FlightID)

	analytics := decode[models.Analytics](t, s.do(http.MethodGet, "/api/analytics", nil))
	assert.Equal(t, 13, analytics.TotalTickets)
	require.NotNil(t, analytics.UpcomingFlight)
	assert.Equal(t, "AI900", analytics.UpcomingFlight.FlightID)
}

func TestGraphEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	adj := decode[map[string][]models.Neighbor](t, s.do(http.MethodGet, "/api/graph/adjacency-list", nil))
	require.Len(t, adj, 6)
	assert.Len(t, adj["DEL"], 3)

	bfs := decode[models.PathResult](t, s.do(http.MethodGet, "/api/graph/bfs/DEL/CCU", nil))
	dfs := decode[models.PathResult](t, s.do(http.MethodGet, "/api/graph/dfs/DEL/CCU", nil))
	assert.Equal(t, "bfs", bfs.Algorithm)
	assert.Equal(t, "dfs", dfs.Algorithm)
	assert.LessOrEqual(t, bfs.Hops, dfs.Hops)
	assert.Equal(t, "CCU", bfs.Path[len(bfs.Path)-1])

	rec := s.do(http.MethodGet, "/api/graph/bfs/DEL/XXX", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHashTableEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	table := decode[map[string][]models.Passenger](t, s.do(http.MethodGet, "/api/passengers/hash-table", nil))
	require.Len(t, table, 10)
	for _, key := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		_, ok := table[key]
		assert.True(t, ok, "bucket %s missing", key)
	}
}

func TestBulkBooking(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	rec := s.do(http.MethodPost, "/api/passengers/bulk", []models.PassengerCreate{
		{Name: "A", Passport: "1", FlightID: "AI107", SeatNumber: "1A"},
		{Name: "B", Passport: "2", FlightID: "NOPE", SeatNumber: "1B"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[models.BulkResult](t, rec)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Failed)

	rec = s.do(http.MethodPost, "/api/passengers/bulk", `{"name":"not an array"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportImportEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	rec := s.do(http.MethodGet, "/api/export/all-data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[models.Snapshot](t, rec)
	assert.Len(t, snap.Airports, 6)
	assert.Len(t, snap.Flights, 8)
	assert.Len(t, snap.Passengers, 12)

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/reset-system", nil).Code)
	assert.Empty(t, decode[[]models.Airport](t, s.do(http.MethodGet, "/api/airports", nil)))

	rec = s.do(http.MethodPost, "/api/import/data", snap)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]models.Airport](t, s.do(http.MethodGet, "/api/airports", nil)), 6)
	assert.Len(t, decode[[]models.Passenger](t, s.do(http.MethodGet, "/api/passengers", nil)), 12)
}

func TestBoardingPassEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seed()

	rec := s.do(http.MethodGet, "/api/passengers/boarding-pass/TKTABC12345", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "BOARDING_PASS_TKTABC12345.pdf")

	rec = s.do(http.MethodGet, "/api/passengers/boarding-pass/TKTNOPE0000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/health", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/db-check", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/routes", nil).Code)

	rec := s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "airline_http_requests_total")

	rec = s.do(http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
