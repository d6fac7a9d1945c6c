package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/delivery-ops/internal/api/dto"
	"github.com/spec-kit/delivery-ops/internal/api/http/handlers"
	"github.com/spec-kit/delivery-ops/internal/auth"
	"github.com/spec-kit/delivery-ops/internal/config"
	"github.com/spec-kit/delivery-ops/internal/events"
	"github.com/spec-kit/delivery-ops/internal/observability"
	"github.com/spec-kit/delivery-ops/internal/repository"
	"github.com/spec-kit/delivery-ops/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	store := repository.NewMemoryStore(repository.NewSequenceAllocator(repository.SeedFirstFreeID))
	repository.SeedSampleData(store)

	deps := service.Dependencies{Store: store, Dispatcher: events.NewInMemoryDispatcher(), Logger: logger}
	authService := service.NewAuthService(config.AuthConfig{JWTSecret: "test", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost}, store, logger)
	validator := dto.NewValidator("KE")
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, MiddlewareConfig{CORSAllowOrigins: "*"})
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", nil, nil, metrics, store.Counts),
		Auth:           handlers.NewAuthHandler(authService, validator),
		Branches:       handlers.NewBranchesHandler(service.NewBranchService(deps), validator),
		Agents:         handlers.NewAgentsHandler(service.NewAgentService(deps), validator),
		Customers:      handlers.NewCustomersHandler(service.NewCustomerService(deps), validator),
		Deliveries:     handlers.NewDeliveriesHandler(service.NewDeliveryService(deps), validator),
		Staff:          handlers.NewStaffHandler(service.NewStaffService(deps), service.NewLeaveService(deps), service.NewAttendanceService(deps), validator),
		Reports:        handlers.NewReportsHandler(service.NewDashboardService(deps), service.NewReportService(deps)),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), store),
	})
	return app
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (int, envelope, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	var env envelope
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, env, raw
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, env, _ := do(t, app, fiber.MethodGet, "/api/dashboard/metrics", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	metrics := decode[map[string]any](t, env.Data)
	if metrics["active_agents"] != "2/3" || metrics["overdue_deliveries"] != float64(1) {
		t.Fatalf("unexpected metrics %+v", metrics)
	}
}

func TestCreateConsumesSharedCounter(t *testing.T) {
	app := newTestApp(t)

	requests := []struct {
		path string
		body string
	}{
		{"/api/branches", `{"name":"Shop B","address":"Thika Road"}`},
		{"/api/agents", `{"name":"Kevin","phone":"0712345678","agent_type":"rider","agent_category":"internal"}`},
		{"/api/customers", `{"name":"Ann","phone":"+254722000111"}`},
	}
	for i, r := range requests {
		status, env, raw := do(t, app, fiber.MethodPost, r.path, r.body)
		if status != fiber.StatusCreated {
			t.Fatalf("%s: expected 201, got %d: %s", r.path, status, raw)
		}
		created := decode[map[string]any](t, env.Data)
		if want := float64(10 + i); created["id"] != want {
			t.Fatalf("%s: expected id %v, got %v", r.path, want, created["id"])
		}
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	status, env, _ := do(t, app, fiber.MethodPost, "/api/agents", `{"name":`)
	if status != fiber.StatusBadRequest || env.Error == nil || env.Error.Code != "INVALID_PAYLOAD" {
		t.Fatalf("expected INVALID_PAYLOAD, got %d %+v", status, env.Error)
	}

	status, env, _ = do(t, app, fiber.MethodPost, "/api/agents", `{"phone":"0712345678","agent_type":"rider","agent_category":"internal"}`)
	if status != fiber.StatusBadRequest || env.Error == nil || env.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %d %+v", status, env.Error)
	}
	if env.Error.Details["AgentCreateRequest.name"] != "required" {
		t.Fatalf("expected field detail, got %+v", env.Error.Details)
	}
}

func TestAgentUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)

	status, env, _ := do(t, app, fiber.MethodPut, "/api/agents/1", `{"status":"offline"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	agent := decode[map[string]any](t, env.Data)
	if agent["status"] != "offline" || agent["name"] != "John Kamau" {
		t.Fatalf("unexpected agent %+v", agent)
	}

	if status, _, _ := do(t, app, fiber.MethodPut, "/api/agents/999", `{"status":"busy"}`); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown agent update, got %d", status)
	}
	if status, _, _ := do(t, app, fiber.MethodDelete, "/api/agents/999", ""); status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown agent delete, got %d", status)
	}
	if status, _, _ := do(t, app, fiber.MethodDelete, "/api/agents/3", ""); status != fiber.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", status)
	}
	_, env, _ = do(t, app, fiber.MethodGet, "/api/agents", "")
	if agents := decode[[]map[string]any](t, env.Data); len(agents) != 2 {
		t.Fatalf("expected 2 agents after delete, got %d", len(agents))
	}
}

func TestDeliveryLookups(t *testing.T) {
	app := newTestApp(t)

	status, env, _ := do(t, app, fiber.MethodGet, "/api/deliveries/search/kim-001234", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if d := decode[map[string]any](t, env.Data); d["id"] != float64(1) {
		t.Fatalf("unexpected delivery %+v", d)
	}

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/deliveries/search/NOPE-1", fiber.StatusNotFound, "NOT_FOUND"},
		{"/api/deliveries/99", fiber.StatusNotFound, "NOT_FOUND"},
		{"/api/deliveries/abc", fiber.StatusBadRequest, "VALIDATION_FAILED"},
		{"/api/nothing-here", fiber.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		status, env, _ := do(t, app, fiber.MethodGet, tt.path, "")
		if status != tt.status || env.Error == nil || env.Error.Code != tt.code {
			t.Fatalf("%s: expected %d %s, got %d %+v", tt.path, tt.status, tt.code, status, env.Error)
		}
	}
}

func TestDeliveryCreateAndComplete(t *testing.T) {
	app := newTestApp(t)

	body := `{"invoice_number":"KIM-002222","customer_id":1,"delivery_type":"door",
		"items":[{"name":"Cocoa","quantity":2,"price":"150.50"}],"total_amount":301,
		"payment_method":"mpesa","delivery_address":"Kilimani"}`
	status, env, raw := do(t, app, fiber.MethodPost, "/api/deliveries", body)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, raw)
	}
	created := decode[map[string]any](t, env.Data)
	if created["status"] != "pending" || created["payment_status"] != "pending" || created["completed_at"] != nil {
		t.Fatalf("unexpected defaults %+v", created)
	}

	status, env, _ = do(t, app, fiber.MethodPut, "/api/deliveries/10", `{"status":"completed"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	updated := decode[map[string]any](t, env.Data)
	if updated["completed_at"] == nil || updated["invoice_number"] != "KIM-002222" {
		t.Fatalf("unexpected update %+v", updated)
	}
}

func TestHRRoutes(t *testing.T) {
	app := newTestApp(t)

	status, _, raw := do(t, app, fiber.MethodPost, "/api/leave-requests",
		`{"staff_id":1,"leave_type":"sick","start_date":"2024-03-04T00:00:00Z","end_date":"2024-03-05T00:00:00Z","days":2,"reason":"flu"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, raw)
	}
	status, env, _ := do(t, app, fiber.MethodPut, "/api/leave-requests/10", `{"status":"approved","approved_by":2}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if leave := decode[map[string]any](t, env.Data); leave["reviewed_at"] == nil {
		t.Fatalf("expected reviewed_at, got %+v", leave)
	}

	if status, _, raw := do(t, app, fiber.MethodPost, "/api/attendance", `{"staff_id":2,"date":"2024-03-04T00:00:00Z","is_late":true}`); status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, raw)
	}
	_, env, _ = do(t, app, fiber.MethodGet, "/api/attendance?staff_id=2", "")
	if records := decode[[]map[string]any](t, env.Data); len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if status, _, _ := do(t, app, fiber.MethodGet, "/api/attendance?staff_id=x", ""); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad staff_id, got %d", status)
	}

	if status, _, _ := do(t, app, fiber.MethodPut, "/api/staff/1", `{"role":"Director"}`); status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	status, _, raw := do(t, app, fiber.MethodPost, "/api/auth/register", `{"username":"dispatch","password":"s3cret!"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, raw)
	}
	if status, _, _ := do(t, app, fiber.MethodPost, "/api/auth/register", `{"username":"dispatch","password":"other1"}`); status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", status)
	}

	status, env, _ := do(t, app, fiber.MethodPost, "/api/auth/login", `{"username":"dispatch","password":"s3cret!"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	login := decode[struct {
		Auth dto.AuthResponse `json:"auth"`
	}](t, env.Data)

	if status, _, _ := do(t, app, fiber.MethodGet, "/api/auth/me", ""); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
	status, env, _ = do(t, app, fiber.MethodGet, "/api/auth/me", "", fiber.HeaderAuthorization, "Bearer "+login.Auth.Token)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	me := decode[map[string]any](t, env.Data)
	if me["username"] != "dispatch" || me["role"] != "admin" {
		t.Fatalf("unexpected user %+v", me)
	}
	if _, leaked := me["password"]; leaked {
		t.Fatal("password hash exposed")
	}
}

func TestReportsAndHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/reports/deliveries.xlsx", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK || !strings.Contains(resp.Header.Get(fiber.HeaderContentType), "spreadsheetml") {
		t.Fatalf("unexpected export response %d %q", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}

	status, env, _ := do(t, app, fiber.MethodGet, "/api/reports/summary", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	summary := decode[map[string]any](t, env.Data)
	if _, ok := summary["deliveries_by_status"]; !ok {
		t.Fatalf("unexpected summary %+v", summary)
	}

	status, _, raw := do(t, app, fiber.MethodGet, "/health/ready", "")
	if status != fiber.StatusOK || !strings.Contains(string(raw), "disabled") {
		t.Fatalf("expected ready with disabled deps, got %d %s", status, raw)
	}

	status, env, _ = do(t, app, fiber.MethodGet, "/health/metrics", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	stats := decode[map[string]any](t, env.Data)
	if store, ok := stats["store"].(map[string]any); !ok || store["delivery"] != float64(3) {
		t.Fatalf("unexpected store counts %+v", stats["store"])
	}
}
