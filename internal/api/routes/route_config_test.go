package routes

import (
	"net/http/httptest"
	"testing"

	"Grab-N-Go-Backend/internal/middleware"
	"Grab-N-Go-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// stubHandlers satisfies every handler interface and answers 200, so the
// tests below observe only the middleware chain in front of each route.
type stubHandlers struct{}

func (stubHandlers) ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func (s stubHandlers) Register(c *fiber.Ctx) error              { return s.ok(c) }
func (s stubHandlers) Login(c *fiber.Ctx) error                 { return s.ok(c) }
func (s stubHandlers) Me(c *fiber.Ctx) error                    { return s.ok(c) }
func (s stubHandlers) UpdateUser(c *fiber.Ctx) error            { return s.ok(c) }
func (s stubHandlers) SendVerificationEmail(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) VerifyEmail(c *fiber.Ctx) error           { return s.ok(c) }
func (s stubHandlers) ForgotPassword(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) ResetPassword(c *fiber.Ctx) error         { return s.ok(c) }

func (s stubHandlers) CreateCanteen(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) GetAllCanteens(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetCanteenByID(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetMyCanteens(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) UpdateCanteen(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) DeleteCanteen(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) SubmitRequest(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) UpdateRequestStatus(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) GetRequestsForOwner(c *fiber.Ctx) error { return s.ok(c) }

func (s stubHandlers) CreateTiffin(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) GetAllTiffins(c *fiber.Ctx) error   { return s.ok(c) }
func (s stubHandlers) GetTiffinByID(c *fiber.Ctx) error   { return s.ok(c) }
func (s stubHandlers) GetMyTiffins(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) UpdateTiffin(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) DeleteTiffin(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) RequestMess(c *fiber.Ctx) error     { return s.ok(c) }
func (s stubHandlers) GetRequests(c *fiber.Ctx) error     { return s.ok(c) }
func (s stubHandlers) GetSubscribers(c *fiber.Ctx) error  { return s.ok(c) }
func (s stubHandlers) MarkDailyStatus(c *fiber.Ctx) error { return s.ok(c) }

func (s stubHandlers) AddItem(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) GetMenu(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) UpdateItem(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) DeleteItem(c *fiber.Ctx) error { return s.ok(c) }

func (s stubHandlers) CreateOrder(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) GetUserOrders(c *fiber.Ctx) error     { return s.ok(c) }
func (s stubHandlers) GetCanteenOrders(c *fiber.Ctx) error  { return s.ok(c) }
func (s stubHandlers) UpdateOrderStatus(c *fiber.Ctx) error { return s.ok(c) }

func (s stubHandlers) Checkout(c *fiber.Ctx) error           { return s.ok(c) }
func (s stubHandlers) GetPaymentByOrder(c *fiber.Ctx) error  { return s.ok(c) }
func (s stubHandlers) HandleNotification(c *fiber.Ctx) error { return s.ok(c) }

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &Config{
		App:            app,
		UserHandler:    stubHandlers{},
		CanteenHandler: stubHandlers{},
		TiffinHandler:  stubHandlers{},
		MenuHandler:    stubHandlers{},
		OrderHandler:   stubHandlers{},
		PaymentHandler: stubHandlers{},
		Middleware:     middleware.NewMiddleware(),
		JWTService:     jwt.NewJWTService(),
	}
	cfg.Setup()
	return app
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/v1/canteens"},
		{fiber.MethodGet, "/api/v1/canteens/some-id"},
		{fiber.MethodGet, "/api/v1/tiffins"},
		{fiber.MethodGet, "/api/v1/tiffins/some-id"},
		{fiber.MethodGet, "/api/v1/canteen-menus/some-id"},
		{fiber.MethodGet, "/api/ping"},
		{fiber.MethodPost, "/webhook/midtrans"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("%s %s: got status %d, want %d", tt.method, tt.path, resp.StatusCode, fiber.StatusOK)
		}
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/v1/canteens"},
		{fiber.MethodGet, "/api/v1/canteens/mine"},
		{fiber.MethodGet, "/api/v1/canteens/requests"},
		{fiber.MethodPatch, "/api/v1/canteens/some-id"},
		{fiber.MethodDelete, "/api/v1/canteens/some-id"},
		{fiber.MethodPost, "/api/v1/canteens/some-id/requests"},
		{fiber.MethodPatch, "/api/v1/canteens/some-id/requests/user-id"},
		{fiber.MethodPost, "/api/v1/tiffins"},
		{fiber.MethodGet, "/api/v1/tiffins/mine"},
		{fiber.MethodPatch, "/api/v1/tiffins/some-id"},
		{fiber.MethodGet, "/api/v1/tiffins/some-id/subscribers"},
		{fiber.MethodPost, "/api/v1/tiffins/some-id/daily-status"},
		{fiber.MethodPost, "/api/v1/canteen-menus/some-id/items"},
		{fiber.MethodDelete, "/api/v1/canteen-menus/some-id/items/item-id"},
		{fiber.MethodPost, "/api/v1/orders"},
		{fiber.MethodGet, "/api/v1/orders"},
		{fiber.MethodPost, "/api/v1/payments/checkout"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s %s: got status %d, want %d", tt.method, tt.path, resp.StatusCode, fiber.StatusUnauthorized)
		}
	}
}
