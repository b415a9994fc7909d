package authoring

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"data-marketplace/internal/catalog"
	"data-marketplace/internal/identity"
)

func newAuthoringApp(t *testing.T, api *fakeAPI) (*fiber.App, *catalog.Store) {
	t.Helper()
	store := catalog.NewStore(api, zerolog.Nop())
	store.SetProducts(seed())
	ed := NewEditor(store, api, zerolog.Nop())
	ed.now = func() time.Time { return time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC) }

	app := fiber.New()
	NewHandler(ed, NewColumnSet()).RegisterRoutes(app.Group("/api/authoring"))
	return app, store
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestUpdateProductEndpoint(t *testing.T) {
	api := &fakeAPI{}
	app, store := newAuthoringApp(t, api)

	code, body := do(t, app, "PUT", "/api/authoring/products/5",
		`{"row":{"name":"New","tags":"a, b ,,c"},"previous":{"name":"Old","tags":"x"}}`)
	if code != 200 {
		t.Fatalf("expected 200, got %d %s", code, body)
	}
	if !strings.Contains(body, `"New"`) || !strings.Contains(body, `"2024-05-20"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	got, err := store.Get("5")
	if err != nil || got.Name != "New" || len(got.Tags) != 3 {
		t.Fatalf("store not updated: %+v %v", got, err)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	app, _ := newAuthoringApp(t, &fakeAPI{})
	code, _ := do(t, app, "PUT", "/api/authoring/products/404", `{"row":{},"previous":{}}`)
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestUpdateProductUpstreamFailure(t *testing.T) {
	api := &fakeAPI{serverProducts: seed(), replaceErr: errors.New("catalog down")}
	app, store := newAuthoringApp(t, api)

	code, body := do(t, app, "PUT", "/api/authoring/products/5",
		`{"row":{"name":"New"},"previous":{"name":"Old"}}`)
	if code != fiber.StatusBadGateway || !strings.Contains(body, "failed to update product") {
		t.Fatalf("expected 502, got %d %s", code, body)
	}
	got, _ := store.Get("5")
	if got.Name != "Old" {
		t.Fatalf("optimistic state not discarded: %+v", got)
	}
}

func TestDeleteProductEndpoint(t *testing.T) {
	app, store := newAuthoringApp(t, &fakeAPI{})
	code, body := do(t, app, "DELETE", "/api/authoring/products/5", "")
	if code != 200 || body != "Product deleted" {
		t.Fatalf("unexpected delete response: %d %s", code, body)
	}
	if _, err := store.Get("5"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("product still present")
	}

	code, _ = do(t, app, "DELETE", "/api/authoring/products/5", "")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", code)
	}
}

func TestCreateProductEndpoint(t *testing.T) {
	app, store := newAuthoringApp(t, &fakeAPI{})
	code, body := do(t, app, "POST", "/api/authoring/products", `{
		"name":"Gamma","description":"Quarterly forecast model","purpose":"Planning",
		"type":"AI/ML Model","domain":"Finance","region":"Global","owner":"finance@example.com",
		"classification":"Internal","gxp":"Non-GXP"
	}`)
	if code != fiber.StatusCreated || !strings.Contains(body, "Gamma") {
		t.Fatalf("unexpected create response: %d %s", code, body)
	}
	if len(store.Products()) != 4 {
		t.Fatalf("expected refreshed collection of 4, got %d", len(store.Products()))
	}
}

func TestCreateProductValidation(t *testing.T) {
	api := &fakeAPI{}
	app, _ := newAuthoringApp(t, api)
	code, body := do(t, app, "POST", "/api/authoring/products", `{"domain":"Finance"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", code, body)
	}
	// all missing fields are reported together, nothing reaches the catalog
	for _, want := range []string{"name is required", "description is required", "owner is required", "gxp is required"} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in %s", want, body)
		}
	}
	if strings.Contains(body, "domain is required") {
		t.Fatalf("provided field flagged: %s", body)
	}
	if api.replaceCalls != 0 {
		t.Fatalf("invalid payload persisted")
	}
}

func TestColumnEndpoints(t *testing.T) {
	app, _ := newAuthoringApp(t, &fakeAPI{})

	code, body := do(t, app, "GET", "/api/authoring/columns", "")
	if code != 200 || !strings.Contains(body, `"selected"`) {
		t.Fatalf("unexpected columns response: %d %s", code, body)
	}

	code, body = do(t, app, "POST", "/api/authoring/columns/clear-all", "")
	if code != 200 || !strings.Contains(body, `"selected":["id","name"]`) {
		t.Fatalf("clear-all did not keep floor: %d %s", code, body)
	}

	code, body = do(t, app, "POST", "/api/authoring/columns/tags/toggle", "")
	if code != 200 || !strings.Contains(body, `"tags"`) {
		t.Fatalf("toggle failed: %d %s", code, body)
	}

	code, _ = do(t, app, "POST", "/api/authoring/columns/bogus/toggle", "")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown column, got %d", code)
	}

	code, body = do(t, app, "PUT", "/api/authoring/columns", `{"fields":["id","domain"]}`)
	if code != 200 || !strings.Contains(body, `"selected":["id","domain"]`) {
		t.Fatalf("replace failed: %d %s", code, body)
	}
}

func TestAuthoringSurfaceBehindAdminGate(t *testing.T) {
	api := &fakeAPI{}
	store := catalog.NewStore(api, zerolog.Nop())
	store.SetProducts(seed())
	ed := NewEditor(store, api, zerolog.Nop())

	idStore := identity.NewStore(staticIdentity{identity.Identity{Username: "bob", DisplayName: "bob", Groups: []string{}}}, zerolog.Nop())
	if err := idStore.Load(context.Background()); err != nil {
		t.Fatalf("identity load failed: %v", err)
	}

	app := fiber.New()
	admin := app.Group("/api/authoring", identity.RequireAdmin(idStore))
	NewHandler(ed, NewColumnSet()).RegisterRoutes(admin)

	code, body := do(t, app, "GET", "/api/authoring/columns", "")
	if code != fiber.StatusForbidden || strings.Contains(body, `"columns"`) {
		t.Fatalf("authoring content leaked to non-admin: %d %s", code, body)
	}
}

type staticIdentity struct{ id identity.Identity }

func (s staticIdentity) Fetch(ctx context.Context) (identity.Identity, error) {
	return s.id, nil
}
