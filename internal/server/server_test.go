package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	cartdomain "github.com/octolab/storefront/internal/cart/domain"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/config"
	contactdomain "github.com/octolab/storefront/internal/contact/domain"
	finderdomain "github.com/octolab/storefront/internal/finder/domain"
	guidedomain "github.com/octolab/storefront/internal/guide/domain"
	sessiondomain "github.com/octolab/storefront/internal/session/domain"
	"go.uber.org/zap"
)

type fakeCatalogService struct {
	products []catalogdomain.Response
}

func (f *fakeCatalogService) List(ctx context.Context) ([]catalogdomain.Response, error) {
	return f.products, nil
}

func (f *fakeCatalogService) GetBySlug(ctx context.Context, slug string) (*catalogdomain.Response, error) {
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], nil
		}
	}
	return nil, catalogdomain.ErrNotFound
}

func (f *fakeCatalogService) GetByID(ctx context.Context, id string) (*catalogdomain.Response, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, catalogdomain.ErrNotFound
}

func (f *fakeCatalogService) Categories(ctx context.Context) ([]string, error) {
	return []string{"Recovery", "Cosmetic"}, nil
}

type fakeCartService struct {
	cart        cartdomain.Response
	addCalls    int
	lastProduct string
	removeCalls int
	clearCalls  int
	updateCalls int
	lastDelta   int
	addErr      error
}

func (f *fakeCartService) Create(ctx context.Context) (*cartdomain.Response, error) {
	return &f.cart, nil
}

func (f *fakeCartService) Get(ctx context.Context, cartID string) (*cartdomain.Response, error) {
	return &f.cart, nil
}

func (f *fakeCartService) AddItem(ctx context.Context, cartID, productID string) (*cartdomain.Response, error) {
	f.addCalls++
	f.lastProduct = productID
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &f.cart, nil
}

func (f *fakeCartService) RemoveItem(ctx context.Context, cartID, productID string) (*cartdomain.Response, error) {
	f.removeCalls++
	f.lastProduct = productID
	return &f.cart, nil
}

func (f *fakeCartService) UpdateQuantity(ctx context.Context, cartID, productID string, delta int) (*cartdomain.Response, error) {
	f.updateCalls++
	f.lastProduct = productID
	f.lastDelta = delta
	return &f.cart, nil
}

func (f *fakeCartService) Clear(ctx context.Context, cartID string) (*cartdomain.Response, error) {
	f.clearCalls++
	return &f.cart, nil
}

type fakeSessionService struct {
	session        sessiondomain.Response
	ensureCalls    int
	openCartCalls  int
	closeCartCalls int
	navigateCalls  int
	lastView       string
	selectCalls    int
	lastSlug       string
}

func (f *fakeSessionService) Ensure(ctx context.Context, token string) (*sessiondomain.Response, error) {
	f.ensureCalls++
	out := f.session
	return &out, nil
}

func (f *fakeSessionService) NavigateTo(ctx context.Context, token, view string) (*sessiondomain.Response, error) {
	f.navigateCalls++
	f.lastView = view
	normalized, ok := sessiondomain.ParseView(view)
	if !ok {
		return nil, sessiondomain.ErrInvalidView
	}
	if normalized == sessiondomain.ViewProduct {
		return nil, sessiondomain.ErrProductRequired
	}
	out := f.session
	out.CurrentView = normalized
	out.CartOpen = false
	return &out, nil
}

func (f *fakeSessionService) SelectProduct(ctx context.Context, token, slug string) (*sessiondomain.Response, error) {
	f.selectCalls++
	f.lastSlug = slug
	out := f.session
	out.CurrentView = sessiondomain.ViewProduct
	out.SelectedProductSlug = &slug
	return &out, nil
}

func (f *fakeSessionService) OpenCart(ctx context.Context, token string) (*sessiondomain.Response, error) {
	f.openCartCalls++
	out := f.session
	out.CartOpen = true
	return &out, nil
}

func (f *fakeSessionService) CloseCart(ctx context.Context, token string) (*sessiondomain.Response, error) {
	f.closeCartCalls++
	out := f.session
	out.CartOpen = false
	return &out, nil
}

type fakeGuideService struct {
	guides []guidedomain.Response
}

func (f *fakeGuideService) List(ctx context.Context) ([]guidedomain.Response, error) {
	return f.guides, nil
}

func (f *fakeGuideService) GetBySlug(ctx context.Context, slug string) (*guidedomain.Response, error) {
	for i := range f.guides {
		if f.guides[i].Slug == slug {
			return &f.guides[i], nil
		}
	}
	return nil, guidedomain.ErrNotFound
}

type fakeFinderService struct{}

func (f *fakeFinderService) Questions() []finderdomain.Question {
	return []finderdomain.Question{{ID: 1, Question: "focus?"}}
}

func (f *fakeFinderService) Recommend(ctx context.Context, req finderdomain.RecommendRequest) ([]finderdomain.Recommendation, error) {
	if len(req.Answers) == 0 {
		return nil, finderdomain.ErrNoAnswers
	}
	return nil, nil
}

type fakeContactService struct {
	submitCalls int
	lastReq     contactdomain.SubmitRequest
	submitErr   error
}

func (f *fakeContactService) Submit(ctx context.Context, req contactdomain.SubmitRequest) (*contactdomain.Response, error) {
	f.submitCalls++
	f.lastReq = req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &contactdomain.Response{ID: "1", Subject: req.Subject, Status: contactdomain.StatusSucceeded}, nil
}

func (f *fakeContactService) Get(ctx context.Context, id string) (*contactdomain.Response, error) {
	if id != "1" {
		return nil, contactdomain.ErrNotFound
	}
	return &contactdomain.Response{ID: "1", Status: contactdomain.StatusFailed}, nil
}

func (f *fakeContactService) Retry(ctx context.Context, id string) (*contactdomain.Response, error) {
	if id != "1" {
		return nil, contactdomain.ErrNotFound
	}
	return &contactdomain.Response{ID: "1", Status: contactdomain.StatusSucceeded}, nil
}

type testFixture struct {
	server  *Server
	session *fakeSessionService
	cart    *fakeCartService
	contact *fakeContactService
}

func newTestServer(t *testing.T) *testFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessionSvc := &fakeSessionService{
		session: sessiondomain.Response{
			Token:       "tok-1",
			CartID:      "10",
			CurrentView: sessiondomain.ViewHome,
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}
	cartSvc := &fakeCartService{
		cart: cartdomain.Response{ID: "10"},
	}
	contactSvc := &fakeContactService{}

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := &Server{
		engine: engine,
		cfg: config.Config{
			SessionCookieName: "octolab_session",
			SessionTTL:        time.Hour,
		},
		log: zap.NewNop(),
		storefront: config.NewStaticStorefrontConfigHolder(
			config.DefaultStorefrontConfig(),
		),
		catalogSvc: &fakeCatalogService{
			products: []catalogdomain.Response{
				{ID: "1", Slug: "bpc-157", Name: "BPC-157", PriceCents: 5500, DisplayPrice: "$55.00", Category: "Recovery"},
				{ID: "2", Slug: "ghk-cu", Name: "GHK-Cu", PriceCents: 4500, DisplayPrice: "$45.00", Category: "Cosmetic"},
			},
		},
		cartSvc:    cartSvc,
		sessionSvc: sessionSvc,
		guideSvc: &fakeGuideService{
			guides: []guidedomain.Response{{ID: "1", Slug: "purity", Title: "Purity"}},
		},
		finderSvc:  &fakeFinderService{},
		contactSvc: contactSvc,
	}
	srv.RegisterAPIRoutes()
	srv.RegisterUIRoutes()

	return &testFixture{server: srv, session: sessionSvc, cart: cartSvc, contact: contactSvc}
}

func (f *testFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	f.server.engine.ServeHTTP(resp, req)
	return resp
}

func TestAddCartItemOpensCartOverlay(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/cart/items", `{"product_id":"1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if f.cart.addCalls != 1 || f.cart.lastProduct != "1" {
		t.Fatalf("expected one add call for product 1, got %d (%q)", f.cart.addCalls, f.cart.lastProduct)
	}
	if f.session.openCartCalls != 1 {
		t.Fatalf("expected add to open the cart overlay, open calls = %d", f.session.openCartCalls)
	}

	var payload struct {
		CartOpen bool `json:"cart_open"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.CartOpen {
		t.Fatal("expected cart_open=true after add")
	}
}

func TestAddCartItemRequiresProductID(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/cart/items", `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if f.cart.addCalls != 0 {
		t.Fatal("expected no cart mutation on invalid request")
	}
}

func TestSessionCookieIssuedOnFirstRequest(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodGet, "/api/v1/session", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	cookie := resp.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "octolab_session=tok-1") {
		t.Fatalf("expected session cookie, got %q", cookie)
	}
	if strings.Contains(resp.Body.String(), "tok-1") {
		t.Fatal("session token must not appear in the response body")
	}
}

func TestGetProductBySlugNotFound(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodGet, "/api/v1/catalog/melanotan-ii", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "product_not_found") {
		t.Fatalf("expected product_not_found error, got %s", resp.Body.String())
	}
}

func TestListCatalogFiltersByCategory(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodGet, "/api/v1/catalog?category=Cosmetic", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload struct {
		Data []catalogdomain.Response `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Slug != "ghk-cu" {
		t.Fatalf("expected only ghk-cu, got %+v", payload.Data)
	}
}

func TestNavigateRejectsProductView(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/session/navigate", `{"view":"product"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "product_required") {
		t.Fatalf("expected product_required error, got %s", resp.Body.String())
	}
}

func TestNavigateUnknownView(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/session/navigate", `{"view":"checkout"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSelectProductRequiresSlug(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/session/select-product", `{"slug":""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if f.session.selectCalls != 0 {
		t.Fatal("expected no select call on empty slug")
	}
}

func TestSubmitContactPassesRequestThrough(t *testing.T) {
	f := newTestServer(t)

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","subject":"general_inquiry","message":"hi"}`
	resp := f.do(t, http.MethodPost, "/api/v1/contact", body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	if f.contact.submitCalls != 1 {
		t.Fatalf("expected one submit call, got %d", f.contact.submitCalls)
	}
	if f.contact.lastReq.Email != "ada@example.com" {
		t.Fatalf("unexpected request payload: %+v", f.contact.lastReq)
	}
}

func TestSubmitContactValidationMapsTo400(t *testing.T) {
	f := newTestServer(t)
	f.contact.submitErr = contactdomain.ErrInvalidEmail

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"nope","subject":"general_inquiry","message":"hi"}`
	resp := f.do(t, http.MethodPost, "/api/v1/contact", body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRetryContactUnknownSubmission(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/contact/2/retry", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown submission, got %d", resp.Code)
	}
}

func TestQualityRedirectsToAbout(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodGet, "/quality", "")
	if resp.Code != http.StatusMovedPermanently {
		t.Fatalf("expected status 301, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/about" {
		t.Fatalf("expected redirect to /about, got %q", loc)
	}
}

func TestFinderRecommendRejectsEmptyAnswers(t *testing.T) {
	f := newTestServer(t)

	resp := f.do(t, http.MethodPost, "/api/v1/finder/recommend", `{"answers":{}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
