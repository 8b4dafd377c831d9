package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medireon/site/pkg/config"
	"github.com/medireon/site/pkg/countdown"
	pkgerrors "github.com/medireon/site/pkg/errors"
	"github.com/medireon/site/pkg/flagstore"
	"github.com/medireon/site/pkg/metrics"
	"github.com/medireon/site/pkg/middleware"
	"github.com/medireon/site/pkg/pricing"
	"github.com/medireon/site/pkg/services"
)

const testVisitor = "7f9c2ba4-e88f-4a1b-9d3c-1e2f3a4b5c6d"

var launchAt = time.Date(2025, 8, 27, 14, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

// steppingClock reads before the launch once and after it from then on.
type steppingClock struct {
	mu    sync.Mutex
	calls int
}

func (s *steppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls == 1 {
		return launchAt.Add(-time.Minute)
	}
	return launchAt.Add(time.Second)
}

type intakeFake struct {
	mu    sync.Mutex
	calls []url.Values
	err   error
	hold  chan struct{}
}

func (f *intakeFake) Submit(_ context.Context, fields url.Values) error {
	f.mu.Lock()
	f.calls = append(f.calls, fields)
	hold, err := f.hold, f.err
	f.mu.Unlock()
	if hold != nil {
		<-hold
	}
	return err
}

func (f *intakeFake) sent() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.calls...)
}

type testEnv struct {
	router   *gin.Engine
	intake   *intakeFake
	store    *flagstore.Memory
	registry *prometheus.Registry
}

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Env: "test", Port: "0"},
		Intake:    config.IntakeConfig{Endpoint: "http://intake.invalid", Timeout: time.Second, InFlightTTL: time.Minute},
		Launch:    config.LaunchConfig{At: launchAt, TickInterval: 10 * time.Millisecond},
		FlagStore: config.FlagStoreConfig{Driver: config.FlagDriverMemory, CookieName: "medireon-subscribed", CookieMaxAge: time.Hour},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"https://www.medireonhealth.com"}},
		RateLimit: config.RateLimitConfig{PerMinute: 600, Burst: 50},
		Demo:      config.DemoConfig{ZoneName: "IST", ZoneOffset: 5*time.Hour + 30*time.Minute, FirstHour: 11, LastHour: 18},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config, clock countdown.Clock) *testEnv {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	if clock == nil {
		clock = fixedClock{now: launchAt.Add(-time.Minute)}
	}

	env := &testEnv{
		intake:   &intakeFake{},
		store:    flagstore.NewMemory(),
		registry: prometheus.NewRegistry(),
	}
	leadMetrics := metrics.NewLeadMetrics(env.registry)
	submissions := services.NewLeadSubmissionService(env.intake, services.NewInFlightGuard(cfg.Intake.InFlightTTL), leadMetrics, nil)
	subscriptions := services.NewSubscriptionService(env.store, nil)

	h := NewHandlers(cfg, submissions, subscriptions, leadMetrics, clock, nil)
	t.Cleanup(h.Shutdown)
	env.router = NewRouter(h, cfg, nil, env.registry)
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func getRequest(target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: testVisitor})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func postForm(target string, form url.Values, asJSON bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: testVisitor})
	if asJSON {
		req.Header.Set("Accept", "application/json")
	}
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	rec := env.do(getRequest("/health"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	req := getRequest("/health")
	req.Header.Set("X-Request-Id", "req-123")

	assert.Equal(t, "req-123", env.do(req).Header().Get("X-Request-Id"))
}

func TestPricingEndpoint(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(getRequest("/api/pricing?currency=USD"))
	require.Equal(t, http.StatusOK, rec.Code)
	var quote pricing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, pricing.USD, quote.Currency)
	assert.Equal(t, "$91", quote.Plans[0].Price)

	rec = env.do(getRequest("/api/pricing?currency=XYZ"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, pricing.INR, quote.Currency)
	assert.Equal(t, "₹7599", quote.Plans[0].Price)
}

func TestCountdownEndpoint(t *testing.T) {
	env := newTestEnv(t, nil, fixedClock{now: launchAt.Add(-time.Minute)})
	var snap countdown.Snapshot
	require.NoError(t, json.Unmarshal(env.do(getRequest("/api/countdown")).Body.Bytes(), &snap))
	assert.Equal(t, "00:00:01:00", snap.Display)
	assert.False(t, snap.Launched)

	env = newTestEnv(t, nil, fixedClock{now: launchAt.Add(time.Hour)})
	require.NoError(t, json.Unmarshal(env.do(getRequest("/api/countdown")).Body.Bytes(), &snap))
	assert.Equal(t, "00:00:00:00", snap.Display)
	assert.True(t, snap.Launched)
}

func TestCountdownStreamEndsAfterLaunch(t *testing.T) {
	env := newTestEnv(t, nil, &steppingClock{})
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/countdown/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	stream := string(body)
	tick := strings.Index(stream, "event:tick")
	launched := strings.Index(stream, "event:launched")
	require.NotEqual(t, -1, tick)
	require.NotEqual(t, -1, launched)
	assert.Less(t, tick, launched)
	assert.Contains(t, stream, `"display":"00:00:01:00"`)
	assert.Contains(t, stream, `"display":"00:00:00:00"`)
}

func TestLaunchPageShowsCountdownThenLaunched(t *testing.T) {
	env := newTestEnv(t, nil, fixedClock{now: launchAt.Add(-time.Minute)})
	body := env.do(getRequest("/launch")).Body.String()
	assert.Contains(t, body, `data-unit="minutes">01<`)
	assert.Contains(t, body, `action="/forms/launch"`)

	env = newTestEnv(t, nil, fixedClock{now: launchAt})
	body = env.do(getRequest("/launch")).Body.String()
	assert.Contains(t, body, `id="launched"`)
	assert.NotContains(t, body, `id="countdown"`)
}

func TestLaunchGateAfterTargetHasNoSignup(t *testing.T) {
	env := newTestEnv(t, nil, fixedClock{now: launchAt.Add(time.Hour)})
	rec := env.do(getRequest("/launch"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-launched="true"`)
	assert.NotContains(t, body, `id="launch-signup"`)
	assert.NotContains(t, body, `action="/forms/launch"`)
}

func TestLaunchSignupSetsFlagAndRedirects(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(postForm("/forms/launch", url.Values{"email": {" a@b.com "}}, false))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/launch?notice=launch", rec.Header().Get("Location"))

	flag := findCookie(rec, "medireon-subscribed")
	require.NotNil(t, flag)
	assert.Equal(t, "true", flag.Value)

	sent := env.intake.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "email=a%40b.com&launch=true", sent[0].Encode())

	body := env.do(getRequest("/launch?notice=launch", flag)).Body.String()
	assert.Contains(t, body, `id="launch-thanks"`)
	assert.NotContains(t, body, `action="/forms/launch"`)
	assert.Contains(t, body, "You&#39;re on the list!")
}

func TestNewsletterFlagPersistsServerSide(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(postForm("/forms/newsletter", url.Values{"email": {"a@b.com"}}, false))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=newsletter#contact", rec.Header().Get("Location"))

	ok, err := env.store.Load(context.Background(), testVisitor)
	require.NoError(t, err)
	assert.True(t, ok)

	// no flag cookie: the store alone drives the thank-you
	body := env.do(getRequest("/")).Body.String()
	assert.Contains(t, body, `id="newsletter-thanks"`)
	assert.NotContains(t, body, `action="/forms/newsletter"`)
}

func TestInvalidEmailRerendersInline(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(postForm("/forms/newsletter", url.Values{"email": {"notanemail"}}, false))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, `value="notanemail"`)
	assert.Empty(t, env.intake.sent())
	assert.Nil(t, findCookie(rec, "medireon-subscribed"))
}

func TestInvalidSubmissionJSON(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(postForm("/forms/demo", url.Values{"name": {"Asha"}, "email": {""}}, true))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, string(pkgerrors.CodeValidation), payload.Error.Code)
	assert.Equal(t, "Email is required", payload.Error.Details["email"])
	assert.Equal(t, "Please select a date", payload.Error.Details["date"])
	assert.Equal(t, "Please select a time", payload.Error.Details["time"])
	assert.NotContains(t, payload.Error.Details, "name")
}

func TestTransportFailureKeepsInput(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.intake.err = pkgerrors.New(pkgerrors.CodeDependency, "intake unreachable")

	form := url.Values{"name": {"Asha"}, "email": {"asha@clinic.in"}, "date": {"2025-09-01"}, "time": {"11 AM IST"}}
	rec := env.do(postForm("/forms/demo", form, false))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Something went wrong. Please try again later.")
	assert.Contains(t, body, `value="asha@clinic.in"`)
	assert.Contains(t, body, `id="demo-modal"`)

	rec = env.do(postForm("/forms/newsletter", url.Values{"email": {"a@b.com"}}, true))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Nil(t, findCookie(rec, "medireon-subscribed"))
}

func TestPlanInquiryIsPricedServerSide(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	form := url.Values{
		"plan":     {"pro"},
		"currency": {"USD"},
		"price":    {"$1"},
		"name":     {"Asha"},
		"email":    {"asha@clinic.in"},
		"phone":    {"9876543210"},
		"address":  {"Kolkata"},
		"purpose":  {"Hospital rollout"},
	}
	rec := env.do(postForm("/forms/plan", form, false))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?currency=USD&notice=plan", rec.Header().Get("Location"))

	sent := env.intake.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Pro", sent[0].Get("plan"))
	assert.Equal(t, "$151", sent[0].Get("price"))

	form.Set("plan", "Enterprise")
	assert.Equal(t, http.StatusNotFound, env.do(postForm("/forms/plan", form, true)).Code)
}

func TestUnknownPlanRerendersForBrowsers(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	form := url.Values{
		"plan":     {"Gold"},
		"currency": {"GBP"},
		"name":     {"Asha"},
		"email":    {"asha@clinic.in"},
		"phone":    {"9876543210"},
		"address":  {"Kolkata"},
		"purpose":  {"Hospital rollout"},
	}
	rec := env.do(postForm("/forms/plan", form, false))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Something went wrong. Please try again later.")
	assert.Contains(t, body, "£72")
	assert.Empty(t, env.intake.sent())
}

func TestDuplicateSubmitRerendersWhileFirstIsInFlight(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.intake.hold = make(chan struct{})

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- env.do(postForm("/forms/newsletter", url.Values{"email": {"a@b.com"}}, false))
	}()
	require.Eventually(t, func() bool { return len(env.intake.sent()) == 1 }, time.Second, 5*time.Millisecond)

	rec := env.do(postForm("/forms/newsletter", url.Values{"email": {"again@b.com"}}, false))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Your previous request is still being sent.")
	assert.Contains(t, body, `value="again@b.com"`)

	close(env.intake.hold)
	assert.Equal(t, http.StatusSeeOther, (<-first).Code)
	assert.Len(t, env.intake.sent(), 1)
}

func TestSubmitJSONSuccess(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(postForm("/forms/launch", url.Values{"email": {"a@b.com"}}, true))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestFormRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{PerMinute: 1, Burst: 1}
	env := newTestEnv(t, cfg, nil)

	assert.Equal(t, http.StatusSeeOther, env.do(postForm("/forms/newsletter", url.Values{"email": {"a@b.com"}}, false)).Code)

	rec := env.do(postForm("/forms/newsletter", url.Values{"email": {"a@b.com"}}, false))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// pages are not throttled
	assert.Equal(t, http.StatusOK, env.do(getRequest("/")).Code)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/forms/newsletter", nil)
	req.Header.Set("Origin", "https://www.medireonhealth.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := env.do(req)

	assert.Less(t, rec.Code, http.StatusMultipleChoices)
	assert.Equal(t, "https://www.medireonhealth.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, env.intake.sent())
}

func TestHomePageState(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	body := env.do(getRequest("/?currency=GBP&faq=0&modal=demo")).Body.String()
	assert.Contains(t, body, `data-price="Basic">£72<`)
	assert.Contains(t, body, `id="demo-modal"`)
	assert.Contains(t, body, `min="2025-08-28"`)
	assert.Contains(t, body, "11 AM IST")
	assert.Contains(t, body, "6 PM IST")
}

func TestVisitorCookieIssued(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	visitor := findCookie(rec, middleware.VisitorCookie)
	require.NotNil(t, visitor)
	assert.True(t, visitor.HttpOnly)

	// a valid cookie is kept as is
	assert.Nil(t, findCookie(env.do(getRequest("/health")), middleware.VisitorCookie))
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.do(postForm("/forms/launch", url.Values{"email": {"a@b.com"}}, false))

	body := env.do(getRequest("/metrics")).Body.String()
	assert.Contains(t, body, `lead_submissions_total{form="launch",outcome="delivered"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	assert.Equal(t, http.StatusNotFound, env.do(getRequest("/nope")).Code)
}
