package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/storage/memory"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
	"github.com/blackpdx/ggokka-ot/internal/web"
	"github.com/blackpdx/ggokka-ot/internal/web/session"
	"github.com/blackpdx/ggokka-ot/internal/web/sse"
)

const testPassword = "secret12!"

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t           *testing.T
	handler     http.Handler
	storage     *memory.Storage
	authService *auth.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	sessions    *session.Store
	hubManager  *sse.HubManager
	cookies     *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := testutil.NopLogger()
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	authService := auth.New(store, clk, auth.Config{BcryptCost: bcrypt.MinCost})
	catalogService := catalog.New(rnd)
	hubManager := sse.NewHubManager(logger)

	sessions := session.NewStore(session.Config{
		Flow: flow.Config{
			BackPolicy:  flow.BackLinear,
			Unavailable: []model.Screen{model.ScreenVirtualFitting},
		},
		Styles: catalogService.StyleNames(),
	}, clk, logger)

	router := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		Clock:          clk,
		AuthService:    authService,
		CatalogService: catalogService,
		Analyzer:       analysis.New(clk, analysis.DefaultDelay, logger),
		Sessions:       sessions,
		HubManager:     hubManager,
	})

	return &webTestServer{
		t:           t,
		handler:     router,
		storage:     store,
		authService: authService,
		clock:       clk,
		random:      rnd,
		sessions:    sessions,
		hubManager:  hubManager,
		cookies:     newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows the Location header of a redirect response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect, got body %q", rr.Body.String())
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// submit posts a form and returns the page it redirects to
func (ts *webTestServer) submit(path string, form url.Values) *goquery.Document {
	ts.t.Helper()
	rr := ts.followRedirect(ts.post(path, form))
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// fire posts a flow event and returns the resulting page
func (ts *webTestServer) fire(event model.Event) *goquery.Document {
	ts.t.Helper()
	return ts.submit("/app/event", url.Values{"event": {string(event)}})
}

// page renders the current screen
func (ts *webTestServer) page(path string) *goquery.Document {
	ts.t.Helper()
	rr := ts.get(path)
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// sessionID returns the app session cookie value
func (j *cookieJar) sessionID() string {
	if c, ok := j.cookies[session.CookieName]; ok {
		return c.Value
	}
	return ""
}

// Helper functions for common test operations

// registerUser creates an account directly through the auth service
func (ts *webTestServer) registerUser(name, email string) {
	ts.t.Helper()
	_, err := ts.authService.Signup(ts.t.Context(), auth.SignupRequest{
		Name:     name,
		Email:    email,
		Password: testPassword,
	})
	require.NoError(ts.t, err)
}

// toLogin walks from a fresh session to the login screen
func (ts *webTestServer) toLogin() {
	ts.t.Helper()
	ts.page("/app")
	doc := ts.fire(model.EventGetStarted)
	assertScreen(ts.t, doc, model.ScreenLogin)
}

// loginAs registers a user and logs in, landing on home
func (ts *webTestServer) loginAs(name, email string) *goquery.Document {
	ts.t.Helper()
	ts.registerUser(name, email)
	ts.toLogin()
	doc := ts.submit("/app/login", url.Values{"email": {email}, "password": {testPassword}})
	assertScreen(ts.t, doc, model.ScreenHome)
	return doc
}

// signupThrough fills in all three signup steps and submits them
func (ts *webTestServer) signupThrough(name, email string) *goquery.Document {
	ts.t.Helper()
	ts.toLogin()
	ts.fire(model.EventGoToSignup)

	doc := ts.submit("/app/signup", url.Values{
		"action": {"next"}, "name": {name}, "email": {email}, "password": {testPassword},
	})
	assertContainsElement(ts.t, doc, `p.step[data-step="2"]`)

	doc = ts.submit("/app/signup", url.Values{"action": {"next"}, "ageGroup": {"20"}})
	assertContainsElement(ts.t, doc, `p.step[data-step="3"]`)

	ts.submit("/app/signup", url.Values{"action": {"toggle"}, "style": {"미니멀"}})
	return ts.submit("/app/signup", url.Values{"action": {"submit"}})
}

// Assertion helpers

// assertScreen asserts which screen the page shows
func assertScreen(t *testing.T, doc *goquery.Document, screen model.Screen) {
	t.Helper()
	got, _ := doc.Find("main#screen").Attr("data-screen")
	if got != string(screen) {
		t.Errorf("Expected screen %q, got %q (flash %q)", screen, got, doc.Find(".flash").Text())
	}
}

// assertFlash asserts the page shows a flash message of the given type containing text
func assertFlash(t *testing.T, doc *goquery.Document, flashType, text string) {
	t.Helper()
	assertContainsText(t, doc, ".flash-"+flashType, text)
}

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
