package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const loginPageFixture = `<html><head><meta name="csrf-token" content="token-123"></head>
<body><form action="/login"><input name="user[user_name]"><input name="user[password]"></form></body></html>`

const loginFormFixture = `<html><body><form action="/login"><input name="user[user_name]"></form></body></html>`

type portalFixture struct {
	server     *httptest.Server
	username   string
	password   string
	dashboard  string
	loginPage  string
	loggedIn   bool
	recordHits int

	// drop the connection on authenticated record fetches after the login
	// probe, simulating a portal that dies mid-session
	failDashboard bool

	// serve this status with a maintenance page instead of the dashboard,
	// again only after the login probe
	dashboardStatus int
}

// newPortalFixture serves a minimal portal: a login page carrying the CSRF
// meta tag, a form endpoint that starts a session cookie on correct
// credentials, and a student record page that re-renders the login form for
// unauthenticated sessions.
func newPortalFixture(t *testing.T, dashboard string) *portalFixture {
	t.Helper()
	portal := &portalFixture{
		username:  "mu1234",
		password:  "secret",
		dashboard: dashboard,
		loginPage: loginPageFixture,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(portal.loginPage))
	})
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil ||
			r.PostFormValue("authenticity_token") != "token-123" ||
			r.PostFormValue("utf8") != "✓" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(loginFormFixture))
			return
		}

		if r.PostFormValue("user[user_name]") == portal.username &&
			r.PostFormValue("user[password]") == portal.password {
			portal.loggedIn = true
			http.SetCookie(w, &http.Cookie{Name: "_session", Value: "session-abc", Path: "/"})
			http.Redirect(w, r, "/student_record", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(loginFormFixture))
	})
	mux.HandleFunc("GET /student_record", func(w http.ResponseWriter, r *http.Request) {
		portal.recordHits++
		cookie, err := r.Cookie("_session")
		if err != nil || cookie.Value != "session-abc" || !portal.loggedIn {
			w.Write([]byte(loginFormFixture))
			return
		}
		if portal.failDashboard && portal.recordHits >= 3 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}
		if portal.dashboardStatus != 0 && portal.recordHits >= 3 {
			w.WriteHeader(portal.dashboardStatus)
			w.Write([]byte("<html><body>The portal is down for maintenance.</body></html>"))
			return
		}
		w.Write([]byte(portal.dashboard))
	})

	portal.server = httptest.NewServer(mux)
	t.Cleanup(portal.server.Close)
	return portal
}

func (p *portalFixture) config() Config {
	return Config{
		PortalBaseURL:  p.server.URL,
		RequestTimeout: 5 * time.Second,
		UserAgent:      "test-agent",
	}
}

func TestLoginSuccess(t *testing.T) {
	portal := newPortalFixture(t, "<html><body>record</body></html>")
	client, err := newPortalClient(portal.config())
	require.NoError(t, err)

	auth := &authenticator{client: client}
	require.NoError(t, auth.login(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"}))
}

func TestLoginBadCredentials(t *testing.T) {
	portal := newPortalFixture(t, "<html><body>record</body></html>")
	client, err := newPortalClient(portal.config())
	require.NoError(t, err)

	auth := &authenticator{client: client}
	err = auth.login(context.Background(), LoginRequest{Username: "mu1234", Password: "wrong"})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, ErrorUnauthorized, appErr.Kind)
}

func TestLoginMissingCSRFTokenKeepsServiceUnavailableKind(t *testing.T) {
	portal := newPortalFixture(t, "<html><body>record</body></html>")
	portal.loginPage = "<html><head></head><body>maintenance</body></html>"

	client, err := newPortalClient(portal.config())
	require.NoError(t, err)

	auth := &authenticator{client: client}
	err = auth.login(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, ErrorServiceUnavailable, appErr.Kind)
}

func TestLoginPortalDown(t *testing.T) {
	portal := newPortalFixture(t, "")
	cfg := portal.config()
	portal.server.Close()

	client, err := newPortalClient(cfg)
	require.NoError(t, err)

	auth := &authenticator{client: client}
	err = auth.login(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, ErrorServiceUnavailable, appErr.Kind)
}
