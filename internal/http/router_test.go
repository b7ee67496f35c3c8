package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/authdemo/internal/platform/config"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newServer(t *testing.T, scheme string) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "login.html"), []byte("<h1>login</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	h, err := Build(config.Config{
		Port:            ":0",
		StaticDir:       dir,
		PasswordScheme:  scheme,
		BcryptCost:      4,
		ShutdownTimeout: time.Second,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, dir
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, response) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestSignupLoginFlow(t *testing.T) {
	for _, scheme := range []string{"plain", "bcrypt"} {
		t.Run(scheme, func(t *testing.T) {
			srv, _ := newServer(t, scheme)
			creds := `{"email":"a@x.com","password":"p1"}`

			resp, out := post(t, srv, "/api/signup", creds)
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			assert.Equal(t, response{true, "Registration successful."}, out)
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

			resp, out = post(t, srv, "/api/signup", creds)
			assert.Equal(t, http.StatusConflict, resp.StatusCode)
			assert.Equal(t, response{false, "User already exists."}, out)

			resp, out = post(t, srv, "/api/login", creds)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.True(t, out.Success)

			resp, out = post(t, srv, "/api/login", `{"email":"a@x.com","password":"wrong"}`)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, response{false, "Invalid email or password."}, out)

			resp, _ = post(t, srv, "/api/login", `{"email":"b@x.com","password":"p1"}`)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			resp, out = post(t, srv, "/api/login", `{"email":"a@x.com"}`)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, response{false, "Missing email or password."}, out)
		})
	}
}

func TestBuildIsolatesStores(t *testing.T) {
	a, _ := newServer(t, "plain")
	b, _ := newServer(t, "plain")

	resp, _ := post(t, a, "/api/signup", `{"email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = post(t, b, "/api/login", `{"email":"a@x.com","password":"p1"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStaticFiles(t *testing.T) {
	srv, _ := newServer(t, "plain")

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp, err = http.Get(srv.URL + "/style.css")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/missing.js")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHeadServesGetRoutes(t *testing.T) {
	srv, _ := newServer(t, "plain")

	for _, path := range []string{"/", "/style.css"} {
		resp, err := http.Head(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "HEAD %s", path)
	}
}

func TestHomeWithoutLoginPage(t *testing.T) {
	srv, dir := newServer(t, "plain")
	require.NoError(t, os.Remove(filepath.Join(dir, "login.html")))

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreflight(t *testing.T) {
	srv, _ := newServer(t, "plain")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/signup", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://127.0.0.1:5500")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestBuildUnknownScheme(t *testing.T) {
	_, err := Build(config.Config{PasswordScheme: "rot13"})
	assert.Error(t, err)
}
