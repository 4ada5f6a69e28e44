package server_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"stock-api/core/middleware/jsonbody"
	"stock-api/core/server"
	"stock-api/feature/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// echoRouter stands in for the database router and reports what it received.
func echoRouter() *fiber.App {
	router := fiber.New()
	router.All("/*", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"method": c.Method(),
			"path":   "/" + c.Params("*"),
			"body":   jsonbody.Body(c),
		})
	})
	return router
}

func setupServer(t *testing.T, cfg server.Config) *server.Server {
	t.Helper()
	return server.New(cfg, zap.NewNop(), echoRouter())
}

func TestHello(t *testing.T) {
	srv := setupServer(t, server.Config{})

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"message":"Hello world!"}`, string(body))
}

func TestNotFound(t *testing.T) {
	srv := setupServer(t, server.Config{})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"Unknown Path", "GET", "/unknown", 404},
		{"Nested Unknown Path", "PUT", "/data/base", 404},
		{"Swagger Disabled", "GET", "/swagger/index.html", 404},
		// Fiber answers a known path with the wrong method with 405
		{"Root With Other Method", "POST", "/", 405},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.App().Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestDatabaseMount(t *testing.T) {
	srv := setupServer(t, server.Config{})

	t.Run("Forwards Method And Path", func(t *testing.T) {
		resp, err := srv.App().Test(httptest.NewRequest("DELETE", "/database/quotations/42", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "DELETE", body["method"])
		assert.Equal(t, "/quotations/42", body["path"])
	})

	t.Run("Forwards Parsed Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/database/fundamentals", strings.NewReader(`[{"ticker":"ABCD3"}]`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := srv.App().Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "POST", body["method"])
		assert.Equal(t, []any{map[string]any{"ticker": "ABCD3"}}, body["body"])
	})

	t.Run("Unmounted", func(t *testing.T) {
		bare := server.New(server.Config{}, zap.NewNop(), nil)
		resp, err := bare.App().Test(httptest.NewRequest("GET", "/database/anything", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestMalformedJSON(t *testing.T) {
	srv := setupServer(t, server.Config{})

	for _, path := range []string{"/", "/unknown", "/database/fundamentals"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("POST", path, strings.NewReader(`{bad json`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := srv.App().Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestRayIDHeader(t *testing.T) {
	srv := setupServer(t, server.Config{})

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

func TestIdleTimeoutConfigured(t *testing.T) {
	srv := setupServer(t, server.Config{})
	assert.Equal(t, 1200000*time.Millisecond, srv.App().Config().IdleTimeout)
}

func TestListen(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := server.New(server.Config{Port: "0"}, zap.New(core), echoRouter())

	ln, err := srv.Bind()
	require.NoError(t, err)
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	port := ln.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://127.0.0.1:%d/", port)

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	// Bind and Serve alone do not announce readiness
	assert.Equal(t, 0, logs.Len())
}

func TestListen_Readiness(t *testing.T) {
	probe, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(probe.Addr().(*net.TCPAddr).Port)
	require.NoError(t, probe.Close())

	core, logs := observer.New(zap.InfoLevel)
	srv := server.New(server.Config{Port: port}, zap.New(core), echoRouter())

	go func() { _ = srv.Listen() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == 200
	}, 2*time.Second, 20*time.Millisecond)
	t.Cleanup(func() { _ = srv.Shutdown() })

	entries := logs.FilterMessage("Server running").All()
	require.Len(t, entries, 1)
	assert.Equal(t, port, entries[0].ContextMap()["port"])
}

func TestListen_BindFailure(t *testing.T) {
	busy, err := net.Listen("tcp4", ":0")
	require.NoError(t, err)
	defer busy.Close()

	core, logs := observer.New(zap.InfoLevel)
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)
	srv := server.New(server.Config{Port: port}, zap.New(core), nil)

	err = srv.Listen()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind port "+port)
	assert.Equal(t, 0, logs.Len())
}

func TestListen_InvalidPort(t *testing.T) {
	srv := server.New(server.Config{Port: "not-a-port"}, zap.NewNop(), nil)
	assert.Error(t, srv.Listen())
}

func TestSwagger(t *testing.T) {
	srv := server.New(server.Config{Swagger: true}, zap.NewNop(), nil)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestSwagger_DocumentsEveryRoute(t *testing.T) {
	srv := server.New(server.Config{Swagger: true}, zap.NewNop(), nil)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))

	type route struct{ path, method string }
	routes := []route{{"/", "get"}}
	param := regexp.MustCompile(`:(\w+)`)
	router := database.NewRouter(database.NewService(nil, nil, "", "", zap.NewNop()))
	for _, r := range router.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		routes = append(routes, route{
			path:   server.DatabasePrefix + param.ReplaceAllString(r.Path, "{$1}"),
			method: strings.ToLower(r.Method),
		})
	}
	require.Len(t, routes, 12)

	for _, r := range routes {
		if assert.Contains(t, doc.Paths, r.path, "undocumented path") {
			assert.Contains(t, doc.Paths[r.path], r.method, "undocumented %s %s", r.method, r.path)
		}
	}
}
