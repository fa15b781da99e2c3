package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arzan03/MedicineShop/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app          *fiber.App
	categories   *memCategories
	users        *memUsers
	products     *memProducts
	banners      *memBanners
	testimonials *memTestimonials
	mirror       *recordingMirror
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithTimeout(t, 5*time.Second)
}

func newTestEnvWithTimeout(t *testing.T, queryTimeout time.Duration) *testEnv {
	t.Helper()
	env := &testEnv{
		categories:   &memCategories{},
		users:        &memUsers{},
		products:     &memProducts{},
		banners:      &memBanners{},
		testimonials: &memTestimonials{},
		mirror:       &recordingMirror{},
	}
	env.app = handlers.NewApp(handlers.Deps{
		Categories:   env.categories,
		Users:        env.users,
		Products:     env.products,
		Banners:      env.banners,
		Testimonials: env.testimonials,
		Mirror:       env.mirror,
		Health:       &handlers.HealthHandler{Mongo: stubPinger{}},
	}, handlers.Options{
		Logger:       zerolog.Nop(),
		QueryTimeout: queryTimeout,
	})
	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (e *testEnv) doJSON(t *testing.T, method, path string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.do(t, req)
}

// doMultipart sends fields plus, when image is not nil, an "image" file part.
func (e *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, image []byte) *http.Response {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "picture.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return e.do(t, req)
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func requireStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, string(bodyBytes))
	}
}

func jsonRequest(method, path, raw string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}
