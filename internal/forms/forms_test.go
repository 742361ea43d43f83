package forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
)

// fakeAPI - тестовый сервер API аутентификации, считающий запросы
type fakeAPI struct {
	server   *httptest.Server
	calls    atomic.Int32
	bodies   chan map[string]any
	arrived  chan struct{}
	release  chan struct{}
	blocking bool
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{
		bodies:  make(chan map[string]any, 10),
		arrived: make(chan struct{}, 10),
		release: make(chan struct{}),
		status:  status,
		body:    body,
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)
	return api
}

func newBlockingAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := newFakeAPI(t, status, body)
	api.blocking = true
	return api
}

func (api *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	api.calls.Add(1)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
		api.bodies <- payload
	}
	api.arrived <- struct{}{}

	if api.blocking {
		select {
		case <-api.release:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(api.status)
	w.Write([]byte(api.body))
}

func (api *fakeAPI) client() *authapi.AuthClient {
	return authapi.NewAuthClient(api.server.URL, 5*time.Second)
}

func (api *fakeAPI) waitArrived(t *testing.T) {
	t.Helper()
	select {
	case <-api.arrived:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not reach the fake API")
	}
}

func (api *fakeAPI) lastBody(t *testing.T) map[string]any {
	t.Helper()
	select {
	case body := <-api.bodies:
		return body
	default:
		t.Fatal("no request body recorded")
	}
	return nil
}

func waitResult[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("submission did not finish")
	}
	var zero T
	return zero
}
