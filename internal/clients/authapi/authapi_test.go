package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Bessima/i2test-auth/internal/models"
	"github.com/Bessima/i2test-auth/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
)

var testCredentials = models.Credentials{Username: "alice", Password: "wonderland"}

func TestNewAuthClient(t *testing.T) {
	client := NewAuthClient("http://localhost:8000/", 5*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", client.address)
	require.NotNil(t, client.httpClient)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestAuthClient_Login_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, LoginPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		var request map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, map[string]string{"username": "alice", "password": "wonderland"}, request)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schemas.TokenResponse{Access: "A", Refresh: "R"})
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, time.Second)
	response, err := client.Login(context.Background(), testCredentials)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "A", response.Access)
	assert.Equal(t, "R", response.Refresh)
}

func TestAuthClient_Login_HTTPErrors(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: `{"detail":"No active account found"}`},
		{name: "bad request", statusCode: http.StatusBadRequest, body: `{"username":["This field is required."]}`},
		{name: "internal server error", statusCode: http.StatusInternalServerError, body: `oops`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewAuthClient(server.URL, time.Second)
			response, err := client.Login(context.Background(), testCredentials)

			assert.Nil(t, response)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.statusCode, apiErr.StatusCode)
			assert.Equal(t, tc.body, string(apiErr.Body))
			assert.Equal(t, tc.statusCode, StatusCode(err))
		})
	}
}

func TestAuthClient_Login_MissingTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access":"A"}`))
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, time.Second)
	response, err := client.Login(context.Background(), testCredentials)

	assert.ErrorIs(t, err, ErrMissingTokens)
	assert.Nil(t, response)
}

func TestAuthClient_Login_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access": 123, "refresh": true}`))
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, time.Second)
	response, err := client.Login(context.Background(), testCredentials)

	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestAuthClient_NetworkError(t *testing.T) {
	// Несуществующий порт имитирует сетевую ошибку
	client := NewAuthClient("http://localhost:99999", time.Second)

	response, err := client.Login(context.Background(), testCredentials)
	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Equal(t, 0, StatusCode(err))

	err = client.Register(context.Background(), testCredentials)
	assert.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
}

func TestAuthClient_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewAuthClient(server.URL, time.Second)
	err := client.Register(ctx, testCredentials)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthClient_Register_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, RegisterPath, r.URL.Path)

		var request map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Len(t, request, 2)
		assert.Equal(t, "alice", request["username"])
		assert.Equal(t, "wonderland", request["password"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7, "username": "alice"}`))
	}))
	defer server.Close()

	client := NewAuthClient(server.URL, time.Second)
	err := client.Register(context.Background(), testCredentials)

	assert.NoError(t, err)
}

func TestAuthClient_Register_KeepsErrorBody(t *testing.T) {
	defer gock.Off()

	client := NewAuthClient("http://auth.test", time.Second)
	gock.InterceptClient(client.httpClient)
	defer gock.RestoreClient(client.httpClient)

	gock.New("http://auth.test").
		Post(RegisterPath).
		MatchHeader("Content-Type", "application/json").
		JSON(map[string]string{"username": "alice", "password": "wonderland"}).
		Reply(http.StatusBadRequest).
		JSON([]string{"error1", "error2"})

	err := client.Register(context.Background(), testCredentials)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.JSONEq(t, `["error1","error2"]`, string(apiErr.Body))
	assert.True(t, gock.IsDone())
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestAuthClient_ResponseBodyCloseError(t *testing.T) {
	client := NewAuthClient("http://auth.test", time.Second)

	// Подменяем httpClient для тестирования ошибки закрытия тела
	client.httpClient = &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp := &http.Response{
				StatusCode: http.StatusOK,
				Body: struct {
					io.Reader
					io.Closer
				}{
					Reader: strings.NewReader(`{"access":"A","refresh":"R"}`),
					Closer: closeFunc(func() error {
						return errors.New("close error")
					}),
				},
				Header: make(http.Header),
			}
			resp.Header.Set("Content-Type", "application/json")
			return resp, nil
		}),
	}

	// Ошибка закрытия только логируется
	response, err := client.Login(context.Background(), testCredentials)

	require.NoError(t, err)
	assert.Equal(t, "A", response.Access)
	assert.Equal(t, "R", response.Refresh)
}

// Вспомогательные типы для тестирования
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}
