package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/Bessima/i2test-auth/internal/models"
	"github.com/Bessima/i2test-auth/internal/schemas"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LoginPath    = "/api/auth/login/"
	RegisterPath = "/api/auth/register/"

	requestIDHeader = "X-Request-ID"
)

var ErrMissingTokens = errors.New("login response does not contain access and refresh tokens")

// APIError - ответ сервера со статусом вне 2xx, тело сохраняется как есть
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth api answered with status code %d", e.StatusCode)
}

type AuthClientI interface {
	Login(ctx context.Context, credentials models.Credentials) (*schemas.TokenResponse, error)
	Register(ctx context.Context, credentials models.Credentials) error
}

type AuthClient struct {
	httpClient *http.Client
	address    string
}

func NewAuthClient(address string, timeout time.Duration) *AuthClient {
	client := AuthClient{
		address:    strings.TrimRight(address, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	return &client
}

func (client AuthClient) Login(ctx context.Context, credentials models.Credentials) (*schemas.TokenResponse, error) {
	request := schemas.LoginRequest{Username: credentials.Username, Password: credentials.Password}

	body, err := client.post(ctx, LoginPath, request)
	if err != nil {
		return nil, err
	}

	var answer schemas.TokenResponse
	if err = json.Unmarshal(body, &answer); err != nil {
		logger.Log.Error("Error unmarshalling login response", zap.Error(err))
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if answer.Access == "" || answer.Refresh == "" {
		return nil, ErrMissingTokens
	}

	return &answer, nil
}

// Register отправляет только имя и пароль, тело успешного ответа не используется
func (client AuthClient) Register(ctx context.Context, credentials models.Credentials) error {
	request := schemas.RegisterRequest{Username: credentials.Username, Password: credentials.Password}

	_, err := client.post(ctx, RegisterPath, request)
	return err
}

func (client AuthClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	url := client.address + path

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request for %s: %w", url, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", url, err)
	}
	requestID := uuid.NewString()
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set(requestIDHeader, requestID)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to: %s and the error is: %w", url, err)
	}

	defer func() {
		if err := response.Body.Close(); err != nil {
			customErr := fmt.Errorf("error closing response body: %v", err)
			logger.Log.Warn(customErr.Error())
		}
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("Error reading response body", zap.Error(err))
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}

	logger.Log.Debug("auth api answered",
		zap.String("url", url),
		zap.String("request_id", requestID),
		zap.Int("status", response.StatusCode),
	)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: response.StatusCode, Body: body}
	}

	return body, nil
}

// StatusCode достаёт статус ответа из цепочки ошибок, 0 если ответа не было
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
