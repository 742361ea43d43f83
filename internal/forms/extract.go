package forms

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/schemas"
)

// RegistrationErrorMessage выбирает текст ошибки регистрации:
// поле detail, затем список строк через ", ", затем общее сообщение.
func RegistrationErrorMessage(err error) string {
	var apiErr *authapi.APIError
	if !errors.As(err, &apiErr) {
		return MsgRegistrationFailed
	}

	extractors := []func([]byte) string{detailMessage, listMessage}
	for _, extract := range extractors {
		if message := extract(apiErr.Body); message != "" {
			return message
		}
	}
	return MsgRegistrationFailed
}

func detailMessage(body []byte) string {
	var payload schemas.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func listMessage(body []byte) string {
	var items []string
	if err := json.Unmarshal(body, &items); err != nil {
		return ""
	}
	return strings.Join(items, ", ")
}
