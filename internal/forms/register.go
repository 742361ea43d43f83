package forms

import (
	"context"
	"errors"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/customerror"
	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/Bessima/i2test-auth/internal/models"
	"go.uber.org/zap"
)

type RegisterClientI interface {
	Register(ctx context.Context, credentials models.Credentials) error
}

type RegisterForm struct {
	submission

	client RegisterClientI

	input        models.RegistrationCredentials
	showPassword bool
	redirect     string
}

func NewRegisterForm(client RegisterClientI) *RegisterForm {
	return &RegisterForm{client: client}
}

func (f *RegisterForm) SetUsername(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Username = username
}

func (f *RegisterForm) SetPassword(password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.Password = password
}

func (f *RegisterForm) SetConfirmPassword(confirm string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.ConfirmPassword = confirm
}

func (f *RegisterForm) Input() models.RegistrationCredentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// TogglePasswordVisibility действует на оба поля пароля сразу
func (f *RegisterForm) TogglePasswordVisibility() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
	return f.showPassword
}

func (f *RegisterForm) PasswordVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showPassword
}

// Redirect - куда перейти после отправки, пусто если переход не нужен
func (f *RegisterForm) Redirect() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.redirect
}

// ValidateRegistration проверяет поля по порядку и останавливается на первой ошибке
func ValidateRegistration(input models.RegistrationCredentials) error {
	if input.Username == "" || input.Password == "" || input.ConfirmPassword == "" {
		return customerror.NewValidationError(MsgAllFieldsRequired)
	}
	if len(input.Password) < MinPasswordLength {
		return customerror.NewValidationError(MsgPasswordTooShort)
	}
	if input.Password != input.ConfirmPassword {
		return customerror.NewValidationError(MsgPasswordsDoNotMatch)
	}
	return nil
}

func (f *RegisterForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if err := f.checkLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.redirect = ""
	input := f.input
	if err := ValidateRegistration(input); err != nil {
		var validationErr *customerror.ValidationError
		if errors.As(err, &validationErr) {
			f.rejectLocked(validationErr.UserMessage())
		}
		f.mu.Unlock()
		return err
	}
	reqCtx := f.beginLocked(ctx)
	f.mu.Unlock()

	// Подтверждение пароля на сервер не уходит
	err := f.client.Register(reqCtx, input.Credentials)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		message := RegistrationErrorMessage(err)
		logger.Log.Info("registration rejected",
			zap.String("username", input.Username),
			zap.Int("status", authapi.StatusCode(err)),
			zap.Error(err),
		)
		if !f.finishLocked(models.FailedState, message) {
			return ErrFormClosed
		}
		return customerror.NewRegistrationRejectionError(authapi.StatusCode(err), message, err)
	}

	if !f.finishLocked(models.SucceededState, MsgRegistrationSucceeded) {
		return ErrFormClosed
	}
	f.input = models.RegistrationCredentials{}
	f.redirect = RouteLogin
	logger.Log.Info("account created", zap.String("username", input.Username))

	return nil
}
