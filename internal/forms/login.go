package forms

import (
	"context"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/customerror"
	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/Bessima/i2test-auth/internal/models"
	"github.com/Bessima/i2test-auth/internal/repository"
	"github.com/Bessima/i2test-auth/internal/schemas"
	"go.uber.org/zap"
)

type LoginClientI interface {
	Login(ctx context.Context, credentials models.Credentials) (*schemas.TokenResponse, error)
}

// TokenWriterI - всё, что формам нужно от хранилища: они только пишут
type TokenWriterI interface {
	Set(ctx context.Context, key, value string) error
}

type LoginForm struct {
	submission

	client  LoginClientI
	storage TokenWriterI

	credentials  models.Credentials
	showPassword bool
}

func NewLoginForm(client LoginClientI, storage TokenWriterI) *LoginForm {
	return &LoginForm{client: client, storage: storage}
}

func (f *LoginForm) SetUsername(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credentials.Username = username
}

func (f *LoginForm) SetPassword(password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credentials.Password = password
}

func (f *LoginForm) Credentials() models.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.credentials
}

// TogglePasswordVisibility меняет только отображение поля, значение остаётся прежним
func (f *LoginForm) TogglePasswordVisibility() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showPassword = !f.showPassword
	return f.showPassword
}

func (f *LoginForm) PasswordVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showPassword
}

// Submit отправляет учётные данные и сохраняет пару токенов.
// Любой отказ сервера превращается в одно общее сообщение.
func (f *LoginForm) Submit(ctx context.Context) (*models.SessionTokens, error) {
	f.mu.Lock()
	if err := f.checkLocked(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	credentials := f.credentials
	if credentials.Username == "" || credentials.Password == "" {
		f.rejectLocked(MsgLoginFieldsRequired)
		f.mu.Unlock()
		return nil, customerror.NewValidationError(MsgLoginFieldsRequired)
	}
	reqCtx := f.beginLocked(ctx)
	f.mu.Unlock()

	response, err := f.client.Login(reqCtx, credentials)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		logger.Log.Info("login rejected",
			zap.String("username", credentials.Username),
			zap.Int("status", authapi.StatusCode(err)),
			zap.Error(err),
		)
		if !f.finishLocked(models.FailedState, MsgInvalidCredentials) {
			return nil, ErrFormClosed
		}
		return nil, customerror.NewAuthRejectionError(MsgInvalidCredentials, err)
	}

	if f.closed {
		f.finishLocked(models.FailedState, "")
		logger.Log.Debug("login response arrived after the form was closed", zap.String("username", credentials.Username))
		return nil, ErrFormClosed
	}

	// Запись под mu: Close не может вклиниться между access и refresh
	if err = f.persistLocked(ctx, response); err != nil {
		logger.Log.Error("could not persist session tokens", zap.Error(err))
		f.finishLocked(models.FailedState, MsgSessionNotSaved)
		return nil, customerror.NewStorageError(MsgSessionNotSaved, err)
	}

	f.finishLocked(models.SucceededState, MsgLoginSucceeded)
	logger.Log.Info("login succeeded", zap.String("username", credentials.Username))

	return &models.SessionTokens{Access: response.Access, Refresh: response.Refresh}, nil
}

func (f *LoginForm) persistLocked(ctx context.Context, response *schemas.TokenResponse) error {
	if err := f.storage.Set(ctx, repository.AccessKey, response.Access); err != nil {
		return err
	}
	return f.storage.Set(ctx, repository.RefreshKey, response.Refresh)
}
