package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/forms"
	"github.com/Bessima/i2test-auth/internal/handlers"
	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ServerService struct {
	Server  *http.Server
	client  authapi.AuthClientI
	storage forms.TokenWriterI
}

func NewServerService(rootContext context.Context, address string, client authapi.AuthClientI, storage forms.TokenWriterI) ServerService {
	server := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return rootContext
		},
	}
	return ServerService{Server: server, client: client, storage: storage}
}

func (serverService *ServerService) SetRouter() error {
	router, err := serverService.getRouter()
	if err != nil {
		return err
	}

	serverService.Server.Handler = router
	return nil
}

func (serverService *ServerService) getRouter() (chi.Router, error) {
	router := chi.NewRouter()

	router.Use(logger.RequestLogger)
	router.Use(middleware.Recoverer)

	formsHandler, err := handlers.NewFormsHandler(serverService.client, serverService.storage)
	if err != nil {
		return nil, err
	}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, forms.RouteLogin, http.StatusFound)
	})
	router.Get(forms.RouteLogin, formsHandler.LoginPage)
	router.Post(forms.RouteLogin, formsHandler.LoginSubmit)
	router.Get(forms.RouteRegister, formsHandler.RegisterPage)
	router.Post(forms.RouteRegister, formsHandler.RegisterSubmit)

	return router, nil
}

func (serverService *ServerService) RunServer(serverErr chan<- error) {
	if err := serverService.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serverErr <- err
	} else {
		serverErr <- nil
	}
}

func (serverService *ServerService) Shutdown() error {
	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if shutdownErr := serverService.Server.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	return nil
}
