package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bessima/i2test-auth/internal/clients/authapi"
	"github.com/Bessima/i2test-auth/internal/config"
	"github.com/Bessima/i2test-auth/internal/middlewares/logger"
	"github.com/Bessima/i2test-auth/internal/repository"
	"github.com/Bessima/i2test-auth/internal/service"
	"github.com/Bessima/i2test-auth/internal/tui"
	"go.uber.org/zap"
)

const usage = `Usage: i2test <command> [flags]

Commands:
  login     sign in and save the session tokens
  register  create an account
  status    show the saved session tokens
  logout    remove the saved session tokens
  tui       interactive sign in / sign up forms
  serve     run the sign in / sign up web forms
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errReported - ошибка уже показана пользователю
var errReported = errors.New("reported")

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return errReported
	}
	command, args := args[0], args[1:]

	conf, err := config.InitConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if command == "tui" {
		err = logger.InitializeToFile(conf.LogLevel, conf.LogFile)
	} else {
		err = logger.Initialize(conf.LogLevel)
	}
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := repository.NewStorage(rootCtx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.Log.Warn("error closing token storage", zap.Error(err))
		}
	}()

	client := authapi.NewAuthClient(conf.APIAddress, conf.RequestTimeout)
	prompt := newPrompter(stdin, stdout)

	switch command {
	case "login":
		return runLogin(rootCtx, client, storage, prompt, conf.Username)
	case "register":
		return runRegister(rootCtx, client, prompt, conf.Username)
	case "status":
		return runStatus(rootCtx, storage, stdout)
	case "logout":
		return runLogout(rootCtx, storage, stdout)
	case "tui":
		return tui.Run(rootCtx, client, storage)
	case "serve":
		return runServer(rootCtx, conf, client, storage)
	}

	fmt.Fprintf(stdout, "Unknown command %q\n\n%s", command, usage)
	return errReported
}

func runServer(rootCtx context.Context, conf *config.Config, client authapi.AuthClientI, storage repository.KeyValueStorageI) error {
	serverService := service.NewServerService(rootCtx, conf.Address, client, storage)
	if err := serverService.SetRouter(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	logger.Log.Info("Running Server on", zap.String("address", conf.Address), zap.String("api", conf.APIAddress))
	go serverService.RunServer(serverErr)

	// Ждем сигнал завершения или ошибку сервера
	var err error
	select {
	case <-rootCtx.Done():
		logger.Log.Info("Received shutdown signal, shutting down.")
	case err = <-serverErr:
		logger.Log.Error("Server error", zap.Error(err))
	}

	if shutdownErr := serverService.Shutdown(); shutdownErr != nil {
		logger.Log.Error("Server shutdown error", zap.Error(shutdownErr))
	}

	return err
}
