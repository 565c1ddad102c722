package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/denmor86/calc-web/internal/client"
	"github.com/denmor86/calc-web/internal/config"
	"github.com/denmor86/calc-web/internal/logger"
	"github.com/denmor86/calc-web/internal/services"
	"github.com/denmor86/calc-web/internal/session"
	"github.com/denmor86/calc-web/internal/storage"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingCommand = errors.New("missing command")
)

// App - клиент калькулятора: хранилище, сессия, транспорт и действия API
type App struct {
	Config  config.Config
	Storage storage.LocalStorage
	Client  *client.Client
	API     *services.API
	Out     io.Writer
}

// NewApp - сборка зависимостей по настройкам
func NewApp(ctx context.Context, cfg config.Config, out io.Writer) (*App, error) {
	db, err := storage.NewDatabase(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	sessions, err := session.NewStore(ctx, db)
	if err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	httpClient := client.NewLoggingClient(&http.Client{Timeout: cfg.Client.RequestTimeout})
	api := client.NewClient(cfg.Client.APIBaseURL, httpClient, sessions)
	api.Breaker = client.NewCircuitBreaker(cfg.Client.BreakerFailures)
	if cfg.Client.RateLimit > 0 {
		api.Limiter.Update(rate.Limit(cfg.Client.RateLimit), 1)
	}

	return &App{
		Config:  cfg,
		Storage: db,
		Client:  api,
		API:     services.NewAPI(api, sessions),
		Out:     out,
	}, nil
}

func (a *App) Close() error {
	return a.Storage.Close()
}

// Execute - выполнение команды с её аргументами
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, available: %s", ErrMissingCommand, commandNames())
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q, available: %s", ErrUnknownCommand, args[0], commandNames())
	}
	logger.Debugw("execute command", "command", args[0], "args", args[1:])
	return cmd(a, ctx, args[1:])
}

// Run - запуск команды до её завершения или сигнала остановки
func Run(cfg config.Config, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting client config:", cfg)
	app, err := NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, app.Close())
	}()
	return app.Execute(ctx, args)
}
