package main

import (
	"fmt"
	"os"

	"github.com/denmor86/calc-web/internal/app"
	"github.com/denmor86/calc-web/internal/config"
	"github.com/denmor86/calc-web/internal/logger"
)

func main() {
	// загрузка конфига, оставшиеся аргументы - команда
	config, args := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if err := app.Run(config, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		logger.Sync()
		os.Exit(1)
	}
}
