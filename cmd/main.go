package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hrmScraper/internal/cli"
	"hrmScraper/internal/config"
	"hrmScraper/internal/logger"
	"hrmScraper/internal/sanitizer"
	"hrmScraper/internal/scraper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = cli.New(cfg, log).Execute(ctx)
	stop()
	if err != nil {
		msg := sanitizer.Sanitize(err.Error())
		if stage, ok := scraper.StageOf(err); ok {
			log.Error("Прогон завершился ошибкой", zap.Stringer("stage", stage), zap.String("error", msg))
		} else {
			log.Error("Ошибка", zap.String("error", msg))
		}
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}
