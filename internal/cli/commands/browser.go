package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"hrmScraper/internal/browser"
	"hrmScraper/internal/cli/ui"
	"hrmScraper/internal/config"
	"hrmScraper/internal/scenario"
)

func BrowserConfig(cfg config.Browser) browser.Config {
	return browser.Config{
		Engine:       cfg.Engine,
		Headless:     cfg.Headless,
		BrowsersPath: cfg.BrowsersPath,
		Display:      cfg.Display,
		SlowMo:       cfg.SlowMo,
		Timeout:      cfg.Timeout,
	}
}

// LaunchFunc открывает новый браузер playwright на каждый вызов
func LaunchFunc(cfg config.Browser, log *zap.Logger) scenario.OpenFunc {
	return func(ctx context.Context) (scenario.Session, error) {
		br := browser.New(BrowserConfig(cfg))
		log.Debug("Запуск браузера", zap.String("engine", cfg.Engine), zap.Bool("headless", cfg.Headless))
		if err := br.Launch(ctx); err != nil {
			if cerr := br.Close(); cerr != nil {
				log.Warn("Ошибка закрытия браузера", zap.Error(cerr))
			}
			return nil, err
		}
		return br, nil
	}
}

// BrowserHandler устанавливает драйвер и браузер playwright
type BrowserHandler struct {
	cfg config.Browser
	out io.Writer
}

func NewBrowserHandler(cfg config.Browser, out io.Writer) *BrowserHandler {
	return &BrowserHandler{cfg: cfg, out: out}
}

func (h *BrowserHandler) Install() error {
	ui.Info(h.out, ui.IconGlobe, "Установка браузера %s...", h.cfg.Engine)
	if err := browser.New(BrowserConfig(h.cfg)).Install(); err != nil {
		ui.Failure(h.out, "Ошибка установки: %v", err)
		return err
	}
	ui.Success(h.out, "Браузер установлен")
	return nil
}
