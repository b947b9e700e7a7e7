package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/cli/ui"
	"hrmScraper/internal/config"
	"hrmScraper/internal/database"
	"hrmScraper/internal/dom"
	"hrmScraper/internal/output"
	"hrmScraper/internal/sanitizer"
	"hrmScraper/internal/scraper"
)

// ExtractHandler разбирает сохраненные HTML-страницы списка пользователей без браузера
type ExtractHandler struct {
	cfg     *config.Cfg
	log     *zap.Logger
	history history
	out     io.Writer
}

func NewExtractHandler(cfg *config.Cfg, log *zap.Logger, repo *database.RunRepository, out io.Writer) *ExtractHandler {
	return &ExtractHandler{cfg: cfg, log: log, history: history{repo: repo, log: log}, out: out}
}

func (h *ExtractHandler) Run(ctx context.Context, paths []string) error {
	runID := h.history.start("extract")

	res, err := h.extract(ctx, paths)
	if err != nil {
		h.history.finish(runID, nil, output.Files{}, err)
		ui.Failure(h.out, "Ошибка: %s", sanitizer.Sanitize(err.Error()))
		return err
	}

	files, err := save(h.cfg.Output, res.Records)
	if err != nil {
		err = scraper.WrapStage(scraper.StagePersist, err)
	}
	h.history.finish(runID, res, files, err)
	if err != nil {
		ui.Failure(h.out, "Ошибка: %s", sanitizer.Sanitize(err.Error()))
		return err
	}

	printResult(h.out, res, files)
	return nil
}

func (h *ExtractHandler) extract(ctx context.Context, paths []string) (*scraper.Result, error) {
	res := &scraper.Result{StartedAt: time.Now()}
	for _, path := range paths {
		records, err := h.extractFile(ctx, path)
		if err != nil {
			return nil, scraper.WrapStage(scraper.StageExtract, err)
		}
		h.log.Info("Страница обработана", zap.String("file", path), zap.Int("rows", len(records)))
		res.Raw = append(res.Raw, records...)
		res.Pages++
	}
	res.Records = scraper.Dedupe(res.Raw)
	res.FinishedAt = time.Now()
	return res, nil
}

func (h *ExtractHandler) extractFile(ctx context.Context, path string) ([]scraper.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия %s: %w", path, err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scraper.NewWalker(doc, h.log, 0, 0).ExtractPage(ctx), nil
}
