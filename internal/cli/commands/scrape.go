package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"hrmScraper/internal/cli/ui"
	"hrmScraper/internal/config"
	"hrmScraper/internal/database"
	"hrmScraper/internal/output"
	"hrmScraper/internal/sanitizer"
	"hrmScraper/internal/scenario"
	"hrmScraper/internal/scraper"
)

// ScrapeHandler выполняет полный обход и сохраняет результат
type ScrapeHandler struct {
	cfg     *config.Cfg
	log     *zap.Logger
	open    scenario.OpenFunc
	history history
	out     io.Writer
}

func NewScrapeHandler(cfg *config.Cfg, log *zap.Logger, open scenario.OpenFunc, repo *database.RunRepository, out io.Writer) *ScrapeHandler {
	return &ScrapeHandler{
		cfg:     cfg,
		log:     log,
		open:    open,
		history: history{repo: repo, log: log},
		out:     out,
	}
}

// Run возвращает *scraper.RunError при фатальной ошибке любого этапа и не логирует ее
func (h *ScrapeHandler) Run(ctx context.Context) error {
	ui.PrintWelcome(h.out, h.cfg.Target.LoginURL)

	runID := h.history.start("scrape")
	res, files, err := h.scrape(ctx)
	h.history.finish(runID, res, files, err)

	if err != nil {
		ui.Failure(h.out, "Ошибка: %s", sanitizer.Sanitize(err.Error()))
		return err
	}

	printResult(h.out, res, files)
	return nil
}

func (h *ScrapeHandler) scrape(ctx context.Context) (*scraper.Result, output.Files, error) {
	sess, err := h.open(ctx)
	if err != nil {
		return nil, output.Files{}, scraper.WrapStage(scraper.StageLaunch, err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			h.log.Warn("Ошибка закрытия браузера", zap.Error(err))
		}
	}()

	res, err := scraper.New(sess, h.log, scraper.OptionsFromConfig(h.cfg)).Run(ctx)
	if err != nil {
		return nil, output.Files{}, err
	}

	files, err := save(h.cfg.Output, res.Records)
	if err != nil {
		return res, output.Files{}, scraper.WrapStage(scraper.StagePersist, err)
	}
	return res, files, nil
}

func save(cfg config.Output, records []scraper.Record) (output.Files, error) {
	w, err := output.New(cfg.Dir, cfg.Prefix, output.Naming(cfg.Naming))
	if err != nil {
		return output.Files{}, err
	}
	return w.Save(records)
}

func printResult(w io.Writer, res *scraper.Result, files output.Files) {
	ui.Success(w, "Сохранено записей: %d (до дедупликации %d, страниц %d)", len(res.Records), len(res.Raw), res.Pages)
	fmt.Fprintf(w, "  "+ui.ColorGray+"CSV:"+ui.ColorReset+"  %s\n", files.CSV)
	fmt.Fprintf(w, "  "+ui.ColorGray+"JSON:"+ui.ColorReset+" %s\n", files.JSON)
}
