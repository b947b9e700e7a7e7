package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/cli/ui"
	"hrmScraper/internal/config"
	"hrmScraper/internal/scenario"
	"hrmScraper/internal/scraper"
)

// ScenarioHandler прогоняет сценарии входа из файла учетных записей
type ScenarioHandler struct {
	cfg  *config.Cfg
	log  *zap.Logger
	open scenario.OpenFunc
	out  io.Writer
}

func NewScenarioHandler(cfg *config.Cfg, log *zap.Logger, open scenario.OpenFunc, out io.Writer) *ScenarioHandler {
	return &ScenarioHandler{cfg: cfg, log: log, open: open, out: out}
}

// Run возвращает ошибку, если хотя бы один сценарий провален
func (h *ScenarioHandler) Run(ctx context.Context, dataPath, artifactsDir string) error {
	ids, err := scenario.LoadIdentities(dataPath)
	if err != nil {
		ui.Failure(h.out, "Ошибка: %v", err)
		return err
	}

	runner := scenario.NewRunner(h.open, h.log, scenario.Config{
		Options:      scraper.OptionsFromConfig(h.cfg),
		ArtifactsDir: artifactsDir,
		OutputPrefix: h.cfg.Output.Prefix,
	})

	ui.Info(h.out, ui.IconList, "Сценариев: %d", len(ids))
	outcomes := runner.RunAll(ctx, ids)
	for _, o := range outcomes {
		icon, color, text := ui.FormatOutcome(o.Passed)
		fmt.Fprintf(h.out, "  %s%s %s"+ui.ColorReset+" "+ui.ColorBold+"%s"+ui.ColorReset+" (%s, %s)\n",
			color, icon, text, o.ID, o.Type, o.Duration.Round(time.Millisecond))
		if o.Failure != "" {
			fmt.Fprintf(h.out, "  "+ui.ColorGray+"└─"+ui.ColorReset+" %s\n", o.Failure)
		}
		for _, a := range o.Artifacts {
			fmt.Fprintf(h.out, "  "+ui.ColorGray+"   %s %s: %s"+ui.ColorReset+"\n", ui.IconFolder, a.Name, a.Path)
		}
	}

	rep := scenario.NewReport(outcomes)
	path, err := runner.WriteReport(rep)
	if err != nil {
		h.log.Warn("Не удалось сохранить отчет", zap.Error(err))
	} else {
		ui.Info(h.out, ui.IconChart, "Отчет: %s", path)
	}

	if rep.Total < len(ids) {
		return fmt.Errorf("выполнено сценариев: %d из %d", rep.Total, len(ids))
	}
	if rep.Failed > 0 {
		ui.Failure(h.out, "Провалено %d из %d", rep.Failed, rep.Total)
		return fmt.Errorf("провалено сценариев: %d из %d", rep.Failed, rep.Total)
	}
	ui.Success(h.out, "Все сценарии пройдены (%d)", rep.Total)
	return nil
}
