package commands

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"hrmScraper/internal/cli/ui"
	"hrmScraper/internal/database"
)

// ShowHandler выводит историю прогонов из БД
type ShowHandler struct {
	repo *database.RunRepository
	log  *zap.Logger
	out  io.Writer
}

func NewShowHandler(repo *database.RunRepository, log *zap.Logger, out io.Writer) *ShowHandler {
	return &ShowHandler{
		repo: repo,
		log:  log,
		out:  out,
	}
}

// List выводит последние прогоны
func (h *ShowHandler) List(limit int) error {
	runs, err := h.repo.ListRuns(limit, 0)
	if err != nil {
		h.log.Error("Ошибка чтения прогонов", zap.Error(err))
		ui.Failure(h.out, "Ошибка чтения прогонов")
		return err
	}
	fmt.Fprintln(h.out, "\n"+ui.ColorBold+ui.IconList+" Прогоны:"+ui.ColorReset)
	fmt.Fprintln(h.out)
	for _, r := range runs {
		icon, color, text := ui.FormatStatus(r.Status)
		fmt.Fprintf(h.out, "  "+ui.ColorBold+"#%d"+ui.ColorReset+" %s%s %s"+ui.ColorReset+" %s\n", r.ID, color, icon, text, r.Command)
		fmt.Fprintf(h.out, "  "+ui.ColorGray+"└─"+ui.ColorReset+" %s, записей %d, страниц %d\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.RecordCount, r.Pages)
		fmt.Fprintln(h.out)
	}
	return nil
}

// Show выводит детали прогона со всеми записями
func (h *ShowHandler) Show(idStr string) error {
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		ui.Failure(h.out, "Неверный ID прогона")
		return fmt.Errorf("неверный ID прогона: %q", idStr)
	}
	run, err := h.repo.GetRun(uint(id))
	if err != nil {
		ui.Failure(h.out, "Прогон не найден")
		return err
	}

	_, _, statusText := ui.FormatStatus(run.Status)

	fmt.Fprintf(h.out, "\n"+ui.ColorBold+"=== Прогон #%d ==="+ui.ColorReset+"\n", run.ID)
	fmt.Fprintf(h.out, ui.ColorCyan+ui.IconDocument+" Команда:"+ui.ColorReset+" %s\n", run.Command)
	fmt.Fprintf(h.out, ui.ColorCyan+ui.IconChart+" Статус:"+ui.ColorReset+" %s\n", statusText)
	fmt.Fprintf(h.out, ui.ColorCyan+ui.IconTime+" Начат:"+ui.ColorReset+" %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(h.out, ui.ColorCyan+ui.IconLoop+" Страниц:"+ui.ColorReset+" %d, записей %d (до дедупликации %d)\n", run.Pages, run.RecordCount, run.RawCount)
	if run.CSVPath != "" {
		fmt.Fprintf(h.out, ui.ColorCyan+ui.IconFolder+" Файлы:"+ui.ColorReset+" %s, %s\n", run.CSVPath, run.JSONPath)
	}
	if run.Error != "" {
		fmt.Fprintf(h.out, ui.ColorRed+ui.IconChat+" Ошибка:"+ui.ColorReset+" %s\n", run.Error)
	}

	rows, err := h.repo.GetRecords(run.ID)
	if err != nil {
		h.log.Error("Ошибка получения записей", zap.Error(err))
		ui.Failure(h.out, "Ошибка получения записей")
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(h.out, "\n"+ui.ColorGray+"Записи не найдены"+ui.ColorReset)
		fmt.Fprintln(h.out)
		return nil
	}
	fmt.Fprintf(h.out, "\n"+ui.ColorYellow+ui.IconList+" Записи (%d):"+ui.ColorReset+"\n", len(rows))
	for _, rec := range database.Records(rows) {
		fmt.Fprintf(h.out, "  %-20s %-10s %-30s %s\n", rec.Username, rec.UserRole, rec.EmployeeName, rec.Status)
	}
	fmt.Fprintln(h.out)
	return nil
}
