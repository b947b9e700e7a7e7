package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"hrmScraper/internal/output"
	"hrmScraper/internal/sanitizer"
	"hrmScraper/internal/scraper"
)

const sampleSize = 5

// Session - браузерная сессия сценария; закрывается после каждого сценария.
type Session interface {
	scraper.Session
	Close() error
}

// OpenFunc открывает новую сессию для очередного сценария.
type OpenFunc func(ctx context.Context) (Session, error)

// AssertionError - проваленная проверка сценария, в отличие от сбоя окружения.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

func failf(format string, args ...any) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// Outcome - итог одного сценария для отчета.
type Outcome struct {
	ID           string        `json:"id"`
	Username     string        `json:"username"`
	Type         Type          `json:"type"`
	Passed       bool          `json:"passed"`
	Failure      string        `json:"failure,omitempty"`
	Login        string        `json:"login"`
	Records      int           `json:"records"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Artifacts    []Artifact    `json:"artifacts"`
	Duration     time.Duration `json:"duration_ns"`
}

type Config struct {
	Options      scraper.Options
	ArtifactsDir string
	OutputPrefix string
}

type Runner struct {
	open OpenFunc
	log  *zap.Logger
	cfg  Config
}

func NewRunner(open OpenFunc, log *zap.Logger, cfg Config) *Runner {
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = "artifacts"
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = "orangehrm_users"
	}
	return &Runner{open: open, log: log, cfg: cfg}
}

// Run выполняет один сценарий в собственной сессии. Ошибка означает провал
// сценария: *AssertionError для проверок, обернутая ошибка для сбоев окружения.
func (r *Runner) Run(ctx context.Context, id Identity) (*Outcome, error) {
	start := time.Now()
	out := &Outcome{ID: id.ID, Username: id.Username, Type: id.Type}
	log := r.log.With(zap.String("scenario", id.ID), zap.String("type", string(id.Type)))

	art, err := NewArtifacts(r.cfg.ArtifactsDir, id.ID)
	if err != nil {
		return r.finish(out, art, start, err)
	}

	sess, err := r.open(ctx)
	if err != nil {
		return r.finish(out, art, start, fmt.Errorf("ошибка открытия сессии: %w", err))
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warn("Ошибка закрытия сессии", zap.Error(cerr))
		}
	}()

	opts := r.cfg.Options
	opts.Credentials = scraper.Credentials{Username: id.Username, Password: id.Password}
	sc := scraper.New(sess, log, opts)
	ctrl := sc.Controller()

	status, err := ctrl.LoginDetailed(ctx, opts.Credentials)
	out.Login = status.String()
	if err != nil {
		return r.finish(out, art, start, fmt.Errorf("ошибка входа: %w", err))
	}
	if status == scraper.LoginOK {
		defer func() {
			if lerr := ctrl.Logout(ctx); lerr != nil {
				log.Debug("Выход не выполнен", zap.Error(lerr))
			}
		}()
	}

	switch id.Type {
	case Positive:
		err = r.positive(ctx, sess, sc, id, status, art, out)
	case Negative:
		err = r.negative(ctx, sess, ctrl, id, art, out)
	default:
		err = fmt.Errorf("неизвестный тип сценария: %s", id.Type)
	}
	return r.finish(out, art, start, err)
}

func (r *Runner) positive(ctx context.Context, sess Session, sc *scraper.Scraper, id Identity, status scraper.LoginStatus, art *Artifacts, out *Outcome) error {
	if status != scraper.LoginOK {
		return failf("expected successful login for user: %s", id.Username)
	}

	if err := sc.Controller().OpenUserList(ctx); err != nil {
		return fmt.Errorf("ошибка перехода к списку пользователей: %w", err)
	}

	raw, _ := sc.Walk(ctx)
	records := scraper.Dedupe(raw)
	out.Records = len(records)
	if len(records) == 0 {
		r.attachPage(ctx, sess, art)
		return failf("no records found in admin table")
	}
	if !hasUsername(records) {
		r.attachPage(ctx, sess, art)
		return failf("no records with non-empty Username found in admin table")
	}

	sample, err := json.MarshalIndent(scraper.StripRaw(records[:min(sampleSize, len(records))]), "", "  ")
	if err != nil {
		return err
	}
	if _, err := art.Attach("sample_records.json", KindJSON, sample); err != nil {
		return err
	}

	w, err := output.New(art.Dir(), r.cfg.OutputPrefix, output.NamingTimestamp)
	if err != nil {
		return err
	}
	files, err := w.Save(records)
	if err != nil {
		return fmt.Errorf("ошибка сохранения записей: %w", err)
	}
	if _, err := art.AttachFile("csv_data", KindCSV, files.CSV); err != nil {
		return err
	}
	if _, err := art.AttachFile("json_data", KindJSON, files.JSON); err != nil {
		return err
	}
	return nil
}

func hasUsername(records []scraper.Record) bool {
	for _, rec := range records {
		if rec.Username != "" {
			return true
		}
	}
	return false
}

func (r *Runner) negative(ctx context.Context, sess Session, ctrl *scraper.Controller, id Identity, art *Artifacts, out *Outcome) error {
	msg := ctrl.ErrorMessage(ctx, r.cfg.Options.LoginTimeout)
	out.ErrorMessage = msg

	if msg == "" {
		name := "screenshot_" + safeName(id.Username) + ".png"
		path := art.Path(name)
		if err := sess.Screenshot(ctx, path); err != nil {
			r.log.Warn("Не удалось сохранить скриншот", zap.String("path", path), zap.Error(err))
		} else if _, err := art.AttachFile(name, KindPNG, path); err != nil {
			return err
		}
	}

	if ctrl.LoggedIn() {
		return failf("unexpectedly logged in with invalid credentials: %s", id.Username)
	}
	if msg == "" {
		return failf("no error message displayed for invalid credentials")
	}

	_, err := art.Attach("error_message.txt", KindText, []byte(msg))
	return err
}

// HTMLSource - сессия, которая умеет отдать разметку текущей страницы.
type HTMLSource interface {
	HTML(ctx context.Context) (string, error)
}

// attachPage сохраняет разметку страницы без паролей и токенов для разбора провала.
func (r *Runner) attachPage(ctx context.Context, sess Session, art *Artifacts) {
	src, ok := sess.(HTMLSource)
	if !ok {
		return
	}
	page, err := src.HTML(ctx)
	if err != nil {
		r.log.Warn("Не удалось получить разметку страницы", zap.Error(err))
		return
	}
	if _, err := art.Attach("page.html", KindHTML, []byte(sanitizer.Sanitize(page))); err != nil {
		r.log.Warn("Не удалось сохранить разметку страницы", zap.Error(err))
	}
}

func (r *Runner) finish(out *Outcome, art *Artifacts, start time.Time, err error) (*Outcome, error) {
	out.Duration = time.Since(start)
	if art != nil {
		out.Artifacts = art.List()
	}
	out.Passed = err == nil
	if err != nil {
		out.Failure = err.Error()
		r.log.Info("Сценарий провален", zap.String("scenario", out.ID), zap.Error(err))
	} else {
		r.log.Info("Сценарий пройден", zap.String("scenario", out.ID))
	}
	return out, err
}

// RunAll выполняет сценарии последовательно; провал одного не останавливает остальные.
func (r *Runner) RunAll(ctx context.Context, ids []Identity) []*Outcome {
	outcomes := make([]*Outcome, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		out, _ := r.Run(ctx, id)
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Report - сводка прогона сценариев, сохраняемая в report.json.
type Report struct {
	Total    int        `json:"total"`
	Passed   int        `json:"passed"`
	Failed   int        `json:"failed"`
	Outcomes []*Outcome `json:"outcomes"`
}

func NewReport(outcomes []*Outcome) Report {
	rep := Report{Total: len(outcomes), Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep
}

// WriteReport сохраняет отчет в каталог артефактов и возвращает путь.
func (r *Runner) WriteReport(rep Report) (string, error) {
	if err := os.MkdirAll(r.cfg.ArtifactsDir, 0o755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.cfg.ArtifactsDir, "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("ошибка записи отчета: %w", err)
	}
	return path, nil
}
