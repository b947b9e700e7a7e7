// Package output сохраняет итоговые записи в CSV и JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"hrmScraper/internal/scraper"
)

// Naming - политика имен файлов.
type Naming string

const (
	NamingFixed     Naming = "fixed"     // <prefix>.csv, перезаписывается
	NamingTimestamp Naming = "timestamp" // <prefix>_YYYYMMDD_HHMMSS.csv
)

const timestampLayout = "20060102_150405"

// Files - пути записанных файлов.
type Files struct {
	CSV  string
	JSON string
}

type Writer struct {
	dir    string
	prefix string
	naming Naming
	now    func() time.Time
}

func New(dir, prefix string, naming Naming) (*Writer, error) {
	switch naming {
	case NamingFixed, NamingTimestamp:
	case "":
		naming = NamingFixed
	default:
		return nil, fmt.Errorf("неизвестная политика имен файлов: %s", naming)
	}
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		prefix = "orangehrm_users"
	}
	return &Writer{dir: dir, prefix: prefix, naming: naming, now: time.Now}, nil
}

// Paths возвращает пути, в которые будет записан следующий результат.
func (w *Writer) Paths() Files {
	base := w.prefix
	if w.naming == NamingTimestamp {
		base += "_" + w.now().Format(timestampLayout)
	}
	return Files{
		CSV:  filepath.Join(w.dir, base+".csv"),
		JSON: filepath.Join(w.dir, base+".json"),
	}
}

// Save пишет оба файла. RawCells в файлы не попадают.
func (w *Writer) Save(records []scraper.Record) (Files, error) {
	files := w.Paths()
	clean := scraper.StripRaw(records)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("ошибка создания каталога %s: %w", w.dir, err)
	}
	if err := WriteCSV(files.CSV, clean); err != nil {
		return Files{}, err
	}
	if err := WriteJSON(files.JSON, clean); err != nil {
		return Files{}, err
	}
	return files, nil
}

func WriteCSV(path string, records []scraper.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("ошибка записи CSV %s: %w", path, err)
	}
	return f.Close()
}

func WriteJSON(path string, records []scraper.Record) error {
	if records == nil {
		records = []scraper.Record{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("ошибка записи JSON %s: %w", path, err)
	}
	return f.Close()
}
