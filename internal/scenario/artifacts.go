package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

type Kind string

const (
	KindJSON Kind = "json"
	KindCSV  Kind = "csv"
	KindText Kind = "text"
	KindPNG  Kind = "png"
	KindHTML Kind = "html"
)

type Artifact struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// Artifacts - каталог вложений одного сценария.
type Artifacts struct {
	dir   string
	items []Artifact
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// safeName заменяет символы, недопустимые в имени файла, включая разделители пути.
func safeName(s string) string {
	return unsafeName.ReplaceAllString(s, "_")
}

// NewArtifacts создает подкаталог root/<scenario>.
func NewArtifacts(root, scenario string) (*Artifacts, error) {
	dir := filepath.Join(root, safeName(scenario))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога артефактов %s: %w", dir, err)
	}
	return &Artifacts{dir: dir}, nil
}

func (a *Artifacts) Dir() string {
	return a.dir
}

// Path возвращает путь для файла внутри каталога артефактов.
func (a *Artifacts) Path(name string) string {
	return filepath.Join(a.dir, name)
}

// Attach записывает data в файл name и регистрирует вложение.
func (a *Artifacts) Attach(name string, kind Kind, data []byte) (Artifact, error) {
	path := a.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("ошибка записи артефакта %s: %w", name, err)
	}
	return a.AttachFile(name, kind, path)
}

// AttachFile регистрирует уже существующий файл.
func (a *Artifacts) AttachFile(name string, kind Kind, path string) (Artifact, error) {
	if _, err := os.Stat(path); err != nil {
		return Artifact{}, fmt.Errorf("артефакт %s недоступен: %w", name, err)
	}
	art := Artifact{Name: name, Path: path, Kind: kind}
	a.items = append(a.items, art)
	return art, nil
}

func (a *Artifacts) List() []Artifact {
	out := make([]Artifact, len(a.items))
	copy(out, a.items)
	return out
}
