// Package scenario прогоняет позитивные и негативные сценарии входа по
// списку учетных записей и собирает артефакты для отчета.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Type string

const (
	Positive Type = "positive"
	Negative Type = "negative"
)

// Identity - учетная запись сценария. Пустые Username и Password допустимы:
// так проверяется валидация обязательных полей.
type Identity struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Type     Type   `json:"type" yaml:"type" validate:"required,oneof=positive negative"`
}

var validate = validator.New()

// LoadIdentities читает JSON или YAML (по расширению) и проверяет записи.
func LoadIdentities(path string) ([]Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
	}

	var ids []Identity
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &ids)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ids)
	default:
		return nil, fmt.Errorf("неподдерживаемый формат файла сценариев: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
	}

	if err := Validate(ids); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}

// Validate проверяет каждую запись и уникальность ID.
func Validate(ids []Identity) error {
	if len(ids) == 0 {
		return fmt.Errorf("список сценариев пуст")
	}
	for i, id := range ids {
		if err := validate.Struct(id); err != nil {
			return fmt.Errorf("сценарий #%d: %s", i, describe(err))
		}
	}
	if err := validate.Var(ids, "unique=ID"); err != nil {
		return fmt.Errorf("идентификаторы сценариев повторяются")
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			parts = append(parts, e.Field()+" обязателен")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s должен быть одним из: %s", e.Field(), e.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s не прошел проверку '%s'", e.Field(), e.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
