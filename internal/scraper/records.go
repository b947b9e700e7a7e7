package scraper

import "strings"

// Record - строка таблицы System Users. RawCells хранит исходные тексты ячеек
// для диагностики и не сохраняется в файлы.
type Record struct {
	Username     string   `json:"Username" csv:"Username"`
	UserRole     string   `json:"User Role" csv:"User Role"`
	EmployeeName string   `json:"Employee Name" csv:"Employee Name"`
	Status       string   `json:"Status" csv:"Status"`
	RawCells     []string `json:"-" csv:"-"`
}

// Key - идентичность записи для дедупликации. UserRole в ключ не входит.
type Key struct {
	Username     string
	EmployeeName string
	Status       string
}

func (r Record) Key() Key {
	return Key{Username: r.Username, EmployeeName: r.EmployeeName, Status: r.Status}
}

// Dedupe сохраняет порядок и оставляет первую запись для каждого ключа.
func Dedupe(records []Record) []Record {
	seen := make(map[Key]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// StripRaw возвращает копии записей без RawCells.
func StripRaw(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.RawCells = nil
		out[i] = r
	}
	return out
}

// RecordFromCells раскладывает тексты по позициям: 0 Username, 1 User Role,
// 2 Employee Name, 3 Status. Недостающие поля остаются пустыми строками.
func RecordFromCells(cells []string) Record {
	at := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	raw := make([]string, len(cells))
	copy(raw, cells)

	return Record{
		Username:     at(0),
		UserRole:     at(1),
		EmployeeName: at(2),
		Status:       at(3),
		RawCells:     raw,
	}
}

// IsHeaderRow распознает строку заголовков по тексту, а не по позиции.
func IsHeaderRow(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "username") &&
		(strings.Contains(lower, "user role") || strings.Contains(lower, "employee name"))
}

// SplitLines - запасной разбор текста строки: по строкам, без пустых.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
