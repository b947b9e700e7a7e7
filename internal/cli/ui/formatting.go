package ui

import (
	"fmt"
	"io"
)

// FormatStatus возвращает иконку, цвет и текст для статуса прогона
func FormatStatus(status string) (icon, color, text string) {
	switch status {
	case "completed":
		return IconCheckmark, ColorGreen, "завершен"
	case "failed":
		return IconCross, ColorRed, "ошибка"
	case "running":
		return IconPlay, ColorCyan, "выполняется"
	default:
		return IconClock, ColorYellow, status
	}
}

// FormatOutcome - иконка и цвет для итога сценария
func FormatOutcome(passed bool) (icon, color, text string) {
	if passed {
		return IconCheckmark, ColorGreen, "PASSED"
	}
	return IconCross, ColorRed, "FAILED"
}

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ColorGreen+IconCheckmark+" "+format+ColorReset+"\n", args...)
}

func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ColorRed+IconCross+" "+format+ColorReset+"\n", args...)
}

func Info(w io.Writer, icon, format string, args ...any) {
	fmt.Fprintf(w, ColorCyan+icon+" "+format+ColorReset+"\n", args...)
}
