package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatus(t *testing.T) {
	icon, color, text := FormatStatus("failed")
	assert.Equal(t, IconCross, icon)
	assert.Equal(t, ColorRed, color)
	assert.Equal(t, "ошибка", text)

	_, _, text = FormatStatus("weird")
	assert.Equal(t, "weird", text)
}

func TestFormatOutcome(t *testing.T) {
	_, _, text := FormatOutcome(true)
	assert.Equal(t, "PASSED", text)
	_, color, _ := FormatOutcome(false)
	assert.Equal(t, ColorRed, color)
}

func TestPrinters(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "сохранено %d", 3)
	Failure(&buf, "ошибка %s", "x")
	PrintWelcome(&buf, "https://hrm.test")

	out := buf.String()
	assert.Contains(t, out, "сохранено 3")
	assert.Contains(t, out, "ошибка x")
	assert.Contains(t, out, "https://hrm.test")
}
