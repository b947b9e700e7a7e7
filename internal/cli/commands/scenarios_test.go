package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hrmScraper/internal/browser/browsertest"
)

func writeIdentities(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScenarioHandler_AllPassed(t *testing.T) {
	data := writeIdentities(t, `
- {id: valid_admin, username: Admin, password: admin123, type: positive}
- {id: wrong_password, username: Admin, password: wrongpass, type: negative}
`)
	artifacts := t.TempDir()
	var opened []*browsertest.Session
	var out bytes.Buffer

	h := NewScenarioHandler(testConfig(t), zap.NewNop(), openSite(testSite(rows("a")), &opened), &out)
	require.NoError(t, h.Run(t.Context(), data, artifacts))

	assert.Len(t, opened, 2)
	assert.FileExists(t, filepath.Join(artifacts, "report.json"))
	assert.FileExists(t, filepath.Join(artifacts, "wrong_password", "error_message.txt"))
	assert.Contains(t, out.String(), "Все сценарии пройдены (2)")
}

func TestScenarioHandler_Failed(t *testing.T) {
	data := writeIdentities(t, `
- {id: bad_positive, username: Admin, password: nope, type: positive}
`)
	var opened []*browsertest.Session
	var out bytes.Buffer

	h := NewScenarioHandler(testConfig(t), zap.NewNop(), openSite(testSite(rows("a")), &opened), &out)
	err := h.Run(t.Context(), data, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out.String(), "expected successful login for user: Admin")
}

func TestScenarioHandler_BadData(t *testing.T) {
	h := NewScenarioHandler(testConfig(t), zap.NewNop(), nil, &bytes.Buffer{})
	assert.Error(t, h.Run(t.Context(), writeIdentities(t, "- {id: x, type: sometimes}"), t.TempDir()))
}
