package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifacts_AttachAndList(t *testing.T) {
	root := t.TempDir()
	art, err := NewArtifacts(root, "wrong password/1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "wrong_password_1"), art.Dir())

	a, err := art.Attach("error_message.txt", KindText, []byte("Invalid credentials"))
	require.NoError(t, err)
	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, "Invalid credentials", string(data))

	_, err = art.AttachFile("missing", KindPNG, art.Path("nope.png"))
	assert.Error(t, err)

	list := art.List()
	require.Len(t, list, 1)
	assert.Equal(t, Artifact{Name: "error_message.txt", Path: art.Path("error_message.txt"), Kind: KindText}, list[0])

	list[0].Name = "changed"
	assert.Equal(t, "error_message.txt", art.List()[0].Name)
}
