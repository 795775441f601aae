package apk

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooksZipContainer(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.apk")
	f, err := os.Create(p)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("AndroidManifest.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<manifest/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.True(t, Looks(p))
}

func TestLooksPlainText(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(p, []byte("просто текст, не архив"), 0o644))
	require.False(t, Looks(p))
}

func TestLooksMissingFile(t *testing.T) {
	require.False(t, Looks(filepath.Join(t.TempDir(), "gone.apk")))
}
