package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader_ReadsSource(t *testing.T) {
	fsys := fstest.MapFS{
		"basic.vert": {Data: []byte("#version 330 core\r\nvoid main() {}\r\n")},
	}
	src, err := NewShaderLoaderFS(fsys).LoadShader("basic.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", src)
}

func TestLoadShader_StripsNullTerminator(t *testing.T) {
	fsys := fstest.MapFS{
		"a.frag": {Data: []byte("void main() {}\x00")},
	}
	src, err := NewShaderLoaderFS(fsys).LoadShader("a.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)
}

func TestLoadShader_MissingFile(t *testing.T) {
	_, err := NewShaderLoaderFS(fstest.MapFS{}).LoadShader("missing.vert")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "missing.vert")
}

func TestLoadShader_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.frag": {Data: []byte(" \n\t\n")},
	}
	_, err := NewShaderLoaderFS(fsys).LoadShader("empty.frag")
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestLoadShader_FromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "x.vert"), []byte("void main() {}\n"), 0o644))

	l := NewShaderLoader(dir)
	src, err := l.LoadShader(filepath.Join("sub", "x.vert"))
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\n", src)

	p, ok := l.Path(filepath.Join("sub", "x.vert"))
	assert.True(t, ok)
	assert.True(t, filepath.IsAbs(p))
	assert.Equal(t, "x.vert", filepath.Base(p))
}

func TestPath_NoDiskRoot(t *testing.T) {
	_, ok := NewShaderLoaderFS(fstest.MapFS{}).Path("a.vert")
	assert.False(t, ok)
}

func TestLoadShader_DiskPathForms(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "shaders")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vert"), []byte("// a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "common.vert"), []byte("// common\n"), 0o644))

	l := NewShaderLoader(dir)
	for _, tc := range []struct {
		name, want string
	}{
		{"a.vert", "// a\n"},
		{"./a.vert", "// a\n"},
		{"../common.vert", "// common\n"},
		{filepath.Join(base, "common.vert"), "// common\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src, err := l.LoadShader(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, src)

			p, ok := l.Path(tc.name)
			require.True(t, ok)
			b, err := os.ReadFile(p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}

	_, err := l.LoadShader("./missing.vert")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
