package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptySource is returned for shader files with no code in them.
var ErrEmptySource = errors.New("empty shader source")

// ShaderLoader reads GLSL source files from a directory or an fs.FS.
type ShaderLoader struct {
	fsys fs.FS
	root string // empty when not backed by the OS filesystem
}

// NewShaderLoader reads shaders from dir on disk.
func NewShaderLoader(dir string) *ShaderLoader {
	return &ShaderLoader{fsys: os.DirFS(dir), root: dir}
}

// NewShaderLoaderFS reads shaders from fsys (embedded sources, tests).
func NewShaderLoaderFS(fsys fs.FS) *ShaderLoader {
	return &ShaderLoader{fsys: fsys}
}

// LoadShader returns the source of name with line endings normalised to "\n".
// Disk-backed loaders accept any path: relative names (including "./" and
// "../") resolve against the loader's directory, absolute names are used as is.
func (l *ShaderLoader) LoadShader(name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if l.root != "" {
		b, err = os.ReadFile(l.resolve(name))
	} else {
		b, err = fs.ReadFile(l.fsys, filepath.ToSlash(name))
	}
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	src := strings.ReplaceAll(string(b), "\r\n", "\n")
	src = strings.TrimRight(src, "\x00")
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("load shader %q: %w", name, ErrEmptySource)
	}
	return src, nil
}

// Path returns the OS path of name. ok is false when the loader has no
// directory on disk.
func (l *ShaderLoader) Path(name string) (path string, ok bool) {
	if l.root == "" {
		return "", false
	}
	p := l.resolve(name)
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return p, true
}

func (l *ShaderLoader) resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(l.root, name)
}
