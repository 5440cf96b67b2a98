package glbackend

import (
	"fmt"
	"log/slog"
)

// SourceLoader supplies shader source text by name.
// *assets.ShaderLoader implements it.
type SourceLoader interface {
	LoadShader(name string) (string, error)
	// Path returns the file backing name, if there is one on disk.
	Path(name string) (string, bool)
}

// Shader is a linked vertex+fragment program. All methods issue GL calls and
// must run on the thread that owns the context.
type Shader struct {
	drv    Driver
	loader SourceLoader

	vertName string
	fragName string

	program uint32
	locs    map[string]int32
}

// NewShader returns an empty wrapper. loader may be nil when only
// CompileSource is used.
func NewShader(drv Driver, loader SourceLoader) *Shader {
	return &Shader{drv: drv, loader: loader, locs: make(map[string]int32)}
}

// Program returns the linked program handle, 0 before a successful compile.
func (s *Shader) Program() uint32 { return s.program }

// Sources returns the file names passed to the last Compile.
func (s *Shader) Sources() (vert, frag string) { return s.vertName, s.fragName }

func (s *Shader) Use()    { s.drv.UseProgram(s.program) }
func (s *Shader) Unbind() { s.drv.UseProgram(0) }

// Compile reads vertName and fragName through the loader, compiles and links
// them. On success the new program replaces the current one; on failure the
// current program is left untouched.
func (s *Shader) Compile(vertName, fragName string) error {
	if s.loader == nil {
		return fmt.Errorf("compile %q/%q: no source loader", vertName, fragName)
	}
	vs, err := s.loader.LoadShader(vertName)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := s.loader.LoadShader(fragName)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}

	prog, err := s.build(vs, vertName, fs, fragName)
	if err != nil {
		return err
	}
	s.vertName, s.fragName = vertName, fragName
	s.swap(prog)
	Logger().Debug("shader program linked",
		slog.Uint64("program", uint64(prog)),
		slog.String("vertex", vertName),
		slog.String("fragment", fragName))
	return nil
}

// CompileSource compiles and links in-memory sources. Reload is not
// available for shaders built this way.
func (s *Shader) CompileSource(vertSrc, fragSrc string) error {
	prog, err := s.build(vertSrc, "", fragSrc, "")
	if err != nil {
		return err
	}
	s.vertName, s.fragName = "", ""
	s.swap(prog)
	return nil
}

// Reload recompiles from the files given to the last Compile.
func (s *Shader) Reload() error {
	if s.vertName == "" || s.fragName == "" {
		return fmt.Errorf("reload: %w from files", ErrNotCompiled)
	}
	return s.Compile(s.vertName, s.fragName)
}

// Delete releases the program. Safe to call more than once.
func (s *Shader) Delete() {
	if s.program != 0 {
		s.drv.DeleteProgram(s.program)
		s.program = 0
	}
	clear(s.locs)
}

func (s *Shader) swap(prog uint32) {
	if s.program != 0 {
		s.drv.DeleteProgram(s.program)
	}
	s.program = prog
	clear(s.locs)
}

func (s *Shader) build(vsSrc, vsName, fsSrc, fsName string) (uint32, error) {
	vs, err := s.compileStage(StageVertex, vsSrc, vsName)
	if err != nil {
		return 0, err
	}
	fs, err := s.compileStage(StageFragment, fsSrc, fsName)
	if err != nil {
		s.drv.DeleteShader(vs)
		return 0, err
	}

	prog := s.drv.CreateProgram()
	s.drv.AttachShader(prog, vs)
	s.drv.AttachShader(prog, fs)
	s.drv.LinkProgram(prog)

	linked := s.drv.ProgramLinked(prog)
	infoLog := s.drv.ProgramInfoLog(prog)

	// The program keeps its own copy of the compiled code.
	s.drv.DetachShader(prog, vs)
	s.drv.DetachShader(prog, fs)
	s.drv.DeleteShader(vs)
	s.drv.DeleteShader(fs)

	if !linked {
		Logger().Error("program link failed", slog.String("log", infoLog))
		s.drv.DeleteProgram(prog)
		return 0, &LinkError{Log: infoLog}
	}
	if infoLog != "" {
		Logger().Warn("program linked with diagnostics", slog.String("log", infoLog))
	}
	return prog, nil
}

func (s *Shader) compileStage(stage Stage, src, name string) (uint32, error) {
	sh := s.drv.CreateShader(stage)
	s.drv.CompileShader(sh, src)
	if s.drv.ShaderCompiled(sh) {
		return sh, nil
	}
	infoLog := s.drv.ShaderInfoLog(sh)
	s.drv.DeleteShader(sh)
	Logger().Error("shader compile failed",
		slog.String("stage", stage.String()),
		slog.String("name", name),
		slog.String("log", infoLog))
	return 0, &CompileError{Stage: stage, Name: name, Log: infoLog}
}
