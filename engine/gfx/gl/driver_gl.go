package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// glDriver forwards to go-gl. A GL context must be current on the calling
// thread.
type glDriver struct{}

// NewDriver returns the OpenGL 3.3 core implementation of Driver.
func NewDriver() Driver { return glDriver{} }

func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func glStage(s Stage) uint32 {
	if s == StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (glDriver) CreateShader(stage Stage) uint32 { return gl.CreateShader(glStage(stage)) }

func (glDriver) CompileShader(sh uint32, src string) {
	csrc, free := gl.Strs(cstr(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)
}

func (glDriver) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glDriver) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (glDriver) CreateProgram() uint32        { return gl.CreateProgram() }
func (glDriver) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }
func (glDriver) DetachShader(prog, sh uint32) { gl.DetachShader(prog, sh) }
func (glDriver) LinkProgram(prog uint32)      { gl.LinkProgram(prog) }
func (glDriver) UseProgram(prog uint32)       { gl.UseProgram(prog) }
func (glDriver) DeleteProgram(prog uint32)    { gl.DeleteProgram(prog) }

func (glDriver) ProgramLinked(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (glDriver) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	// Some drivers report 0, others 1 for an empty log.
	if logLen <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (glDriver) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(cstr(name)))
}

func (glDriver) Uniform1i(loc int32, v int32)            { gl.Uniform1i(loc, v) }
func (glDriver) Uniform1f(loc int32, v float32)          { gl.Uniform1f(loc, v) }
func (glDriver) Uniform2f(loc int32, x, y float32)       { gl.Uniform2f(loc, x, y) }
func (glDriver) Uniform3f(loc int32, x, y, z float32)    { gl.Uniform3f(loc, x, y, z) }
func (glDriver) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (glDriver) Uniform1fv(loc int32, v []float32) {
	if len(v) > 0 {
		gl.Uniform1fv(loc, int32(len(v)), &v[0])
	}
}

func (glDriver) Uniform2fv(loc int32, v []float32) {
	if len(v) >= 2 {
		gl.Uniform2fv(loc, int32(len(v)/2), &v[0])
	}
}

func (glDriver) Uniform3fv(loc int32, v []float32) {
	if len(v) >= 3 {
		gl.Uniform3fv(loc, int32(len(v)/3), &v[0])
	}
}

func (glDriver) Uniform4fv(loc int32, v []float32) {
	if len(v) >= 4 {
		gl.Uniform4fv(loc, int32(len(v)/4), &v[0])
	}
}

func (glDriver) UniformMatrix3fv(loc int32, m []float32) {
	if len(m) >= 9 {
		gl.UniformMatrix3fv(loc, int32(len(m)/9), false, &m[0])
	}
}

func (glDriver) UniformMatrix4fv(loc int32, m []float32) {
	if len(m) >= 16 {
		gl.UniformMatrix4fv(loc, int32(len(m)/16), false, &m[0])
	}
}
