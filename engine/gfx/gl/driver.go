package glbackend

// Stage identifies a programmable pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Driver is the slice of the GL shader/program API the Shader wrapper needs.
// Handles are GL object names; 0 is never a valid object.
type Driver interface {
	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, src string)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 for names the linker did not keep.
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	// The *fv variants upload len(v)/n elements of an n-component type.
	Uniform1fv(loc int32, v []float32)
	Uniform2fv(loc int32, v []float32)
	Uniform3fv(loc int32, v []float32)
	Uniform4fv(loc int32, v []float32)
	UniformMatrix3fv(loc int32, m []float32)
	UniformMatrix4fv(loc int32, m []float32)
}
