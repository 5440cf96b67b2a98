package glbackend

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/shaderkit/engine/colors"
)

// Location returns the uniform location of name, caching lookups until the
// program changes. It returns -1 when there is no program or the uniform is
// not active.
func (s *Shader) Location(name string) int32 {
	if s.program == 0 {
		return -1
	}
	if loc, ok := s.locs[name]; ok {
		return loc
	}
	loc := s.drv.UniformLocation(s.program, name)
	s.locs[name] = loc
	return loc
}

// Setters upload to the current program, so Use must have been called.
// Unknown uniforms are silently skipped, as GL does for location -1.

func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	s.SetInt(name, i)
}

func (s *Shader) SetInt(name string, v int32) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform1i(loc, v)
	}
}

func (s *Shader) SetFloat(name string, v float32) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform1f(loc, v)
	}
}

// SetFloats uploads a float array uniform.
func (s *Shader) SetFloats(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform1fv(loc, v)
	}
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform2fv(loc, v[:])
	}
}

func (s *Shader) SetVec2f(name string, x, y float32) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform2f(loc, x, y)
	}
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform3fv(loc, v[:])
	}
}

func (s *Shader) SetVec3f(name string, x, y, z float32) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform3f(loc, x, y, z)
	}
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform4fv(loc, v[:])
	}
}

func (s *Shader) SetVec4f(name string, x, y, z, w float32) {
	if loc := s.Location(name); loc != -1 {
		s.drv.Uniform4f(loc, x, y, z, w)
	}
}

// SetColor uploads c as a vec4.
func (s *Shader) SetColor(name string, c colors.Color) {
	s.SetVec4(name, c.Vec4())
}

// SetMat3 and SetMat4 upload column-major matrices without transposing.
func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	if loc := s.Location(name); loc != -1 {
		s.drv.UniformMatrix3fv(loc, m[:])
	}
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.Location(name); loc != -1 {
		s.drv.UniformMatrix4fv(loc, m[:])
	}
}
