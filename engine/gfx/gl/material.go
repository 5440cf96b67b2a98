package glbackend

import "github.com/go-gl/mathgl/mgl32"

// Uniform names written by SetMaterial and SetModelMatrix.
const (
	UniformObjectColor   = "objectColor"
	UniformAmbient       = "ambient"
	UniformSpecularColor = "specularColor"
	UniformShininess     = "shininess"
	UniformModelMatrix   = "modelMat"
)

// Material is a Phong surface description.
type Material struct {
	Diffuse   mgl32.Vec3
	Ambient   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// SetMaterial uploads m to the objectColor, ambient, specularColor and
// shininess uniforms.
func (s *Shader) SetMaterial(m Material) {
	s.SetVec3(UniformObjectColor, m.Diffuse)
	s.SetVec3(UniformAmbient, m.Ambient)
	s.SetVec3(UniformSpecularColor, m.Specular)
	s.SetFloat(UniformShininess, m.Shininess)
}

// SetModelMatrix uploads the model transform to modelMat.
func (s *Shader) SetModelMatrix(m mgl32.Mat4) {
	s.SetMat4(UniformModelMatrix, m)
}
