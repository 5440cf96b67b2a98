package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/shaderkit/engine/assets"
	"github.com/hubastard/shaderkit/engine/core"
)

var _ core.Renderer = (*RendererGL)(nil)

// RendererGL draws a fullscreen quad with a file-backed Shader.
type RendererGL struct {
	shader *Shader
	vao    uint32
	vbo    uint32
}

// NewRendererGL compiles the configured shader pair. The GL context must
// already be current.
func NewRendererGL(cfg core.Config) (*RendererGL, error) {
	loader := assets.NewShaderLoader(cfg.Shaders.Dir)
	r := &RendererGL{shader: NewShader(NewDriver(), loader)}
	if err := r.shader.Compile(cfg.Shaders.Vertex, cfg.Shaders.Fragment); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	r.initQuad()
	return r, nil
}

// Shader returns the program used by Draw, for uniform updates.
func (r *RendererGL) Shader() *Shader { return r.shader }

func (r *RendererGL) initQuad() {
	// Two triangles covering clip space: pos (x,y), uv (u,v)
	verts := []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		-1, 1, 0, 1,
		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	const stride = 4 * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	r.shader.Delete()
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw binds the shader; uniforms set since the last frame stay in effect.
func (r *RendererGL) Draw() {
	if r.shader.Program() == 0 {
		return
	}
	r.shader.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	r.shader.Unbind()
}
