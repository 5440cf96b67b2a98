package glbackend

import "strings"

type fakeShaderObj struct {
	stage   Stage
	src     string
	deleted bool
}

type fakeProgramObj struct {
	attached map[uint32]bool
	linked   bool
	deleted  bool
}

type uniformCall struct {
	fn   string
	loc  int32
	args []float32
}

// fakeDriver records GL calls. Sources containing "#error" fail to compile
// and failLink makes every link fail.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShaderObj
	programs map[uint32]*fakeProgramObj

	compileLog string
	failLink   bool
	linkLog    string

	// uniform name -> location for every program; unknown names are -1.
	uniforms map[string]int32
	lookups  int
	calls    []uniformCall
	bound    uint32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShaderObj),
		programs: make(map[uint32]*fakeProgramObj),
		uniforms: make(map[string]int32),
	}
}

func (d *fakeDriver) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	h := d.handle()
	d.shaders[h] = &fakeShaderObj{stage: stage}
	return h
}

func (d *fakeDriver) CompileShader(sh uint32, src string) { d.shaders[sh].src = src }

func (d *fakeDriver) ShaderCompiled(sh uint32) bool {
	return !strings.Contains(d.shaders[sh].src, "#error")
}

func (d *fakeDriver) ShaderInfoLog(uint32) string { return d.compileLog }
func (d *fakeDriver) DeleteShader(sh uint32)      { d.shaders[sh].deleted = true }

func (d *fakeDriver) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = &fakeProgramObj{attached: make(map[uint32]bool)}
	return h
}

func (d *fakeDriver) AttachShader(prog, sh uint32)   { d.programs[prog].attached[sh] = true }
func (d *fakeDriver) DetachShader(prog, sh uint32)   { delete(d.programs[prog].attached, sh) }
func (d *fakeDriver) LinkProgram(prog uint32)        { d.programs[prog].linked = !d.failLink }
func (d *fakeDriver) ProgramLinked(prog uint32) bool { return d.programs[prog].linked }
func (d *fakeDriver) ProgramInfoLog(uint32) string   { return d.linkLog }
func (d *fakeDriver) UseProgram(prog uint32)         { d.bound = prog }
func (d *fakeDriver) DeleteProgram(prog uint32)      { d.programs[prog].deleted = true }

func (d *fakeDriver) UniformLocation(_ uint32, name string) int32 {
	d.lookups++
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) record(fn string, loc int32, args ...float32) {
	d.calls = append(d.calls, uniformCall{fn: fn, loc: loc, args: args})
}

func (d *fakeDriver) Uniform1i(loc int32, v int32)            { d.record("1i", loc, float32(v)) }
func (d *fakeDriver) Uniform1f(loc int32, v float32)          { d.record("1f", loc, v) }
func (d *fakeDriver) Uniform2f(loc int32, x, y float32)       { d.record("2f", loc, x, y) }
func (d *fakeDriver) Uniform3f(loc int32, x, y, z float32)    { d.record("3f", loc, x, y, z) }
func (d *fakeDriver) Uniform4f(loc int32, x, y, z, w float32) { d.record("4f", loc, x, y, z, w) }
func (d *fakeDriver) Uniform1fv(loc int32, v []float32)       { d.record("1fv", loc, v...) }
func (d *fakeDriver) Uniform2fv(loc int32, v []float32)       { d.record("2fv", loc, v...) }
func (d *fakeDriver) Uniform3fv(loc int32, v []float32)       { d.record("3fv", loc, v...) }
func (d *fakeDriver) Uniform4fv(loc int32, v []float32)       { d.record("4fv", loc, v...) }
func (d *fakeDriver) UniformMatrix3fv(loc int32, m []float32) { d.record("m3", loc, m...) }
func (d *fakeDriver) UniformMatrix4fv(loc int32, m []float32) { d.record("m4", loc, m...) }

// live counts objects not yet deleted.
func (d *fakeDriver) live() (shaders, programs int) {
	for _, s := range d.shaders {
		if !s.deleted {
			shaders++
		}
	}
	for _, p := range d.programs {
		if !p.deleted {
			programs++
		}
	}
	return shaders, programs
}
