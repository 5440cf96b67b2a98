package core

// Input is the key and cursor state accumulated from window events.
type Input struct {
	keys           map[Key]bool
	pressed        map[Key]bool // down transitions not yet consumed
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, pressed: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		// Key repeat reports Down again; only the first one counts as a press.
		if e.Down && !in.keys[e.Key] {
			in.pressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// FramebufferMouse maps the cursor from window coordinates (origin top-left)
// to framebuffer pixels with the origin at the bottom-left, as gl_FragCoord
// uses. The two sizes differ on HiDPI displays.
func (in *Input) FramebufferMouse(winW, winH, fbW, fbH int) (x, y float64) {
	if winW <= 0 || winH <= 0 {
		return 0, 0
	}
	sx := float64(fbW) / float64(winW)
	sy := float64(fbH) / float64(winH)
	return in.mouseX * sx, float64(fbH) - in.mouseY*sy
}

// ConsumePress reports whether k went down since the last call for k.
func (in *Input) ConsumePress(k Key) bool {
	p := in.pressed[k]
	delete(in.pressed, k)
	return p
}
