package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/shaderkit/engine/core"
	glbackend "github.com/hubastard/shaderkit/engine/gfx/gl"
	"github.com/hubastard/shaderkit/engine/platform"
)

type App struct {
	cfg     core.Config
	rend    *glbackend.RendererGL
	watcher *glbackend.Watcher
	t       float32
	spin    float32
}

func (a *App) OnStart(e *core.Engine) {
	if !a.cfg.Shaders.HotReload {
		return
	}
	w, err := glbackend.NewWatcher()
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
		return
	}
	if err := w.Watch(a.rend.Shader()); err != nil {
		log.Printf("hot reload disabled: %v", err)
		_ = w.Close()
		return
	}
	a.watcher = w
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.t += float32(dt)
	a.spin += float32(dt) * 0.5
	if e.Input.ConsumePress(core.KeyR) {
		if err := a.rend.Shader().Reload(); err != nil {
			log.Printf("shader reload: %v", err)
		} else {
			log.Println("shader reloaded")
		}
	}
	if a.watcher != nil {
		if err := a.watcher.Poll(); err != nil {
			log.Printf("shader reload: %v", err)
		}
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	sh := a.rend.Shader()
	if sh.Program() == 0 {
		return
	}
	w, h := e.Window.FramebufferSize()
	ww, wh := e.Window.Size()
	mx, my := e.Input.FramebufferMouse(ww, wh, w, h)

	sh.Use()
	sh.SetFloat("uTime", a.t)
	sh.SetVec2f("uResolution", float32(w), float32(h))
	sh.SetVec2f("uMouse", float32(mx), float32(my))
	sh.SetModelMatrix(mgl32.HomogRotate3DZ(a.spin))
	sh.SetMaterial(glbackend.Material{
		Diffuse:   mgl32.Vec3{1.0, 0.5, 0.31},
		Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32,
	})
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults apply when empty)")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	lvl, err := cfg.SlogLevel()
	if err != nil {
		log.Fatal(err)
	}
	glbackend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	app := &App{cfg: cfg}
	var win *platform.GLFWWindow

	newWindow := func(cfg core.Config) (core.Window, error) {
		var err error
		win, err = platform.NewGLFWWindow(cfg, nil)
		return win, err
	}
	newRenderer := func(_ core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(cfg)
		if err != nil {
			return nil, err
		}
		app.rend = r
		return r, nil
	}

	err = core.Run(app, cfg, newWindow, newRenderer)
	if win != nil {
		win.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
