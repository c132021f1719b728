package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/debugui"
	debugui_ebiten "github.com/plus3/stackfall/debugui/ebiten"
	"github.com/plus3/stackfall/game"
	"github.com/plus3/stackfall/settings"
)

type Game struct {
	session  *game.Session
	prefs    *settings.Manager
	bindings []binding
	renderer *boardRenderer
	ui       *debugui.System
	imgui    *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(keyQuit) {
		return ebiten.Termination
	}

	g.handleToggles()
	if !g.ui.Input.WantCaptureKeyboard {
		for _, a := range pressed(g.bindings) {
			g.session.Press(a)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.imgui.Update(func() {
		g.session.Update(dt)
	})
	return nil
}

func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(keyDebugOverlay) {
		g.prefs.ToggleDebugOverlay()
	}
	if inpututil.IsKeyJustPressed(keyGhost) {
		g.prefs.ToggleGhost()
	}
	if inpututil.IsKeyJustPressed(keyGrid) {
		g.prefs.ToggleGrid()
	}
	g.ui.Enabled = g.prefs.Get().DebugOverlay
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.Snapshot())
	if g.ui.Enabled {
		g.imgui.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "stackfall.yaml", "path to the YAML config")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 uses the config or the clock)")
	debug := flag.Bool("debug", false, "start with the debug overlay open")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	bindings, err := parseBindings(cfg)
	if err != nil {
		log.Fatalf("Failed to parse key bindings: %v", err)
	}

	session, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	prefs := settings.Open(settings.AppName)
	if *debug {
		prefs.Get().DebugOverlay = true
	}

	renderer := &boardRenderer{cfg: cfg, prefs: prefs}
	width, height := renderer.windowSize()
	backend := debugui_ebiten.New(cfg.Window.Title, width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ui := debugui.NewSystem()
	ui.Add(debugui.Panels(session, prefs)...)
	session.Register("DebugUI", ui)

	g := &Game{
		session:  session,
		prefs:    prefs,
		bindings: bindings,
		renderer: renderer,
		ui:       ui,
		imgui:    backend,
	}
	g.ui.Enabled = prefs.Get().DebugOverlay

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}

	if err := prefs.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}
