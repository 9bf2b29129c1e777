package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/friendlist/internal/command"
	"github.com/appengine-ltd/friendlist/internal/config"
	"github.com/appengine-ltd/friendlist/internal/input"
	"github.com/appengine-ltd/friendlist/internal/overlay"
	"github.com/appengine-ltd/friendlist/internal/roster"
	"github.com/appengine-ltd/friendlist/internal/session"
	"github.com/appengine-ltd/friendlist/internal/status"
	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

type AppConfig struct {
	Version    string
	Config     config.Config
	RosterPath string
	Log        *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	return ui.Run()
}

type gameUI struct {
	cfg AppConfig
	log *zap.Logger

	width  int32
	height int32
	quit   bool

	store       *roster.Store
	watcher     *roster.Watcher
	sess        *session.Session
	chain       *input.Chain
	interceptor *command.Interceptor
	overlay     *overlay.Controller

	world  *world
	chat   *chatBox
	social *socialLog
	toggle Shortcut

	lastTick time.Time
}

var defaultToggle = Shortcut{Key: rl.KeyK}

func newGameUI(cfg AppConfig) *gameUI {
	cfg.Config.Normalize()
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	ui := &gameUI{
		cfg:    cfg,
		log:    log.Named("gui"),
		width:  int32(cfg.Config.Window.Width),
		height: int32(cfg.Config.Window.Height),
		chat:   &chatBox{},
		social: newSocialLog(),
		toggle: defaultToggle,
	}

	toggle, err := ParseShortcut(cfg.Config.ToggleHotkey)
	if err != nil {
		ui.log.Warn("bad toggle hotkey; using default", zap.String("hotkey", cfg.Config.ToggleHotkey), zap.Error(err))
	} else {
		ui.toggle = toggle
	}

	ui.store = roster.NewStore(cfg.RosterPath, log.Named("roster"))
	ui.store.Load()

	viewport := rl.NewVector2(float32(ui.width), float32(ui.height))
	ui.world = newWorld(viewport, uint64(time.Now().UnixNano()))
	ui.sess = session.New(log, ui.store, ui.social, ui.chat)
	ui.chain = input.NewChain(raylibSource{}, log.Named("input"))
	ui.interceptor = command.NewInterceptor(ui.sess)
	resolver := status.NewResolver(ui.world, ui.world, log.Named("status"))
	ui.overlay = overlay.New(ui.sess, resolver, overlay.Options{
		Anchor:    ui.world,
		Projector: ui.world,
		Target:    ui.world,
		Host:      ui.world,
		Input:     ui.chain,
		PanelSize: rl.NewVector2(float32(cfg.Config.Panel.Width), float32(cfg.Config.Panel.Height)),
	})
	ui.lastTick = time.Now()
	return ui
}

func (ui *gameUI) Run() error {
	if ui.cfg.Config.WatchRoster {
		w, err := roster.NewWatcher(ui.store, ui.log)
		if err != nil {
			ui.log.Warn("roster watcher unavailable", zap.Error(err))
		} else if err := w.Start(); err != nil {
			ui.log.Warn("start roster watcher", zap.Error(err))
			_ = w.Close()
		} else {
			ui.watcher = w
			defer ui.watcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, fmt.Sprintf("friendlist %s", ui.cfg.Version))
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	defer shutdownTypography()

	ui.social.LogAdd(fmt.Sprintf("Welcome! Press %s to open your friend list, /help for commands.", ui.toggle), "grey")

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(uitheme.BG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) viewport() rl.Vector2 {
	return rl.NewVector2(float32(ui.width), float32(ui.height))
}

// update runs the host before the overlay so the overlay's filters are in
// effect for every host query made this frame.
func (ui *gameUI) update(delta time.Duration) {
	if ui.watcher != nil {
		ui.watcher.Poll()
	}

	mouse := rl.GetMousePosition()
	st := ui.overlay.State()
	ui.world.update(float32(delta.Seconds()), worldInput{
		src:      ui.chain,
		viewport: ui.viewport(),
		clicked:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		clickAt:  ui.world.ScreenToWorld(mouse),
		typing:   ui.chat.typing,
		blocked:  st.Open && (st.PendingRemoval != "" || rl.CheckCollisionPointRec(mouse, st.Window)),
	})
	ui.updateChat()

	raw := ui.chain.Raw()
	ui.overlay.Update(overlay.FrameInput{
		Viewport:      ui.viewport(),
		Mouse:         mouse,
		MousePressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		MouseDown:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		MouseReleased: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Wheel:         raw.Axis(input.AxisScrollWheel),
		EscapePressed: raw.Key(input.KeyEscape, input.Pressed),
		TogglePressed: ui.toggle.Pressed(raw),
	})
}

func (ui *gameUI) draw() {
	vp := ui.viewport()
	ui.world.draw()
	ui.world.drawGroupPanel()

	logRect := rl.NewRectangle(16, vp.Y-16-220, 460, 180)
	drawSocialLog(logRect, ui.social.Entries())
	drawChatBox(rl.NewRectangle(16, vp.Y-16-34, 460, 34), ui.chat)

	hint := fmt.Sprintf("%s friends  |  arrows pan  |  wheel zoom  |  click a sim to target  |  Esc pause", ui.toggle)
	uitheme.DrawHintText(hint, 16, 12)

	ui.world.drawPauseMenu(vp)
	drawOverlayFrame(ui.overlay.Frame())
}
