// Package app 提供游戏应用的核心包装器
//
// 该包把会话、场景与宿主循环组装成 ebiten.Game，main 只负责解析参数与准备依赖。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/scenes"
	"github.com/gonewx/rangerpg/pkg/session"
)

// WindowTitle 窗口标题
const WindowTitle = "Ranger RPG"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Balance 数值配置，为 nil 时使用内置默认值
	Balance *config.BalanceConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Records 战绩管理器，为 nil 时只在内存中记录
	Records *game.RecordManager
	// Settings 显示设置，为 nil 时只在内存中保存
	Settings *game.SettingsManager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	gameScene    *scenes.GameScene
	settings     *game.SettingsManager
	verbose      bool

	// 帧间隔测量
	now        func() time.Time
	lastUpdate time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	sess, err := session.New(cfg.Balance, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	gameScene := scenes.NewGameScene(sess, scenes.EbitenInput{}, cfg.Records)
	gameScene.SetShowDebug(settings.GetSettings().ShowFPS)

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		gameScene:    gameScene,
		settings:     settings,
		verbose:      cfg.Verbose,
		now:          time.Now,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		}
		a.settings.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	// F3 切换帧率显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		show := !a.settings.GetSettings().ShowFPS
		a.settings.SetShowFPS(show)
		a.gameScene.SetShowDebug(show)
		a.saveSettings()
	}

	a.sceneManager.Update(a.frameDelta())
	return nil
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// frameDelta 返回距上一次 Update 的真实秒数
// 第一帧使用 1/TPS；结果被限制在 [0, MaxDeltaTime]，窗口拖动等卡顿不会让实体一步穿过目标
func (a *App) frameDelta() float64 {
	now := a.now()
	defer func() { a.lastUpdate = now }()

	if a.lastUpdate.IsZero() {
		return 1.0 / float64(ebiten.DefaultTPS)
	}

	dt := now.Sub(a.lastUpdate).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, config.MaxDeltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
