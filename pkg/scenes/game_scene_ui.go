package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/utils"
)

const (
	hudHeight          = 80
	hudHealthBarWidth  = 200
	hudHealthBarHeight = 20
	hudTextScale       = 2.0
	hudTitleScale      = 3.0

	gameOverFadeDuration = 0.5 // 结束画面淡入时间（秒）
)

var (
	hudBackColor   = color.RGBA{R: 16, G: 16, B: 24, A: 204}
	hudWhite       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hudYellow      = utils.MustParseHexColor("#FFD700")
	hudCyan        = utils.MustParseHexColor("#00FFFF")
	hudOrange      = utils.MustParseHexColor("#FF8C00")
	hudRed         = utils.MustParseHexColor("#DC3232")
	hudGreen       = utils.MustParseHexColor("#32C850")
	gameOverShadow = color.RGBA{A: 178}
)

// drawText 以 face 的原始尺寸乘以 scale 绘制文本
// align 控制 x 是文本的起点、中点还是终点
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFace, op)
}

// drawHUD 绘制顶部信息栏
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	hud := s.snapshot.HUD
	w := float64(config.ScreenWidth)

	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, hudBackColor, false)

	s.drawText(screen, fmt.Sprintf("Health: %d/%d", int(hud.Health), int(hud.MaxHealth)), 20, 8, hudTextScale, color.White, text.AlignStart)
	ratio := 0.0
	if hud.MaxHealth > 0 {
		ratio = utils.Clamp(hud.Health/hud.MaxHealth, 0, 1)
	}
	vector.DrawFilledRect(screen, 20, 40, hudHealthBarWidth, hudHealthBarHeight, hudRed, false)
	vector.DrawFilledRect(screen, 20, 40, float32(hudHealthBarWidth*ratio), hudHealthBarHeight, hudGreen, false)
	vector.StrokeRect(screen, 20, 40, hudHealthBarWidth, hudHealthBarHeight, 2, color.White, false)

	s.drawText(screen, "Weapon: "+hud.WeaponName, 250, 8, hudTextScale, color.White, text.AlignStart)
	s.drawText(screen, fmt.Sprintf("Damage: %g", s.snapshot.Player.Weapon.Damage), 250, 40, hudTextScale, hudYellow, text.AlignStart)

	s.drawText(screen, fmt.Sprintf("Level: %d", hud.Level), 480, 8, hudTextScale, hudCyan, text.AlignStart)
	s.drawText(screen, fmt.Sprintf("EXP: %d/%d", hud.Experience, hud.ExperienceToNext), 480, 40, hudTextScale, hudCyan, text.AlignStart)

	s.drawText(screen, fmt.Sprintf("Wave %d", hud.Wave), w/2+80, 18, hudTitleScale, hudOrange, text.AlignCenter)

	s.drawText(screen, fmt.Sprintf("Kills: %d", hud.Kills), w-20, 8, hudTextScale, color.White, text.AlignEnd)
	s.drawText(screen, fmt.Sprintf("Enemies left: %d", hud.EnemiesRemaining), w-20, 40, hudTextScale, hudRed, text.AlignEnd)

	if s.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, hudHeight+10)
	}
}

// drawGameOver 绘制结束画面（淡入）
func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	fade := utils.EaseOutQuad(utils.Clamp(s.gameOverTimer/gameOverFadeDuration, 0, 1))
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(gameOverShadow, fade), false)

	cx, cy := w/2, h/2
	s.drawText(screen, "GAME OVER", cx, cy-140, 5, withAlpha(hudRed, fade), text.AlignCenter)

	hud := s.snapshot.HUD
	stats := []string{
		fmt.Sprintf("Wave Reached: %d", hud.Wave),
		fmt.Sprintf("Total Kills: %d", hud.Kills),
		fmt.Sprintf("Final Level: %d", hud.Level),
	}
	for i, line := range stats {
		s.drawText(screen, line, cx, cy-40+float64(i)*40, hudTextScale*1.5, withAlpha(hudWhite, fade), text.AlignCenter)
	}

	best := s.records.GetRecords()
	bestLine := fmt.Sprintf("Best: wave %d, %d kills, level %d", best.BestWave, best.BestKills, best.BestLevel)
	if s.newBest {
		bestLine = "New best wave!  " + bestLine
	}
	s.drawText(screen, bestLine, cx, cy+90, hudTextScale, withAlpha(hudYellow, fade), text.AlignCenter)

	s.drawText(screen, "Click or Press R to Restart", cx, cy+140, hudTextScale*1.5, withAlpha(hudGreen, fade), text.AlignCenter)
}
