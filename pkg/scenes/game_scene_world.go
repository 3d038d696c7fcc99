package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/types"
	"github.com/gonewx/rangerpg/pkg/utils"
)

const (
	gridSize         = 100.0
	healthBarHeight  = 6.0
	healthBarOffset  = 15.0 // 血条位于实体上方的距离
	projectileRadius = float32(config.ProjectileRadius)
	pickupHalfSize   = config.PickupSize / 2
	pickupBobHeight  = 5.0
	zonePulseInset   = 10.0
	trailSegments    = 3
	cullMargin       = 40.0
)

var (
	backgroundColor = utils.MustParseHexColor("#28293D")
	gridColor       = utils.MustParseHexColor("#3C3C50")
	worldEdgeColor  = utils.MustParseHexColor("#646478")
	playerColor     = utils.MustParseHexColor("#4682DC")
	barBackColor    = utils.MustParseHexColor("#DC3232")
	barFillColor    = utils.MustParseHexColor("#32C850")
	eyeColor        = utils.MustParseHexColor("#FFD700")
	zoneEdgeColor   = withAlpha(utils.MustParseHexColor("#64FF64"), 0.6)
	zoneFillColor   = withAlpha(utils.MustParseHexColor("#32C832"), 0.2)
)

// withAlpha 返回按 alpha 预乘后的颜色（ebiten 使用预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// drawWorld 按 背景 → 治疗区 → 拾取物 → 敌人 → 玩家 → 弹道 → 粒子 的顺序绘制
// 完全处于视口外的实体跳过
func drawWorld(screen *ebiten.Image, snap *game.Snapshot) {
	camX, camY := snap.CameraX, snap.CameraY
	view := &game.GameState{CameraX: camX, CameraY: camY}

	drawGround(screen, camX, camY)
	for _, z := range snap.Zones {
		if onScreen(view, z.X, z.Y, z.Width, z.Height) {
			drawZone(screen, z, camX, camY)
		}
	}
	for _, p := range snap.Pickups {
		if onScreen(view, p.X-pickupHalfSize, p.Y-pickupHalfSize, config.PickupSize, config.PickupSize) {
			drawPickup(screen, p, camX, camY)
		}
	}
	for _, e := range snap.Enemies {
		if onScreen(view, e.X, e.Y, e.Width, e.Height) {
			drawEnemy(screen, e, camX, camY)
		}
	}
	drawPlayer(screen, snap.Player, camX, camY)
	for _, p := range snap.Projectiles {
		if onScreen(view, p.X, p.Y, 0, 0) {
			drawProjectile(screen, p, camX, camY)
		}
	}
	for _, p := range snap.Particles {
		if onScreen(view, p.X, p.Y, 0, 0) {
			drawParticle(screen, p, camX, camY)
		}
	}
}

// onScreen 在实体矩形四周留出 cullMargin，血条与拖尾不会在视口边缘被截掉
func onScreen(view *game.GameState, x, y, width, height float64) bool {
	return view.IsOnScreen(x-cullMargin, y-cullMargin, width+2*cullMargin, height+2*cullMargin)
}

func drawGround(screen *ebiten.Image, camX, camY float64) {
	screen.Fill(backgroundColor)

	sw, sh := float32(config.ScreenWidth), float32(config.ScreenHeight)
	for x := 0.0; x < config.WorldWidth; x += gridSize {
		sx := x - camX
		if sx >= -gridSize && sx <= config.ScreenWidth+gridSize {
			vector.StrokeLine(screen, float32(sx), 0, float32(sx), sh, 1, gridColor, false)
		}
	}
	for y := 0.0; y < config.WorldHeight; y += gridSize {
		sy := y - camY
		if sy >= -gridSize && sy <= config.ScreenHeight+gridSize {
			vector.StrokeLine(screen, 0, float32(sy), sw, float32(sy), 1, gridColor, false)
		}
	}

	vector.StrokeRect(screen, float32(-camX), float32(-camY), config.WorldWidth, config.WorldHeight, 5, worldEdgeColor, false)
}

func drawZone(screen *ebiten.Image, z game.ZoneView, camX, camY float64) {
	x, y := float32(z.X-camX), float32(z.Y-camY)
	vector.StrokeRect(screen, x, y, float32(z.Width), float32(z.Height), 3, zoneEdgeColor, false)

	inset := float32(math.Sin(z.Pulse) * zonePulseInset)
	vector.DrawFilledRect(screen, x+inset, y+inset, float32(z.Width)-2*inset, float32(z.Height)-2*inset, zoneFillColor, false)
}

func drawPickup(screen *ebiten.Image, p game.PickupView, camX, camY float64) {
	cx := p.X - camX
	cy := p.Y - camY + math.Sin(p.Bob)*pickupBobHeight
	c := p.Weapon.Color

	// 旋转的方框
	corners := [4][2]float64{}
	for i := range corners {
		angle := p.Rotation + math.Pi/4 + float64(i)*math.Pi/2
		r := pickupHalfSize * math.Sqrt2
		corners[i] = [2]float64{cx + math.Cos(angle)*r, cy + math.Sin(angle)*r}
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 3, c, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 8, c, true)
}

func drawEnemy(screen *ebiten.Image, e game.EnemyView, camX, camY float64) {
	x, y := float32(e.X-camX), float32(e.Y-camY)
	w, h := float32(e.Width), float32(e.Height)

	vector.DrawFilledRect(screen, x, y, w, h, e.Color, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.Black, false)

	eyeSize := float32(4)
	if e.Type == types.EnemyBoss {
		vector.StrokeRect(screen, x+5, y+5, w-10, h-10, 2, eyeColor, false)
		eyeSize = 6
	}
	eyeOffset := w / 4
	vector.DrawFilledCircle(screen, x+eyeOffset, y+eyeOffset, eyeSize, eyeColor, true)
	vector.DrawFilledCircle(screen, x+w-eyeOffset, y+eyeOffset, eyeSize, eyeColor, true)

	drawHealthBar(screen, e.ActorView, camX, camY)
}

func drawPlayer(screen *ebiten.Image, p game.PlayerView, camX, camY float64) {
	x, y := float32(p.X-camX), float32(p.Y-camY)
	w, h := float32(p.Width), float32(p.Height)

	vector.DrawFilledRect(screen, x, y, w, h, playerColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.White, false)

	for _, ex := range []float32{12, 28} {
		vector.DrawFilledCircle(screen, x+ex, y+12, 6, color.White, true)
		vector.DrawFilledCircle(screen, x+ex, y+12, 3, color.Black, true)
	}

	drawHealthBar(screen, p.ActorView, camX, camY)
	drawWeaponHint(screen, p.Weapon, x, y, w, h)
}

// drawWeaponHint 在玩家右侧画出武器示意
func drawWeaponHint(screen *ebiten.Image, w components.Weapon, x, y, width, height float32) {
	switch w.Class {
	case types.WeaponSword, types.WeaponDualBlades:
		vector.StrokeLine(screen, x+width, y+height/2, x+width+15, y+height/2, 3, w.Color, true)
	case types.WeaponBow:
		strokeArc(screen, x+width-5, y+20, 10, -math.Pi/4, math.Pi/4, 2, w.Color)
	case types.WeaponStaff:
		vector.StrokeLine(screen, x+width+4, y, x+width+4, y+height, 3, w.Color, true)
		vector.DrawFilledCircle(screen, x+width+4, y, 4, w.Color, true)
	case types.WeaponHammer:
		vector.StrokeLine(screen, x+width, y+height/2, x+width+12, y+height/2, 3, w.Color, true)
		vector.DrawFilledRect(screen, x+width+10, y+height/2-8, 8, 16, w.Color, true)
	}
}

// strokeArc 用折线近似绘制圆弧
func strokeArc(screen *ebiten.Image, cx, cy, r float32, from, to float64, width float32, c color.RGBA) {
	const segments = 8
	step := (to - from) / segments
	px := cx + r*float32(math.Cos(from))
	py := cy + r*float32(math.Sin(from))
	for i := 1; i <= segments; i++ {
		angle := from + step*float64(i)
		nx := cx + r*float32(math.Cos(angle))
		ny := cy + r*float32(math.Sin(angle))
		vector.StrokeLine(screen, px, py, nx, ny, width, c, true)
		px, py = nx, ny
	}
}

func drawProjectile(screen *ebiten.Image, p game.ProjectileView, camX, camY float64) {
	x, y := p.X-camX, p.Y-camY
	vector.DrawFilledCircle(screen, float32(x), float32(y), projectileRadius, p.Color, true)

	for i := 0; i < trailSegments; i++ {
		offset := float64(i+1) * 5
		tx := x - p.VX*0.01*offset
		ty := y - p.VY*0.01*offset
		alpha := 1 - float64(i)/trailSegments
		r := max(1, projectileRadius-float32(i))
		vector.DrawFilledCircle(screen, float32(tx), float32(ty), r, withAlpha(p.Color, alpha), true)
	}
}

func drawParticle(screen *ebiten.Image, p game.ParticleView, camX, camY float64) {
	size := math.Floor(p.Size * p.Alpha)
	if size <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(p.X-camX), float32(p.Y-camY), float32(size), withAlpha(p.Color, p.Alpha), true)
}

func drawHealthBar(screen *ebiten.Image, a game.ActorView, camX, camY float64) {
	x := float32(a.X - camX)
	y := float32(a.Y - camY - healthBarOffset)
	w := float32(a.Width)

	vector.DrawFilledRect(screen, x, y, w, healthBarHeight, barBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(utils.Clamp(a.HealthRatio(), 0, 1)), healthBarHeight, barFillColor, false)
	vector.StrokeRect(screen, x, y, w, healthBarHeight, 1, color.Black, false)
}
