package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/rangerpg/pkg/game"
)

// EbitenInput 从键盘与鼠标采集输入
//
// 移动：WASD 或方向键（按住）
// 攻击：鼠标左键按下的那一帧
// 重开：R 键按下的那一帧
type EbitenInput struct{}

// Poll 实现 game.InputSource
func (EbitenInput) Poll(gs *game.GameState) game.InputSnapshot {
	mx, my := ebiten.CursorPosition()
	aimX, aimY := gs.ScreenToWorld(float64(mx), float64(my))
	return game.InputSnapshot{
		Up:      anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		AimX:    aimX,
		AimY:    aimY,
		Attack:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
