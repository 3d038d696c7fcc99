package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene 宿主循环驱动的场景
// 每个 tick 调用一次 Update，每帧调用一次 Draw
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
