package components

import "image/color"

// ParticleComponent 纯表现用粒子
// 不影响任何玩法状态；位置与速度分别在 PositionComponent / VelocityComponent
// 中，寿命在 LifetimeComponent 中
type ParticleComponent struct {
	Color color.RGBA
	Size  float64 // 初始半径（像素），渲染时按剩余寿命比例缩小
}
