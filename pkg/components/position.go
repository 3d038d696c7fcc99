package components

// PositionComponent 世界坐标
//
// 玩家与敌人：矩形左上角
// 弹道与粒子：中心点
// 拾取物：中心点（碰撞盒为以此为中心的正方形）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
