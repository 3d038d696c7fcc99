package components

// LifetimeComponent 管理瞬时实体的剩余寿命
// 用于弹道与粒子：每帧递减，<= 0 时实体被移除
type LifetimeComponent struct {
	MaxLifetime float64 // 初始寿命（秒）
	Remaining   float64 // 剩余寿命（秒），不会小于 0
}

// IsExpired 寿命是否耗尽
func (l *LifetimeComponent) IsExpired() bool {
	return l.Remaining <= 0
}
