package components

import "image/color"

// ProjectileComponent 弹道
// 速度在创建时由起点与目标方向一次性算出，此后保持直线飞行
// 寿命由同一实体上的 LifetimeComponent 管理
type ProjectileComponent struct {
	Damage     float64
	FromPlayer bool // true: 玩家发射，只命中敌人；false: 敌人发射，只命中玩家
	Color      color.RGBA
}
