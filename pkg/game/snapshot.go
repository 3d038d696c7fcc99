package game

import (
	"image/color"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/types"
)

// Snapshot 渲染器可见的只读世界状态
// 所有字段都是值拷贝，渲染器修改它不会影响模拟
type Snapshot struct {
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Particles   []ParticleView
	Zones       []ZoneView
	Pickups     []PickupView

	CameraX float64
	CameraY float64

	HUD      HUD
	GameOver bool
}

// ActorView 玩家与敌人共有的可见属性（左上角坐标）
type ActorView struct {
	X, Y          float64
	Width, Height float64
	Health        float64
	MaxHealth     float64
}

// HealthRatio 生命值比例，用于血条
func (a ActorView) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return a.Health / a.MaxHealth
}

// PlayerView 玩家视图
type PlayerView struct {
	ActorView
	Weapon components.Weapon
}

// EnemyView 敌人视图
type EnemyView struct {
	ActorView
	Type  types.EnemyType
	State components.EnemyState
	Color color.RGBA
}

// ProjectileView 弹道视图（中心坐标）
type ProjectileView struct {
	X, Y       float64
	VX, VY     float64
	FromPlayer bool
	Color      color.RGBA
}

// ParticleView 粒子视图
// Alpha = 剩余寿命 / 初始寿命
type ParticleView struct {
	X, Y  float64
	Size  float64
	Alpha float64
	Color color.RGBA
}

// ZoneView 治疗区视图
type ZoneView struct {
	X, Y          float64
	Width, Height float64
	Pulse         float64
}

// PickupView 武器拾取物视图（中心坐标）
type PickupView struct {
	X, Y     float64
	Bob      float64
	Rotation float64
	Weapon   components.Weapon
}

// HUD 抬头显示数据，结束画面也使用其中的波次、击杀与等级
type HUD struct {
	Health           float64
	MaxHealth        float64
	Level            int
	Experience       int
	ExperienceToNext int
	WeaponName       string
	Wave             int
	EnemiesRemaining int
	Kills            int
}
