package systems

import (
	"math"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
)

// diagonalFactor 斜向移动时每个轴的缩放系数，保证斜向速度不超过轴向速度
var diagonalFactor = 1 / math.Sqrt2

// PlayerSystem 处理玩家移动与攻击冷却
type PlayerSystem struct {
	entityManager *ecs.EntityManager
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager) *PlayerSystem {
	return &PlayerSystem{entityManager: em}
}

// Update 根据输入移动玩家并推进攻击冷却
//
// 两个轴都有输入时各乘以 1/√2；移动后位置限制在世界范围内。
func (s *PlayerSystem) Update(deltaTime float64, input game.InputSnapshot) {
	player, ok := findPlayer(s.entityManager)
	if !ok || !player.health.IsAlive() {
		return
	}

	dx, dy := input.MoveAxes()
	vx := dx * player.player.Speed
	vy := dy * player.player.Speed
	if vx != 0 && vy != 0 {
		vx *= diagonalFactor
		vy *= diagonalFactor
	}

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, player.id); ok {
		vel.VX = vx
		vel.VY = vy
	}

	player.pos.X += vx * deltaTime
	player.pos.Y += vy * deltaTime
	clampToWorld(player.pos, player.collision.Width, player.collision.Height)

	if player.player.AttackCooldown > 0 {
		player.player.AttackCooldown -= deltaTime
	}
}
