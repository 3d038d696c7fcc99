package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/types"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// EnemyBehaviorSystem 敌人行为状态机
//
// 每帧对每个存活敌人：
//  1. 冷却 = max(0, 冷却 - Δt)
//  2. 与玩家中心距离 > 攻击距离：Chasing，朝玩家直线移动（限制在世界内）
//  3. 否则：Attacking，速度归零；冷却结束时按职业策略出手
type EnemyBehaviorSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand
	strategies    map[types.EnemyType]AttackStrategy
}

// NewEnemyBehaviorSystem 创建敌人行为系统
func NewEnemyBehaviorSystem(em *ecs.EntityManager, gs *game.GameState, rng *rand.Rand) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
		strategies:    DefaultAttackStrategies(),
	}
}

// SetStrategy 替换某个职业的出手方式
func (s *EnemyBehaviorSystem) SetStrategy(enemyType types.EnemyType, strategy AttackStrategy) {
	s.strategies[enemyType] = strategy
}

// Update 推进所有存活敌人
func (s *EnemyBehaviorSystem) Update(deltaTime float64) {
	player, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !health.IsAlive() {
			continue
		}
		s.updateEnemy(id, player, deltaTime)
	}
}

func (s *EnemyBehaviorSystem) updateEnemy(id ecs.EntityID, player *playerRef, deltaTime float64) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}
	vel, hasVel := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

	enemy.AttackCooldown = max(0, enemy.AttackCooldown-deltaTime)

	rect := utils.Rect{X: pos.X, Y: pos.Y, Width: col.Width, Height: col.Height}
	ex, ey := rect.Center()
	px, py := player.center()
	distance := utils.Distance(ex, ey, px, py)

	if distance > enemy.AttackRange {
		enemy.State = components.EnemyChasing
		dirX, dirY := utils.Direction(ex, ey, px, py)
		vx, vy := dirX*enemy.Speed, dirY*enemy.Speed
		if hasVel {
			vel.VX, vel.VY = vx, vy
		}
		pos.X += vx * deltaTime
		pos.Y += vy * deltaTime
		clampToWorld(pos, col.Width, col.Height)
		return
	}

	enemy.State = components.EnemyAttacking
	if hasVel {
		vel.VX, vel.VY = 0, 0
	}

	if enemy.AttackCooldown > 0 {
		return
	}
	strategy, ok := s.strategies[enemy.Type]
	if !ok {
		return
	}

	ctx := &AttackContext{
		System:       s,
		Enemy:        enemy,
		EnemyX:       ex,
		EnemyY:       ey,
		PlayerX:      px,
		PlayerY:      py,
		PlayerHealth: player.health,
	}
	if strategy.Attack(ctx) {
		enemy.AttackCooldown = enemy.AttackCooldownMax
	}
}

// EntityManager 返回系统使用的实体管理器
func (s *EnemyBehaviorSystem) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// EmitParticles 在指定位置生成一簇粒子
func (s *EnemyBehaviorSystem) EmitParticles(x, y float64, c color.RGBA, count int) {
	emitBurst("EnemyBehaviorSystem", s.entityManager, s.rng, x, y, c, count)
}

// DamagePlayer 伤害玩家，致死时会话进入结束阶段
func (s *EnemyBehaviorSystem) DamagePlayer(health *components.HealthComponent, amount float64) {
	if ApplyDamage(health, amount) {
		s.gameState.SetGameOver()
		log.Printf("[EnemyBehaviorSystem] Player killed on wave %d", s.gameState.Wave)
	}
}
