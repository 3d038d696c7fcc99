package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
)

// ProjectileSystem 推进弹道并结算命中
//
// 每个弹道每帧：按速度直线移动、扣减寿命，然后用弹道中心点做点在矩形内检测。
// 玩家弹道检测所有存活敌人（按创建顺序，只命中第一个），敌方弹道只检测玩家。
// 命中即移除；未命中且寿命耗尽时移除。
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rewards       *RewardSystem
	rng           *rand.Rand
}

// NewProjectileSystem 创建弹道系统
func NewProjectileSystem(em *ecs.EntityManager, gs *game.GameState, rewards *RewardSystem, rng *rand.Rand) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		gameState:     gs,
		rewards:       rewards,
		rng:           rng,
	}
}

// Update 推进所有弹道
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, ok2 := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		lifetime, ok3 := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
		expired := advanceLifetime(lifetime, deltaTime)

		var hit bool
		if proj.FromPlayer {
			hit = s.hitEnemy(proj, pos)
		} else {
			hit = s.hitPlayer(proj, pos)
		}

		if hit || expired {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// hitEnemy 检测玩家弹道与敌人的命中，最多命中一个
func (s *ProjectileSystem) hitEnemy(proj *components.ProjectileComponent, pos *components.PositionComponent) bool {
	for _, enemyID := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
		if !health.IsAlive() {
			continue
		}
		rect, ok := entityRect(s.entityManager, enemyID)
		if !ok || !rect.ContainsPoint(pos.X, pos.Y) {
			continue
		}

		if ApplyDamage(health, proj.Damage) {
			s.rewards.OnEnemyKilled(enemyID)
		}
		emitBurst("ProjectileSystem", s.entityManager, s.rng, pos.X, pos.Y, proj.Color, config.ParticlesOnProjectile)
		return true
	}
	return false
}

// hitPlayer 检测敌方弹道与玩家的命中
func (s *ProjectileSystem) hitPlayer(proj *components.ProjectileComponent, pos *components.PositionComponent) bool {
	player, ok := findPlayer(s.entityManager)
	if !ok || !player.health.IsAlive() {
		return false
	}
	if !player.rect().ContainsPoint(pos.X, pos.Y) {
		return false
	}

	if ApplyDamage(player.health, proj.Damage) {
		s.gameState.SetGameOver()
		log.Printf("[ProjectileSystem] Player shot down on wave %d", s.gameState.Wave)
	}
	emitBurst("ProjectileSystem", s.entityManager, s.rng, pos.X, pos.Y, hitColor, config.ParticlesOnProjectile)
	return true
}
