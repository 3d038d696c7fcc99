package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// hitColor 受击粒子颜色
var hitColor = utils.MustParseHexColor("#FF0000")

// CombatSystem 处理玩家的主动攻击
//
// 远程武器（弓、法杖）向指针方向发射一发弹道；
// 近战武器在指针位于武器范围内时，对范围内所有存活敌人造成伤害（无朝向限制）。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	rewards       *RewardSystem
	rng           *rand.Rand
}

// NewCombatSystem 创建玩家攻击系统
func NewCombatSystem(em *ecs.EntityManager, rewards *RewardSystem, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		rewards:       rewards,
		rng:           rng,
	}
}

// HandleAttack 处理本帧的攻击事件
//
// 返回:
//   - bool: 是否真正发动了攻击（冷却未结束或近战够不着时返回 false）
func (s *CombatSystem) HandleAttack(input game.InputSnapshot) bool {
	if !input.Attack {
		return false
	}

	player, ok := findPlayer(s.entityManager)
	if !ok || !player.health.IsAlive() {
		return false
	}
	if player.player.AttackCooldown > 0 {
		return false
	}

	weapon := player.player.Weapon
	px, py := player.center()

	if weapon.Class.IsRanged() {
		s.fireProjectile(weapon, px, py, input.AimX, input.AimY)
	} else {
		if utils.Distance(px, py, input.AimX, input.AimY) > weapon.Range {
			return false
		}
		s.swingMelee(weapon, px, py)
	}

	player.player.AttackCooldown = weapon.AttackInterval
	return true
}

// fireProjectile 从玩家中心向瞄准点发射弹道
func (s *CombatSystem) fireProjectile(weapon components.Weapon, px, py, aimX, aimY float64) {
	_, err := entities.NewProjectile(s.entityManager, entities.ProjectileSpec{
		X:          px,
		Y:          py,
		TargetX:    aimX,
		TargetY:    aimY,
		Speed:      config.PlayerProjectileSpeed,
		Damage:     weapon.Damage,
		FromPlayer: true,
		Color:      weapon.Color,
	})
	if err != nil {
		log.Printf("[CombatSystem] Failed to fire %s: %v", weapon.Name, err)
		return
	}
	emitBurst("CombatSystem", s.entityManager, s.rng, px, py, weapon.Color, config.ParticlesOnRangedShot)
}

// swingMelee 对中心距离在武器范围内的所有存活敌人造成伤害
func (s *CombatSystem) swingMelee(weapon components.Weapon, px, py float64) {
	hits := 0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager) {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !health.IsAlive() {
			continue
		}
		rect, ok := entityRect(s.entityManager, id)
		if !ok {
			continue
		}

		ex, ey := rect.Center()
		if utils.Distance(px, py, ex, ey) > weapon.Range {
			continue
		}

		hits++
		if ApplyDamage(health, weapon.Damage) {
			s.rewards.OnEnemyKilled(id)
		}
		emitBurst("CombatSystem", s.entityManager, s.rng, ex, ey, hitColor, config.ParticlesOnMeleeHit)
	}

	if hits > 1 {
		log.Printf("[CombatSystem] %s hit %d enemies", weapon.Name, hits)
	}
}
