package systems

import (
	"log"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/types"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// enemyShotColor 敌方弹道颜色
var enemyShotColor = utils.MustParseHexColor("#800080")

// AttackContext 一次敌人出手所需的信息
type AttackContext struct {
	System       *EnemyBehaviorSystem
	Enemy        *components.EnemyComponent
	EnemyX       float64 // 敌人中心
	EnemyY       float64
	PlayerX      float64 // 玩家中心
	PlayerY      float64
	PlayerHealth *components.HealthComponent // 只能通过 System.DamagePlayer 修改
}

// AttackStrategy 敌人处于攻击状态时的出手方式
// 调用方已确认冷却结束；返回 true 表示发动了攻击，冷却随之重置
type AttackStrategy interface {
	Attack(ctx *AttackContext) bool
}

// MeleeAttack 近战：再次确认距离后直接伤害玩家
type MeleeAttack struct{}

// Attack 实现 AttackStrategy
func (MeleeAttack) Attack(ctx *AttackContext) bool {
	if utils.Distance(ctx.EnemyX, ctx.EnemyY, ctx.PlayerX, ctx.PlayerY) > ctx.Enemy.AttackRange {
		return false
	}

	ctx.System.DamagePlayer(ctx.PlayerHealth, ctx.Enemy.Damage)
	ctx.System.EmitParticles(ctx.PlayerX, ctx.PlayerY, hitColor, config.ParticlesOnEnemyStrike)
	return true
}

// RangedAttack 远程：向玩家中心发射一发弹道
type RangedAttack struct {
	Speed float64
}

// Attack 实现 AttackStrategy
func (a RangedAttack) Attack(ctx *AttackContext) bool {
	_, err := entities.NewProjectile(ctx.System.EntityManager(), entities.ProjectileSpec{
		X:       ctx.EnemyX,
		Y:       ctx.EnemyY,
		TargetX: ctx.PlayerX,
		TargetY: ctx.PlayerY,
		Speed:   a.Speed,
		Damage:  ctx.Enemy.Damage,
		Color:   enemyShotColor,
	})
	if err != nil {
		log.Printf("[EnemyBehaviorSystem] %s failed to shoot: %v", ctx.Enemy.Type, err)
		return false
	}
	return true
}

// DefaultAttackStrategies 各职业的出手方式：弓手远程，其余近战
func DefaultAttackStrategies() map[types.EnemyType]AttackStrategy {
	return map[types.EnemyType]AttackStrategy{
		types.EnemyGrunt:  MeleeAttack{},
		types.EnemyArcher: RangedAttack{Speed: config.EnemyProjectileSpeed},
		types.EnemyTank:   MeleeAttack{},
		types.EnemyBoss:   MeleeAttack{},
	}
}
