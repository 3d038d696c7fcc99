package entities

import (
	"fmt"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/types"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// NewEnemyEntity 创建敌人实体
// 出生点会被限制在世界边界内（边缘出生的敌人紧贴边界）
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置（提供职业属性表）
//   - enemyType: 敌人职业
//   - x, y: 期望的左上角世界坐标
//
// 返回:
//   - ecs.EntityID: 敌人实体ID，失败时返回 0
//   - error: 未知职业等错误
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.BalanceConfig, enemyType types.EnemyType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}

	stats, ok := cfg.GetEnemyStats(enemyType)
	if !ok {
		return 0, fmt.Errorf("no stats for enemy type %v", enemyType)
	}

	x = utils.Clamp(x, 0, config.WorldWidth-stats.Width)
	y = utils.Clamp(y, 0, config.WorldHeight-stats.Height)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  stats.Width,
		Height: stats.Height,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Type:              enemyType,
		Speed:             stats.Speed,
		Damage:            stats.Damage,
		AttackRange:       stats.AttackRange,
		AttackCooldownMax: stats.AttackCooldown,
		Experience:        stats.Experience,
		State:             components.EnemyIdle,
		Color:             stats.RGBA(),
	})

	return entityID, nil
}
