package entities

import (
	"fmt"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置（提供初始属性与初始武器）
//   - x, y: 左上角世界坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，失败时返回 0
//   - error: 配置缺少初始武器等错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.BalanceConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}

	weaponStats, ok := cfg.GetWeapon(cfg.Player.StartingWeapon)
	if !ok {
		return 0, fmt.Errorf("starting weapon %q not found", cfg.Player.StartingWeapon)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: cfg.Player.Health,
		MaxHealth:     cfg.Player.Health,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Weapon: NewWeapon(weaponStats),
		Speed:  cfg.Player.Speed,
		Level:  1,
	})

	return entityID, nil
}
