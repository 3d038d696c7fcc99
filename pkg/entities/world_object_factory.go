package entities

import (
	"fmt"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
)

// NewHealthZoneEntity 创建治疗区实体
func NewHealthZoneEntity(em *ecs.EntityManager, zone config.HealthZoneConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: zone.X, Y: zone.Y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  zone.Width,
		Height: zone.Height,
	})
	ecs.AddComponent(em, entityID, &components.HealthZoneComponent{HealRate: zone.HealRate})

	return entityID, nil
}

// NewWeaponPickupEntity 创建武器拾取物实体
// (x, y) 为拾取物中心，碰撞盒为 config.PickupSize 见方
func NewWeaponPickupEntity(em *ecs.EntityManager, weapon components.Weapon, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  config.PickupSize,
		Height: config.PickupSize,
	})
	ecs.AddComponent(em, entityID, &components.WeaponPickupComponent{Weapon: weapon})

	return entityID, nil
}
