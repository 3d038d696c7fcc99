package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
)

// PickupSystem 处理武器拾取
// 拾取物矩形与玩家矩形严格重叠时，玩家装备被替换为拾取物的武器
type PickupSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, rng *rand.Rand) *PickupSystem {
	return &PickupSystem{entityManager: em, rng: rng}
}

// Update 推进拾取物动画并检测拾取
func (s *PickupSystem) Update(deltaTime float64) {
	player, hasPlayer := findPlayer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith2[*components.WeaponPickupComponent, *components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		pickup, _ := ecs.GetComponent[*components.WeaponPickupComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pickup.Bob += config.PickupBobSpeed * deltaTime
		pickup.Rotation += config.PickupSpinSpeed * deltaTime

		if !hasPlayer || !player.health.IsAlive() {
			continue
		}
		if !pickupRect(pos).Overlaps(player.rect()) {
			continue
		}

		player.player.Weapon = pickup.Weapon
		s.entityManager.DestroyEntity(id)
		emitBurst("PickupSystem", s.entityManager, s.rng, pos.X, pos.Y, pickup.Weapon.Color, config.ParticlesOnPickup)

		log.Printf("[PickupSystem] Player equipped %s (damage %.0f)", pickup.Weapon.Name, pickup.Weapon.Damage)
	}
}
