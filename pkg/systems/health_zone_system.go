package systems

import (
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// healColor 治疗粒子颜色
var healColor = utils.MustParseHexColor("#00FF00")

// HealthZoneSystem 处理治疗区
// 玩家中心位于区域内时，每秒恢复 HealRate 点生命
type HealthZoneSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewHealthZoneSystem 创建治疗区系统
func NewHealthZoneSystem(em *ecs.EntityManager, rng *rand.Rand) *HealthZoneSystem {
	return &HealthZoneSystem{entityManager: em, rng: rng}
}

// Update 推进治疗区动画并治疗区域内的玩家
func (s *HealthZoneSystem) Update(deltaTime float64) {
	player, hasPlayer := findPlayer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith1[*components.HealthZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.HealthZoneComponent](s.entityManager, id)
		zone.Pulse += config.ZonePulseSpeed * deltaTime

		if !hasPlayer {
			continue
		}
		rect, ok := entityRect(s.entityManager, id)
		if !ok {
			continue
		}

		px, py := player.center()
		if !rect.ContainsPoint(px, py) {
			continue
		}

		ApplyHeal(player.health, zone.HealRate*deltaTime)
		if s.rng.Float64() < config.HealParticleChance {
			emitBurst("HealthZoneSystem", s.entityManager, s.rng, px, py, healColor, config.ParticlesOnHeal)
		}
	}
}
