package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
)

// NewParticleBurst 在 (x, y) 处生成一簇向四周散开的粒子
//
// 每个粒子独立随机：
//   - 方向：[0, 2π)
//   - 速度：[50, 150) 像素/秒
//   - 寿命：[0.3, 0.8) 秒
//   - 大小：[2, 5) 像素
//
// 返回:
//   - int: 实际生成的粒子数量
//   - error: 如果参数非法返回错误信息
func NewParticleBurst(em *ecs.EntityManager, rng *rand.Rand, x, y float64, c color.RGBA, count int) (int, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64()*config.ParticleSpeedRange + config.ParticleMinSpeed
		lifetime := rng.Float64()*config.ParticleLifeRange + config.ParticleMinLifetime
		size := rng.Float64()*config.ParticleSizeRange + config.ParticleMinSize

		entityID := em.CreateEntity()
		ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, entityID, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		})
		ecs.AddComponent(em, entityID, &components.LifetimeComponent{
			MaxLifetime: lifetime,
			Remaining:   lifetime,
		})
		ecs.AddComponent(em, entityID, &components.ParticleComponent{
			Color: c,
			Size:  size,
		})
	}

	return count, nil
}
