package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// ProjectileSpec 弹道创建参数
type ProjectileSpec struct {
	X, Y             float64 // 起点（中心）
	TargetX, TargetY float64 // 瞄准点，只用于确定方向
	Speed            float64 // 像素/秒
	Damage           float64
	FromPlayer       bool
	Color            color.RGBA
}

// NewProjectile 创建弹道实体
// 速度 = 指向目标的单位向量 × Speed；目标与起点重合时弹道静止直到寿命耗尽
//
// 返回:
//   - ecs.EntityID: 弹道实体ID，失败时返回 0
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, spec ProjectileSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	dirX, dirY := utils.Direction(spec.X, spec.Y, spec.TargetX, spec.TargetY)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VX: dirX * spec.Speed,
		VY: dirY * spec.Speed,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: config.ProjectileLifetime,
		Remaining:   config.ProjectileLifetime,
	})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Damage:     spec.Damage,
		FromPlayer: spec.FromPlayer,
		Color:      spec.Color,
	})

	return entityID, nil
}
