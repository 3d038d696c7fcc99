package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// emitBurst 生成一簇粒子，失败时只记录日志，不中断调用方的更新
// 参数:
//   - tag: 日志前缀，即调用方系统名
func emitBurst(tag string, em *ecs.EntityManager, rng *rand.Rand, x, y float64, c color.RGBA, count int) {
	if _, err := entities.NewParticleBurst(em, rng, x, y, c, count); err != nil {
		log.Printf("[%s] Failed to emit particles: %v", tag, err)
	}
}

// playerRef 本帧内玩家实体的组件引用
type playerRef struct {
	id        ecs.EntityID
	pos       *components.PositionComponent
	collision *components.CollisionComponent
	health    *components.HealthComponent
	player    *components.PlayerComponent
}

func (p *playerRef) rect() utils.Rect {
	return utils.Rect{X: p.pos.X, Y: p.pos.Y, Width: p.collision.Width, Height: p.collision.Height}
}

func (p *playerRef) center() (float64, float64) {
	return p.rect().Center()
}

// findPlayer 查找玩家实体
// 会话内恰好有一个玩家；找不到时返回 false
func findPlayer(em *ecs.EntityManager) (*playerRef, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(ids) == 0 {
		return nil, false
	}

	id := ids[0]
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](em, id)
	col, ok2 := ecs.GetComponent[*components.CollisionComponent](em, id)
	health, ok3 := ecs.GetComponent[*components.HealthComponent](em, id)
	player, ok4 := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}

	return &playerRef{id: id, pos: pos, collision: col, health: health, player: player}, true
}

// entityRect 返回实体的碰撞矩形（左上角 + 尺寸）
func entityRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X, Y: pos.Y, Width: col.Width, Height: col.Height}, true
}

// pickupRect 拾取物的碰撞矩形，位置为中心点
func pickupRect(pos *components.PositionComponent) utils.Rect {
	half := config.PickupSize / 2
	return utils.Rect{X: pos.X - half, Y: pos.Y - half, Width: config.PickupSize, Height: config.PickupSize}
}

// clampToWorld 把左上角坐标限制在世界范围内
func clampToWorld(pos *components.PositionComponent, width, height float64) {
	pos.X = utils.Clamp(pos.X, 0, config.WorldWidth-width)
	pos.Y = utils.Clamp(pos.Y, 0, config.WorldHeight-height)
}
