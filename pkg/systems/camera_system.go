package systems

import (
	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/utils"
)

// CameraSystem 管理镜头跟随。
// 目标 = 玩家中心 - 半个屏幕，限制在 [0, 世界-屏幕] 内；
// 当前偏移每帧向目标移动剩余距离的 Smoothing 比例（指数平滑，不会瞬移）。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头控制系统。
func NewCameraSystem(em *ecs.EntityManager, gs *game.GameState) *CameraSystem {
	cameraEntity := em.CreateEntity()
	ecs.AddComponent(em, cameraEntity, &components.CameraComponent{Smoothing: config.CameraSmoothing})

	return &CameraSystem{
		entityManager: em,
		gameState:     gs,
		cameraEntity:  cameraEntity,
	}
}

// Update 重新计算目标并平滑移动镜头
func (cs *CameraSystem) Update() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}

	player, ok := findPlayer(cs.entityManager)
	if !ok {
		return
	}

	px, py := player.center()
	cam.TargetX, cam.TargetY = CameraTarget(px, py)

	cs.gameState.SetCamera(
		utils.Approach(cs.gameState.CameraX, cam.TargetX, cam.Smoothing),
		utils.Approach(cs.gameState.CameraY, cam.TargetY, cam.Smoothing),
	)
}

// CameraTarget 让 (centerX, centerY) 位于屏幕中央的镜头偏移，限制在世界范围内
func CameraTarget(centerX, centerY float64) (float64, float64) {
	x := utils.Clamp(centerX-config.ScreenWidth/2, 0, config.WorldWidth-config.ScreenWidth)
	y := utils.Clamp(centerY-config.ScreenHeight/2, 0, config.WorldHeight-config.ScreenHeight)
	return x, y
}
