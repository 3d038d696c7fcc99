package game

import "github.com/gonewx/rangerpg/pkg/config"

// Phase 会话阶段
type Phase int

const (
	// PhasePlaying 正常推进模拟
	PhasePlaying Phase = iota
	// PhaseGameOver 玩家死亡，模拟冻结直到重开
	PhaseGameOver
)

// String 实现 fmt.Stringer
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// GameState 存储一局游戏的全局状态
// 每个 Session 持有自己的实例（不是全局单例），重开时随新世界一起重建
type GameState struct {
	Phase Phase

	// 波次状态
	Wave             int // 当前波次，从 1 开始；0 表示尚未生成第一波
	KilledThisWave   int // 本波已击杀数量
	RequiredThisWave int // 本波需要击杀的数量

	// 摄像机位置（世界坐标，视口左上角）
	CameraX float64
	CameraY float64
}

// NewGameState 创建初始状态（尚未开始第一波）
func NewGameState() *GameState {
	return &GameState{Phase: PhasePlaying}
}

// IsGameOver 是否处于结束阶段
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// SetGameOver 进入结束阶段
func (gs *GameState) SetGameOver() {
	gs.Phase = PhaseGameOver
}

// StartWave 开始新的波次
func (gs *GameState) StartWave(wave, required int) {
	gs.Wave = wave
	gs.KilledThisWave = 0
	gs.RequiredThisWave = required
}

// RecordKill 本波击杀计数加一
func (gs *GameState) RecordKill() {
	gs.KilledThisWave++
}

// EnemiesRemaining 本波剩余需要击杀的数量（不小于 0）
func (gs *GameState) EnemiesRemaining() int {
	if remaining := gs.RequiredThisWave - gs.KilledThisWave; remaining > 0 {
		return remaining
	}
	return 0
}

// SetCamera 设置摄像机偏移
func (gs *GameState) SetCamera(x, y float64) {
	gs.CameraX = x
	gs.CameraY = y
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
func (gs *GameState) ScreenToWorld(screenX, screenY float64) (float64, float64) {
	return screenX + gs.CameraX, screenY + gs.CameraY
}

// IsOnScreen 判断世界坐标下的矩形是否与当前视口相交
// 渲染器用它跳过视口外的实体（见 scenes.drawWorld）
func (gs *GameState) IsOnScreen(x, y, width, height float64) bool {
	return x+width >= gs.CameraX && x <= gs.CameraX+config.ScreenWidth &&
		y+height >= gs.CameraY && y <= gs.CameraY+config.ScreenHeight
}
