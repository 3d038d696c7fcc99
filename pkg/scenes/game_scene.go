package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/session"
)

// GameScene 游戏主场景
// 每个 tick 采集输入、推进会话并缓存快照；Draw 只读取快照
type GameScene struct {
	session *session.Session
	input   game.InputSource
	records *game.RecordManager

	// 最近一次绘制使用的快照
	snapshot game.Snapshot

	// 结束画面
	gameOverTimer float64        // 进入结束阶段后经过的时间，用于淡入
	lastRun       game.RunRecord // 最近一次提交的战绩
	newBest       bool           // 最近一次是否刷新了最高波次

	hudFace   text.Face
	showDebug bool // 显示帧率
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - sess: 已创建的会话
//   - input: 输入来源，为 nil 时使用键盘鼠标
//   - records: 战绩管理器，为 nil 时只在内存中记录
//
// 返回:
//   - *GameScene: 场景实例
func NewGameScene(sess *session.Session, input game.InputSource, records *game.RecordManager) *GameScene {
	if input == nil {
		input = EbitenInput{}
	}
	if records == nil {
		records = game.NewRecordManager(nil)
	}

	s := &GameScene{
		session: sess,
		input:   input,
		records: records,
		hudFace: text.NewGoXFace(basicfont.Face7x13),
	}
	sess.SetGameOverHandler(s.onGameOver)
	s.snapshot = sess.Snapshot()
	return s
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	input := s.input.Poll(s.session.GameState())

	wasOver := s.session.IsGameOver()
	s.session.Update(deltaTime, input)

	switch {
	case wasOver && !s.session.IsGameOver():
		s.gameOverTimer = 0
	case s.session.IsGameOver():
		s.gameOverTimer += deltaTime
	}

	s.snapshot = s.session.Snapshot()
}

// Draw 绘制世界、HUD 以及结束画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	drawWorld(screen, &s.snapshot)
	s.drawHUD(screen)
	if s.snapshot.GameOver {
		s.drawGameOver(screen)
	}
}

// Snapshot 返回最近一次的快照
func (s *GameScene) Snapshot() game.Snapshot {
	return s.snapshot
}

// SetShowDebug 设置是否显示帧率
func (s *GameScene) SetShowDebug(show bool) {
	s.showDebug = show
}

// LastRun 返回最近一次提交的战绩
func (s *GameScene) LastRun() game.RunRecord {
	return s.lastRun
}

func (s *GameScene) onGameOver(sum session.Summary) {
	previousBest := s.records.GetRecords().BestWave

	rec, err := s.records.Submit(sum.Wave, sum.Kills, sum.Level)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to save run record: %v", err)
	}
	s.lastRun = rec
	s.newBest = sum.Wave > previousBest
	s.gameOverTimer = 0
}
