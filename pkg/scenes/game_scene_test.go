package scenes

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/session"
)

// scriptedInput 返回预设的输入，并记录 Poll 收到的镜头偏移
type scriptedInput struct {
	next       game.InputSnapshot
	polls      int
	lastCamera [2]float64
}

func (in *scriptedInput) Poll(gs *game.GameState) game.InputSnapshot {
	in.polls++
	in.lastCamera = [2]float64{gs.CameraX, gs.CameraY}
	out := in.next
	in.next = game.InputSnapshot{}
	return out
}

func newTestScene(t *testing.T) (*GameScene, *scriptedInput, *game.RecordManager) {
	t.Helper()
	sess, err := session.New(nil, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	input := &scriptedInput{}
	records := game.NewRecordManager(nil)
	return NewGameScene(sess, input, records), input, records
}

// runUntilGameOver 站着不动直到被敌人击倒
func runUntilGameOver(t *testing.T, scene *GameScene) {
	t.Helper()
	for i := 0; i < 60*300; i++ {
		scene.Update(1.0 / 60)
		if scene.Snapshot().GameOver {
			return
		}
	}
	t.Fatal("Player never died while standing still")
}

func TestGameScene_Update(t *testing.T) {
	t.Run("每帧采集一次输入并刷新快照", func(t *testing.T) {
		scene, input, _ := newTestScene(t)
		input.next = game.InputSnapshot{Right: true}

		scene.Update(0.5)

		if input.polls != 1 {
			t.Errorf("Expected 1 poll, got %d", input.polls)
		}
		if x := scene.Snapshot().Player.X; x != 1300 {
			t.Errorf("Expected player moved to x=1300, got %.1f", x)
		}
	})

	t.Run("Poll 使用当前镜头偏移", func(t *testing.T) {
		scene, input, _ := newTestScene(t)
		scene.Update(1.0 / 60)
		scene.Update(1.0 / 60)

		cam := scene.Snapshot()
		if input.lastCamera[0] == 0 && input.lastCamera[1] == 0 {
			t.Errorf("Second poll should see a moved camera, snapshot camera is (%.1f, %.1f)", cam.CameraX, cam.CameraY)
		}
	})
}

func TestGameScene_GameOver(t *testing.T) {
	scene, input, records := newTestScene(t)

	runUntilGameOver(t, scene)

	got := records.GetRecords()
	if len(got.Recent) != 1 {
		t.Fatalf("Expected 1 submitted run, got %d", len(got.Recent))
	}
	hud := scene.Snapshot().HUD
	if run := scene.LastRun(); run.Wave != hud.Wave || run.Kills != hud.Kills || run.Level != hud.Level {
		t.Errorf("Submitted run %+v does not match HUD %+v", run, hud)
	}
	if !scene.newBest {
		t.Error("First run should be a new best")
	}

	// 结束阶段继续 Update 不会重复提交
	for i := 0; i < 10; i++ {
		scene.Update(1.0 / 60)
	}
	if n := len(records.GetRecords().Recent); n != 1 {
		t.Errorf("Expected a single submission, got %d", n)
	}
	if scene.gameOverTimer <= 0 {
		t.Error("Game over timer should advance")
	}

	input.next = game.InputSnapshot{Restart: true}
	scene.Update(1.0 / 60)

	if scene.Snapshot().GameOver {
		t.Error("Restart input should start a new run")
	}
	if scene.gameOverTimer != 0 {
		t.Errorf("Game over timer should reset, got %.2f", scene.gameOverTimer)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	tests := []struct {
		name  string
		alpha float64
		want  color.RGBA
	}{
		{"不透明", 1, c},
		{"半透明", 0.5, color.RGBA{R: 100, G: 50, B: 25, A: 127}},
		{"完全透明", 0, color.RGBA{}},
		{"超出范围被截断", 2, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withAlpha(c, tt.alpha); got != tt.want {
				t.Errorf("withAlpha(%v) = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestOnScreen(t *testing.T) {
	view := &game.GameState{CameraX: 500, CameraY: 400}

	tests := []struct {
		name          string
		x, y          float64
		width, height float64
		want          bool
	}{
		{"视口内", 800, 600, 40, 40, true},
		{"刚出左边界但在留白内", 500 - cullMargin/2 - 40, 600, 40, 40, true},
		{"远离视口左侧", 100, 600, 40, 40, false},
		{"远离视口下方", 800, 400 + 720 + cullMargin + 10, 0, 0, false},
		{"右下角留白内的点", 500 + 1280 + cullMargin/2, 400 + 720 + cullMargin/2, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onScreen(view, tt.x, tt.y, tt.width, tt.height); got != tt.want {
				t.Errorf("onScreen(%v, %v, %v, %v) = %v, want %v", tt.x, tt.y, tt.width, tt.height, got, tt.want)
			}
		})
	}
}
