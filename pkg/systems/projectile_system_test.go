package systems

import (
	"testing"

	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/entities"
	"github.com/gonewx/rangerpg/pkg/types"
)

func newPlayerShot(t *testing.T, w *testWorld, x, y, tx, ty, damage float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewProjectile(w.em, entities.ProjectileSpec{
		X: x, Y: y, TargetX: tx, TargetY: ty,
		Speed:      config.PlayerProjectileSpeed,
		Damage:     damage,
		FromPlayer: true,
	})
	if err != nil {
		t.Fatalf("NewProjectile() error = %v", err)
	}
	return id
}

// TestProjectileSystem_TravelAndHit (100,100) 射向 (200,100)，0.2 秒后到达 (200,100) 并命中
func TestProjectileSystem_TravelAndHit(t *testing.T) {
	w := newTestWorld(t)
	enemyID := w.spawnEnemyAt(t, types.EnemyGrunt, 207.5, 107.5) // 矩形 (190,90)-(225,125)
	shot := newPlayerShot(t, w, 100, 100, 200, 100, 12)
	system := NewProjectileSystem(w.em, w.gs, w.rewards, w.rng)

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, shot)
	system.Update(0.1)
	if pos.X != 150 || pos.Y != 100 {
		t.Fatalf("Expected (150, 100) after 0.1s, got (%.2f, %.2f)", pos.X, pos.Y)
	}
	if w.em.IsMarkedForDestroy(shot) {
		t.Fatal("Projectile should still be in flight")
	}

	system.Update(0.1)
	if pos.X != 200 || pos.Y != 100 {
		t.Errorf("Expected (200, 100) after 0.2s, got (%.2f, %.2f)", pos.X, pos.Y)
	}
	if h := w.health(t, enemyID).CurrentHealth; h != 18 {
		t.Errorf("Expected enemy health 18, got %.0f", h)
	}
	if !w.em.IsMarkedForDestroy(shot) {
		t.Error("Projectile should be removed after hitting")
	}
	if n := w.countWith(t, "particle"); n != config.ParticlesOnProjectile {
		t.Errorf("Expected %d impact particles, got %d", config.ParticlesOnProjectile, n)
	}
}

func TestProjectileSystem_HitsOnlyFirstEnemy(t *testing.T) {
	w := newTestWorld(t)
	first := w.spawnEnemyAt(t, types.EnemyTank, 300, 100)
	second := w.spawnEnemyAt(t, types.EnemyTank, 300, 100)
	newPlayerShot(t, w, 290, 100, 400, 100, 12)

	NewProjectileSystem(w.em, w.gs, w.rewards, w.rng).Update(0.01)

	if h := w.health(t, first).CurrentHealth; h != 68 {
		t.Errorf("First enemy health = %.0f, want 68", h)
	}
	if h := w.health(t, second).CurrentHealth; h != 80 {
		t.Errorf("Second enemy should not be hit, health = %.0f", h)
	}
}

func TestProjectileSystem_KillGrantsReward(t *testing.T) {
	w := newTestWorld(t)
	w.cfg.Waves.DropChance = 0
	w.gs.StartWave(1, 5)
	enemyID := w.spawnEnemyAt(t, types.EnemyArcher, 300, 100)
	w.health(t, enemyID).CurrentHealth = 5
	newPlayerShot(t, w, 295, 100, 400, 100, 12)

	NewProjectileSystem(w.em, w.gs, w.rewards, w.rng).Update(0.01)

	if !w.em.IsMarkedForDestroy(enemyID) {
		t.Error("Killed enemy should be marked for removal")
	}
	if p := w.player(t); p.player.Kills != 1 || p.player.Experience != 30 {
		t.Errorf("Expected kill reward, kills=%d exp=%d", p.player.Kills, p.player.Experience)
	}
	if w.gs.KilledThisWave != 1 {
		t.Errorf("Expected wave kill counter 1, got %d", w.gs.KilledThisWave)
	}
}

// TestProjectileSystem_Expiry 寿命严格递减，耗尽的那一帧被移除
func TestProjectileSystem_Expiry(t *testing.T) {
	w := newTestWorld(t)
	shot := newPlayerShot(t, w, 100, 100, 100, 0, 1)
	system := NewProjectileSystem(w.em, w.gs, w.rewards, w.rng)
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](w.em, shot)

	previous := lifetime.Remaining
	for i := 0; i < 2; i++ {
		system.Update(1.0)
		if lifetime.Remaining >= previous {
			t.Fatalf("tick %d: lifetime did not decrease (%.2f -> %.2f)", i, previous, lifetime.Remaining)
		}
		previous = lifetime.Remaining
		if w.em.IsMarkedForDestroy(shot) {
			t.Fatalf("tick %d: removed with %.2f lifetime left", i, lifetime.Remaining)
		}
	}

	system.Update(1.0)
	if lifetime.Remaining != 0 {
		t.Errorf("Lifetime should clamp at 0, got %.2f", lifetime.Remaining)
	}
	if !w.em.IsMarkedForDestroy(shot) {
		t.Error("Projectile should be removed when lifetime reaches 0")
	}
}

// TestProjectileSystem_HitOnLastTick 命中与寿命耗尽同一帧只结算一次
func TestProjectileSystem_HitOnLastTick(t *testing.T) {
	w := newTestWorld(t)
	enemyID := w.spawnEnemyAt(t, types.EnemyTank, 1600, 100)
	shot := newPlayerShot(t, w, 100, 100, 200, 100, 12)
	system := NewProjectileSystem(w.em, w.gs, w.rewards, w.rng)

	system.Update(1.5)
	system.Update(1.5)

	if h := w.health(t, enemyID).CurrentHealth; h != 68 {
		t.Errorf("Expected exactly one hit (health 68), got %.0f", h)
	}
	if !w.em.IsMarkedForDestroy(shot) {
		t.Error("Projectile should be removed")
	}

	w.em.RemoveMarkedEntities()
	system.Update(1.5)
	if h := w.health(t, enemyID).CurrentHealth; h != 68 {
		t.Errorf("Removed projectile must not hit again, health %.0f", h)
	}
}

func TestProjectileSystem_EnemyShotHitsPlayer(t *testing.T) {
	w := newTestWorld(t)
	entities.NewProjectile(w.em, entities.ProjectileSpec{
		X: 1200, Y: 720, TargetX: 1020, TargetY: 720,
		Speed:  config.EnemyProjectileSpeed,
		Damage: 8,
	})
	// 敌方弹道不会伤害敌人
	bystander := w.spawnEnemyAt(t, types.EnemyTank, 1170, 720)
	system := NewProjectileSystem(w.em, w.gs, w.rewards, w.rng)

	for i := 0; i < 10 && w.countWith(t, "particle") == 0; i++ {
		system.Update(0.1)
	}

	p := w.player(t)
	if p.health.CurrentHealth != 92 {
		t.Errorf("Expected player health 92, got %.0f", p.health.CurrentHealth)
	}
	if h := w.health(t, bystander).CurrentHealth; h != 80 {
		t.Errorf("Enemy shot should ignore enemies, health %.0f", h)
	}
	if w.gs.IsGameOver() {
		t.Error("Non-lethal hit should not end the game")
	}
}

func TestProjectileSystem_EnemyShotKillsPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.player(t).health.CurrentHealth = 3
	entities.NewProjectile(w.em, entities.ProjectileSpec{
		X: 1010, Y: 720, TargetX: 1020, TargetY: 720,
		Speed:  config.EnemyProjectileSpeed,
		Damage: 8,
	})

	NewProjectileSystem(w.em, w.gs, w.rewards, w.rng).Update(0.01)

	if w.player(t).health.IsAlive() {
		t.Error("Player should be dead")
	}
	if !w.gs.IsGameOver() {
		t.Error("Session should be in game over")
	}
}
