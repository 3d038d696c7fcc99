package session

import (
	"github.com/gonewx/rangerpg/pkg/components"
	"github.com/gonewx/rangerpg/pkg/ecs"
	"github.com/gonewx/rangerpg/pkg/game"
	"github.com/gonewx/rangerpg/pkg/systems"
)

// Snapshot 生成渲染器使用的只读视图
// 实体按创建顺序输出；已死亡但尚未移除的敌人不输出
func (s *Session) Snapshot() game.Snapshot {
	w := s.world
	em := w.em

	snap := game.Snapshot{
		CameraX:  w.gameState.CameraX,
		CameraY:  w.gameState.CameraY,
		GameOver: w.gameState.IsGameOver(),
	}

	snap.Player = s.playerView()

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !health.IsAlive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, game.EnemyView{
			ActorView: actorView(em, id, health),
			Type:      enemy.Type,
			State:     enemy.State,
			Color:     enemy.Color,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		view := game.ProjectileView{
			X:          pos.X,
			Y:          pos.Y,
			FromPlayer: proj.FromPlayer,
			Color:      proj.Color,
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			view.VX, view.VY = vel.VX, vel.VY
		}
		snap.Projectiles = append(snap.Projectiles, view)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.LifetimeComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		lt, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		alpha := 0.0
		if lt.MaxLifetime > 0 {
			alpha = lt.Remaining / lt.MaxLifetime
		}
		snap.Particles = append(snap.Particles, game.ParticleView{
			X:     pos.X,
			Y:     pos.Y,
			Size:  p.Size,
			Alpha: alpha,
			Color: p.Color,
		})
	}

	for _, id := range ecs.GetEntitiesWith1[*components.HealthZoneComponent](em) {
		zone, _ := ecs.GetComponent[*components.HealthZoneComponent](em, id)
		av := actorView(em, id, nil)
		snap.Zones = append(snap.Zones, game.ZoneView{
			X:      av.X,
			Y:      av.Y,
			Width:  av.Width,
			Height: av.Height,
			Pulse:  zone.Pulse,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.WeaponPickupComponent, *components.PositionComponent](em) {
		pickup, _ := ecs.GetComponent[*components.WeaponPickupComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Pickups = append(snap.Pickups, game.PickupView{
			X:        pos.X,
			Y:        pos.Y,
			Bob:      pickup.Bob,
			Rotation: pickup.Rotation,
			Weapon:   pickup.Weapon,
		})
	}

	snap.HUD = s.hud(snap.Player)
	return snap
}

func (s *Session) playerView() game.PlayerView {
	em := s.world.em
	id := s.world.playerID

	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	view := game.PlayerView{ActorView: actorView(em, id, health)}
	if p, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
		view.Weapon = p.Weapon
	}
	return view
}

func (s *Session) hud(player game.PlayerView) game.HUD {
	gs := s.world.gameState
	hud := game.HUD{
		Health:           player.Health,
		MaxHealth:        player.MaxHealth,
		WeaponName:       player.Weapon.Name,
		Wave:             gs.Wave,
		EnemiesRemaining: gs.EnemiesRemaining(),
	}
	if p, ok := ecs.GetComponent[*components.PlayerComponent](s.world.em, s.world.playerID); ok {
		hud.Level = p.Level
		hud.Experience = p.Experience
		hud.ExperienceToNext = systems.ExperienceToNextLevel(p.Level)
		hud.Kills = p.Kills
	}
	return hud
}

// actorView 读取位置、尺寸与生命值；health 可为 nil
func actorView(em *ecs.EntityManager, id ecs.EntityID, health *components.HealthComponent) game.ActorView {
	var view game.ActorView
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		view.X, view.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		view.Width, view.Height = col.Width, col.Height
	}
	if health != nil {
		view.Health = health.CurrentHealth
		view.MaxHealth = health.MaxHealth
	}
	return view
}
