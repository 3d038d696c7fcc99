package config

// 屏幕（视口）尺寸
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// 世界尺寸（可玩区域，大于视口）
const (
	WorldWidth  = 2400.0
	WorldHeight = 1600.0
)

// 弹道参数
const (
	// PlayerProjectileSpeed 玩家远程武器弹道速度（像素/秒）
	PlayerProjectileSpeed = 500.0
	// EnemyProjectileSpeed 弓手弹道速度（像素/秒）
	EnemyProjectileSpeed = 300.0
	// ProjectileLifetime 弹道存活时间（秒）
	ProjectileLifetime = 3.0
	// ProjectileRadius 弹道绘制半径（像素）
	ProjectileRadius = 5.0
)

// 粒子参数
const (
	// ParticleGravity 粒子竖直方向恒定加速度（像素/秒²）
	ParticleGravity = 200.0

	ParticleMinSpeed    = 50.0
	ParticleSpeedRange  = 100.0
	ParticleMinLifetime = 0.3
	ParticleLifeRange   = 0.5
	ParticleMinSize     = 2.0
	ParticleSizeRange   = 3.0
)

// 粒子爆发数量
const (
	ParticlesOnRangedShot  = 5
	ParticlesOnMeleeHit    = 10
	ParticlesOnEnemyStrike = 8
	ParticlesOnProjectile  = 8
	ParticlesOnPickup      = 15
	ParticlesOnHeal        = 2

	// HealParticleChance 治疗区每帧生成治疗粒子的概率
	HealParticleChance = 0.1
)

// 镜头
const (
	// CameraSmoothing 每帧向目标移动剩余距离的比例
	CameraSmoothing = 0.1
)

// 拾取物
const (
	PickupSize = 30.0

	// PickupBobSpeed 拾取物上下浮动的相位速度（弧度/秒）
	PickupBobSpeed = 3.0
	// PickupSpinSpeed 拾取物旋转速度（弧度/秒）
	PickupSpinSpeed = 2.0
	// ZonePulseSpeed 治疗区脉冲相位速度（弧度/秒）
	ZonePulseSpeed = 3.0
)

// 成长
const (
	// ExperiencePerLevel 升到下一级所需经验 = 等级 × ExperiencePerLevel
	ExperiencePerLevel = 100
	LevelUpMaxHealth   = 20.0
	LevelUpSpeed       = 10.0
)

// MaxDeltaTime 宿主循环单帧时间上限（秒），防止窗口拖动等卡顿造成穿模
const MaxDeltaTime = 0.1
