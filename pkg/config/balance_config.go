package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/gonewx/rangerpg/pkg/types"
	"github.com/gonewx/rangerpg/pkg/utils"
	"gopkg.in/yaml.v3"
)

// PlayerStats 玩家初始属性
type PlayerStats struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         float64 `yaml:"health"`
	Speed          float64 `yaml:"speed"`          // 移动速度（像素/秒）
	StartingWeapon string  `yaml:"startingWeapon"` // 初始武器ID
}

// EnemyStats 单个敌人职业的属性
type EnemyStats struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         float64 `yaml:"health"`
	Speed          float64 `yaml:"speed"`          // 移动速度（像素/秒）
	Damage         float64 `yaml:"damage"`         // 单次攻击伤害
	AttackRange    float64 `yaml:"attackRange"`    // 攻击距离（中心到中心）
	AttackCooldown float64 `yaml:"attackCooldown"` // 攻击间隔（秒）
	Experience     int     `yaml:"experience"`     // 击杀奖励经验
	Color          string  `yaml:"color"`          // 显示颜色 "#RRGGBB"
}

// WeaponStats 武器定义
type WeaponStats struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Class          string  `yaml:"class"`          // 武器类别：sword/bow/staff/hammer/dual_blades
	Damage         float64 `yaml:"damage"`         // 伤害
	Range          float64 `yaml:"range"`          // 近战范围（远程武器仅用于展示）
	AttackInterval float64 `yaml:"attackInterval"` // 攻击间隔（秒）
	Color          string  `yaml:"color"`          // 显示颜色 "#RRGGBB"
}

// HealthZoneConfig 治疗区定义
type HealthZoneConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	HealRate float64 `yaml:"healRate"` // 每秒恢复生命值
}

// WorldConfig 世界布局
type WorldConfig struct {
	HealthZones    []HealthZoneConfig `yaml:"healthZones"`
	InitialPickups []string           `yaml:"initialPickups"` // 开局散落的武器ID
	PickupMargin   float64            `yaml:"pickupMargin"`   // 开局拾取物距世界边缘的最小距离
}

// WaveRules 波次规则
type WaveRules struct {
	BaseEnemies    int            `yaml:"baseEnemies"`    // 第1波敌人数量
	EnemiesPerWave int            `yaml:"enemiesPerWave"` // 每波递增数量
	BossInterval   int            `yaml:"bossInterval"`   // 每隔多少波出现首领
	BossMargin     float64        `yaml:"bossMargin"`     // 首领出生点距世界边缘的最小距离
	DropChance     float64        `yaml:"dropChance"`     // 击杀掉落武器的概率
	Weights        map[string]int `yaml:"weights"`        // 普通波次敌人职业权重
}

// BalanceConfig 数值平衡配置文件结构
type BalanceConfig struct {
	Player  PlayerStats           `yaml:"player"`
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌人职业ID -> 属性
	Weapons []WeaponStats         `yaml:"weapons"`
	World   WorldConfig           `yaml:"world"`
	Waves   WaveRules             `yaml:"waves"`
}

// DefaultBalanceConfig 返回内置的默认数值（与 data/balance.yaml 一致）
func DefaultBalanceConfig() *BalanceConfig {
	return &BalanceConfig{
		Player: PlayerStats{
			Width:          40,
			Height:         40,
			Health:         100,
			Speed:          200,
			StartingWeapon: types.WeaponIDSword,
		},
		Enemies: map[string]EnemyStats{
			types.EnemyIDGrunt: {
				Width: 35, Height: 35, Health: 30, Speed: 100, Damage: 10,
				AttackRange: 50, AttackCooldown: 1.0, Experience: 20, Color: "#DC3232",
			},
			types.EnemyIDArcher: {
				Width: 30, Height: 30, Health: 20, Speed: 80, Damage: 8,
				AttackRange: 300, AttackCooldown: 2.0, Experience: 30, Color: "#8A2BE2",
			},
			types.EnemyIDTank: {
				Width: 50, Height: 50, Health: 80, Speed: 60, Damage: 20,
				AttackRange: 60, AttackCooldown: 1.5, Experience: 50, Color: "#808080",
			},
			types.EnemyIDBoss: {
				Width: 80, Height: 80, Health: 300, Speed: 120, Damage: 25,
				AttackRange: 200, AttackCooldown: 0.8, Experience: 200, Color: "#8B0000",
			},
		},
		Weapons: []WeaponStats{
			{ID: types.WeaponIDSword, Name: "Sword", Class: types.WeaponIDSword, Damage: 15, Range: 60, AttackInterval: 0.5, Color: "#FFD700"},
			{ID: types.WeaponIDBow, Name: "Bow", Class: types.WeaponIDBow, Damage: 12, Range: 400, AttackInterval: 1.0, Color: "#00FFFF"},
			{ID: types.WeaponIDStaff, Name: "Staff", Class: types.WeaponIDStaff, Damage: 20, Range: 300, AttackInterval: 1.5, Color: "#FF00FF"},
			{ID: types.WeaponIDHammer, Name: "Hammer", Class: types.WeaponIDHammer, Damage: 30, Range: 80, AttackInterval: 2.0, Color: "#808080"},
			{ID: types.WeaponIDDualBlades, Name: "Dual Blades", Class: types.WeaponIDDualBlades, Damage: 10, Range: 70, AttackInterval: 0.3, Color: "#FF8C00"},
		},
		World: WorldConfig{
			HealthZones: []HealthZoneConfig{
				{X: 200, Y: 200, Width: 150, Height: 150, HealRate: 10},
				{X: WorldWidth - 350, Y: 200, Width: 150, Height: 150, HealRate: 10},
				{X: 200, Y: WorldHeight - 350, Width: 150, Height: 150, HealRate: 10},
				{X: WorldWidth - 350, Y: WorldHeight - 350, Width: 150, Height: 150, HealRate: 10},
			},
			InitialPickups: []string{
				types.WeaponIDBow,
				types.WeaponIDStaff,
				types.WeaponIDHammer,
				types.WeaponIDDualBlades,
			},
			PickupMargin: 100,
		},
		Waves: WaveRules{
			BaseEnemies:    5,
			EnemiesPerWave: 2,
			BossInterval:   5,
			BossMargin:     100,
			DropChance:     0.15,
			Weights: map[string]int{
				types.EnemyIDGrunt:  50,
				types.EnemyIDArcher: 30,
				types.EnemyIDTank:   20,
			},
		},
	}
}

// ParseBalanceConfig 从 YAML 数据解析数值配置
func ParseBalanceConfig(data []byte) (*BalanceConfig, error) {
	var config BalanceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	if err := validateBalanceConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid balance config: %w", err)
	}

	return &config, nil
}

// LoadBalanceConfig 从文件系统加载数值配置
// 参数：
//
//	filePath - 配置文件路径（相对或绝对路径）
func LoadBalanceConfig(filePath string) (*BalanceConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", filePath, err)
	}

	config, err := ParseBalanceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return config, nil
}

// validateBalanceConfig 验证配置的完整性和合法性
func validateBalanceConfig(config *BalanceConfig) error {
	p := config.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player: size must be positive, got %.0fx%.0f", p.Width, p.Height)
	}
	if p.Health <= 0 {
		return fmt.Errorf("player: health must be positive, got %.0f", p.Health)
	}
	if p.Speed < 0 {
		return fmt.Errorf("player: speed cannot be negative, got %.0f", p.Speed)
	}

	for _, et := range types.AllEnemyTypes() {
		stats, ok := config.Enemies[et.ID()]
		if !ok {
			return fmt.Errorf("enemy %s: missing stats", et.ID())
		}
		if err := validateEnemyStats(et.ID(), stats); err != nil {
			return err
		}
	}

	if len(config.Weapons) == 0 {
		return fmt.Errorf("at least one weapon is required")
	}
	seen := make(map[string]bool, len(config.Weapons))
	for _, w := range config.Weapons {
		if w.ID == "" {
			return fmt.Errorf("weapon id cannot be empty")
		}
		if seen[w.ID] {
			return fmt.Errorf("weapon %s: duplicate id", w.ID)
		}
		seen[w.ID] = true
		if _, ok := types.WeaponTypeFromID(w.Class); !ok {
			return fmt.Errorf("weapon %s: unknown class %q", w.ID, w.Class)
		}
		if w.Damage < 0 {
			return fmt.Errorf("weapon %s: damage cannot be negative, got %.1f", w.ID, w.Damage)
		}
		if w.Range <= 0 {
			return fmt.Errorf("weapon %s: range must be positive, got %.1f", w.ID, w.Range)
		}
		if w.AttackInterval <= 0 {
			return fmt.Errorf("weapon %s: attackInterval must be positive, got %.2f", w.ID, w.AttackInterval)
		}
		if _, err := utils.ParseHexColor(w.Color); err != nil {
			return fmt.Errorf("weapon %s: %w", w.ID, err)
		}
	}

	if !seen[p.StartingWeapon] {
		return fmt.Errorf("player: starting weapon %q is not defined", p.StartingWeapon)
	}
	for _, id := range config.World.InitialPickups {
		if !seen[id] {
			return fmt.Errorf("world: initial pickup %q is not defined", id)
		}
	}
	for i, z := range config.World.HealthZones {
		if z.Width <= 0 || z.Height <= 0 {
			return fmt.Errorf("world: health zone %d size must be positive", i)
		}
		if z.HealRate < 0 {
			return fmt.Errorf("world: health zone %d healRate cannot be negative", i)
		}
	}

	w := config.Waves
	if w.BaseEnemies < 1 {
		return fmt.Errorf("waves: baseEnemies must be at least 1, got %d", w.BaseEnemies)
	}
	if w.EnemiesPerWave < 0 {
		return fmt.Errorf("waves: enemiesPerWave cannot be negative, got %d", w.EnemiesPerWave)
	}
	if w.BossInterval < 1 {
		return fmt.Errorf("waves: bossInterval must be at least 1, got %d", w.BossInterval)
	}
	if w.DropChance < 0 || w.DropChance > 1 {
		return fmt.Errorf("waves: dropChance must be within [0, 1], got %.2f", w.DropChance)
	}
	total := 0
	for id, weight := range w.Weights {
		et, ok := types.EnemyTypeFromID(id)
		if !ok || et == types.EnemyBoss {
			return fmt.Errorf("waves: weight for unknown or boss enemy %q", id)
		}
		if weight < 0 {
			return fmt.Errorf("waves: weight for %s cannot be negative, got %d", id, weight)
		}
		total += weight
	}
	if total <= 0 {
		return fmt.Errorf("waves: total weight must be positive")
	}

	return nil
}

func validateEnemyStats(id string, s EnemyStats) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("enemy %s: size must be positive, got %.0fx%.0f", id, s.Width, s.Height)
	}
	if s.Health <= 0 {
		return fmt.Errorf("enemy %s: health must be positive, got %.0f", id, s.Health)
	}
	if s.Speed < 0 {
		return fmt.Errorf("enemy %s: speed cannot be negative, got %.0f", id, s.Speed)
	}
	if s.Damage < 0 {
		return fmt.Errorf("enemy %s: damage cannot be negative, got %.0f", id, s.Damage)
	}
	if s.AttackRange <= 0 {
		return fmt.Errorf("enemy %s: attackRange must be positive, got %.0f", id, s.AttackRange)
	}
	if s.AttackCooldown <= 0 {
		return fmt.Errorf("enemy %s: attackCooldown must be positive, got %.2f", id, s.AttackCooldown)
	}
	if s.Experience < 0 {
		return fmt.Errorf("enemy %s: experience cannot be negative, got %d", id, s.Experience)
	}
	if _, err := utils.ParseHexColor(s.Color); err != nil {
		return fmt.Errorf("enemy %s: %w", id, err)
	}
	return nil
}

// GetEnemyStats 获取指定敌人职业的属性
func (c *BalanceConfig) GetEnemyStats(t types.EnemyType) (EnemyStats, bool) {
	stats, ok := c.Enemies[t.ID()]
	return stats, ok
}

// GetWeapon 根据ID获取武器定义
func (c *BalanceConfig) GetWeapon(id string) (WeaponStats, bool) {
	for _, w := range c.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return WeaponStats{}, false
}

// WeaponClass 返回武器的类别
func (w WeaponStats) WeaponClass() types.WeaponType {
	t, _ := types.WeaponTypeFromID(w.Class)
	return t
}

// RGBA 返回武器显示颜色，颜色非法时返回白色
func (w WeaponStats) RGBA() color.RGBA {
	return colorOrWhite(w.Color)
}

// RGBA 返回敌人显示颜色，颜色非法时返回白色
func (s EnemyStats) RGBA() color.RGBA {
	return colorOrWhite(s.Color)
}

func colorOrWhite(hex string) color.RGBA {
	c, err := utils.ParseHexColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}
