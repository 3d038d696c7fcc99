package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/rangerpg/pkg/types"
	"gopkg.in/yaml.v3"
)

// TestDefaultEnemyStatTable 验证敌人属性表与设计数值完全一致
func TestDefaultEnemyStatTable(t *testing.T) {
	cfg := DefaultBalanceConfig()

	tests := []struct {
		enemy                        types.EnemyType
		width, height, health, speed float64
		damage, attackRange          float64
		cooldown                     float64
		experience                   int
	}{
		{types.EnemyGrunt, 35, 35, 30, 100, 10, 50, 1.0, 20},
		{types.EnemyArcher, 30, 30, 20, 80, 8, 300, 2.0, 30},
		{types.EnemyTank, 50, 50, 80, 60, 20, 60, 1.5, 50},
		{types.EnemyBoss, 80, 80, 300, 120, 25, 200, 0.8, 200},
	}

	for _, tt := range tests {
		t.Run(tt.enemy.String(), func(t *testing.T) {
			s, ok := cfg.GetEnemyStats(tt.enemy)
			if !ok {
				t.Fatalf("stats for %s not found", tt.enemy)
			}
			if s.Width != tt.width || s.Height != tt.height {
				t.Errorf("size: expected %.0fx%.0f, got %.0fx%.0f", tt.width, tt.height, s.Width, s.Height)
			}
			if s.Health != tt.health {
				t.Errorf("health: expected %.0f, got %.0f", tt.health, s.Health)
			}
			if s.Speed != tt.speed {
				t.Errorf("speed: expected %.0f, got %.0f", tt.speed, s.Speed)
			}
			if s.Damage != tt.damage {
				t.Errorf("damage: expected %.0f, got %.0f", tt.damage, s.Damage)
			}
			if s.AttackRange != tt.attackRange {
				t.Errorf("attackRange: expected %.0f, got %.0f", tt.attackRange, s.AttackRange)
			}
			if s.AttackCooldown != tt.cooldown {
				t.Errorf("attackCooldown: expected %.1f, got %.1f", tt.cooldown, s.AttackCooldown)
			}
			if s.Experience != tt.experience {
				t.Errorf("experience: expected %d, got %d", tt.experience, s.Experience)
			}
		})
	}
}

func TestDefaultBalanceConfigIsValid(t *testing.T) {
	if err := validateBalanceConfig(DefaultBalanceConfig()); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

// TestBundledBalanceMatchesDefaults 内嵌的 data/balance.yaml 与内置默认值保持一致
func TestBundledBalanceMatchesDefaults(t *testing.T) {
	cfg, err := LoadBalanceConfig(filepath.Join("..", "..", "data", "balance.yaml"))
	if err != nil {
		t.Fatalf("LoadBalanceConfig failed: %v", err)
	}

	want, _ := yaml.Marshal(DefaultBalanceConfig())
	got, _ := yaml.Marshal(cfg)
	if string(want) != string(got) {
		t.Errorf("data/balance.yaml differs from DefaultBalanceConfig\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestLoadBalanceConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		data, err := yaml.Marshal(DefaultBalanceConfig())
		if err != nil {
			t.Fatalf("marshal default config: %v", err)
		}
		path := filepath.Join(tempDir, "valid.yaml")
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadBalanceConfig(path)
		if err != nil {
			t.Fatalf("LoadBalanceConfig failed: %v", err)
		}
		if len(cfg.Weapons) != 5 {
			t.Errorf("Expected 5 weapons, got %d", len(cfg.Weapons))
		}
		bow, ok := cfg.GetWeapon("bow")
		if !ok {
			t.Fatal("bow not found")
		}
		if bow.WeaponClass() != types.WeaponBow {
			t.Errorf("bow class: expected %v, got %v", types.WeaponBow, bow.WeaponClass())
		}
		if c := bow.RGBA(); c.R != 0 || c.G != 255 || c.B != 255 {
			t.Errorf("bow color: got %v", c)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadBalanceConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
	})

	t.Run("YAML 格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("player: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadBalanceConfig(path); err == nil {
			t.Fatal("Expected parse error")
		}
	})
}

func TestValidateBalanceConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BalanceConfig)
		wantErr string
	}{
		{
			name:    "缺少敌人职业",
			mutate:  func(c *BalanceConfig) { delete(c.Enemies, types.EnemyIDBoss) },
			wantErr: "enemy boss: missing stats",
		},
		{
			name: "敌人攻击间隔非正",
			mutate: func(c *BalanceConfig) {
				s := c.Enemies[types.EnemyIDGrunt]
				s.AttackCooldown = 0
				c.Enemies[types.EnemyIDGrunt] = s
			},
			wantErr: "attackCooldown must be positive",
		},
		{
			name:    "未知武器类别",
			mutate:  func(c *BalanceConfig) { c.Weapons[0].Class = "spear" },
			wantErr: "unknown class",
		},
		{
			name:    "非法颜色",
			mutate:  func(c *BalanceConfig) { c.Weapons[1].Color = "blue" },
			wantErr: "invalid color",
		},
		{
			name:    "初始武器未定义",
			mutate:  func(c *BalanceConfig) { c.Player.StartingWeapon = "spear" },
			wantErr: "starting weapon",
		},
		{
			name:    "首领间隔非法",
			mutate:  func(c *BalanceConfig) { c.Waves.BossInterval = 0 },
			wantErr: "bossInterval",
		},
		{
			name:    "权重包含首领",
			mutate:  func(c *BalanceConfig) { c.Waves.Weights[types.EnemyIDBoss] = 1 },
			wantErr: "unknown or boss enemy",
		},
		{
			name:    "掉落概率越界",
			mutate:  func(c *BalanceConfig) { c.Waves.DropChance = 1.5 },
			wantErr: "dropChance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBalanceConfig()
			tt.mutate(cfg)
			err := validateBalanceConfig(cfg)
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
