package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/rangerpg/pkg/app"
	"github.com/gonewx/rangerpg/pkg/config"
	"github.com/gonewx/rangerpg/pkg/embedded"
	"github.com/gonewx/rangerpg/pkg/game"
)

// appName gdata 存储目录名
const appName = "rangerpg"

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "数值配置文件路径（默认使用内置 data/balance.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	persist    = flag.Bool("records", true, "保存对局战绩与显示设置")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	balance, err := loadBalance(*configPath)
	if err != nil {
		log.Fatalf("数值配置加载失败: %v", err)
	}

	storage := openStorage(*persist)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Balance:  balance,
		Seed:     *seed,
		Records:  game.NewRecordManager(storage),
		Settings: game.NewSettingsManager(storage),
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(app.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadBalance 读取数值配置：指定路径优先，否则使用内置文件
func loadBalance(path string) (*config.BalanceConfig, error) {
	if path != "" {
		return config.LoadBalanceConfig(path)
	}

	data, err := embedded.ReadFile(embedded.BalanceConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseBalanceConfig(data)
}

// openStorage 打开 gdata 存储；关闭持久化或存储不可用时返回 nil（降级为内存记录）
func openStorage(persist bool) *gdata.Manager {
	if !persist {
		return nil
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Main] Warning: persistent storage unavailable: %v", err)
		return nil
	}
	return manager
}
