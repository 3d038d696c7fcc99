package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxRecentRuns 保留的最近对局数量
const MaxRecentRuns = 10

// RunRecord 一局游戏的结算数据
type RunRecord struct {
	ID         string    `yaml:"id"`
	FinishedAt time.Time `yaml:"finishedAt"`
	Wave       int       `yaml:"wave"`
	Kills      int       `yaml:"kills"`
	Level      int       `yaml:"level"`
}

// RunRecords 持久化的战绩
type RunRecords struct {
	BestWave  int         `yaml:"bestWave"`
	BestKills int         `yaml:"bestKills"`
	BestLevel int         `yaml:"bestLevel"`
	Recent    []RunRecord `yaml:"recent"` // 最新的在前
}

// RecordManager 战绩管理器
// 负责对局结算数据的加载、保存和内存管理
type RecordManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存记录）
	records      RunRecords
	now          func() time.Time
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "runs"
)

// NewRecordManager 创建战绩管理器并尝试加载已保存的战绩
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *RecordManager: 战绩管理器实例；加载失败时使用空战绩，不影响创建
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}

	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting empty)", err)
	}

	return rm
}

// Load 从 gdata 加载战绩
// gdataManager 为 nil 或数据不存在时使用空战绩
func (rm *RecordManager) Load() error {
	rm.records = RunRecords{}

	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded RunRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	if len(loaded.Recent) > MaxRecentRuns {
		loaded.Recent = loaded.Recent[:MaxRecentRuns]
	}

	rm.records = loaded
	log.Printf("[RecordManager] Loaded %d recent runs (best wave %d)", len(loaded.Recent), loaded.BestWave)
	return nil
}

// Save 保存战绩到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Submit 记录一局结算并立即保存
//
// 参数：
//   - wave: 到达的波次
//   - kills: 总击杀数
//   - level: 最终等级
//
// 返回：
//   - RunRecord: 新生成的记录（带唯一ID）
//   - error: 保存失败时返回错误，内存中的战绩仍然已更新
func (rm *RecordManager) Submit(wave, kills, level int) (RunRecord, error) {
	record := RunRecord{
		ID:         uuid.NewString(),
		FinishedAt: rm.now().UTC(),
		Wave:       wave,
		Kills:      kills,
		Level:      level,
	}

	rm.records.BestWave = max(rm.records.BestWave, wave)
	rm.records.BestKills = max(rm.records.BestKills, kills)
	rm.records.BestLevel = max(rm.records.BestLevel, level)

	rm.records.Recent = append([]RunRecord{record}, rm.records.Recent...)
	if len(rm.records.Recent) > MaxRecentRuns {
		rm.records.Recent = rm.records.Recent[:MaxRecentRuns]
	}

	log.Printf("[RecordManager] Run %s: wave=%d kills=%d level=%d", record.ID, wave, kills, level)

	if err := rm.Save(); err != nil {
		return record, err
	}
	return record, nil
}

// GetRecords 返回当前战绩的拷贝
func (rm *RecordManager) GetRecords() RunRecords {
	out := rm.records
	out.Recent = append([]RunRecord(nil), rm.records.Recent...)
	return out
}

// IsPersistent 是否启用了持久化
func (rm *RecordManager) IsPersistent() bool {
	return rm.gdataManager != nil
}
