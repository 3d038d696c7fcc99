package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/balance.yaml":     {Data: []byte("player:\n  health: 100\n")},
		"data/extra/notes.yaml": {Data: []byte("x: 1\n")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestNotInitialized(t *testing.T) {
	reset(t)
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := Open(BalanceConfigPath); err != errNotInitialized {
		t.Errorf("Open() error = %v, want errNotInitialized", err)
	}
	if _, err := ReadFile(BalanceConfigPath); err != errNotInitialized {
		t.Errorf("ReadFile() error = %v, want errNotInitialized", err)
	}
	if _, err := ReadDir("data"); err != errNotInitialized {
		t.Errorf("ReadDir() error = %v, want errNotInitialized", err)
	}
	if Exists(BalanceConfigPath) {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestInitWithNil(t *testing.T) {
	reset(t)
	Init(nil)

	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/balance.yaml", "player:\n  health: 100\n", false},
		{"带 ./ 前缀", "./data/balance.yaml", "player:\n  health: 100\n", false},
		{"子目录", "data/extra/notes.yaml", "x: 1\n", false},
		{"未知前缀", "assets/balance.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndReadDir(t *testing.T) {
	reset(t)
	Init(testFS())

	if !Exists(BalanceConfigPath) {
		t.Error("Expected balance config to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected missing file to not exist")
	}

	entries, err := ReadDir("data")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries in data/, got %d", len(entries))
	}
}
