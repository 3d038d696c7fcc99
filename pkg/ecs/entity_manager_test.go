package ecs

import (
	"reflect"
	"testing"
)

type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

// newPopulatedManager 创建 n 个带位置组件的实体，X 记录创建序号
func newPopulatedManager(t *testing.T, n int) (*EntityManager, []EntityID) {
	t.Helper()
	em := NewEntityManager()
	ids := make([]EntityID, 0, n)
	for i := 0; i < n; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		ids = append(ids, id)
	}
	return em, ids
}

func sameIDs(got, want []EntityID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestEntityManager_CreateEntity(t *testing.T) {
	em, ids := newPopulatedManager(t, 3)

	t.Run("ID 从 1 开始递增", func(t *testing.T) {
		if !sameIDs(ids, []EntityID{1, 2, 3}) {
			t.Errorf("Expected ids [1 2 3], got %v", ids)
		}
	})

	t.Run("清理后 ID 不复用", func(t *testing.T) {
		em.DestroyEntity(ids[2])
		em.RemoveMarkedEntities()
		if id := em.CreateEntity(); id != 4 {
			t.Errorf("Expected next id 4, got %d", id)
		}
		if em.Count() != 3 {
			t.Errorf("Expected 3 entities, got %d", em.Count())
		}
	})
}

func TestEntityManager_ReflectAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	posType := reflect.TypeOf(&testPositionComponent{})
	velType := reflect.TypeOf(&testVelocityComponent{})

	if em.HasComponent(id, posType) {
		t.Fatal("Fresh entity should have no components")
	}

	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})
	em.AddComponent(id, &testVelocityComponent{VX: -1})

	comp, ok := em.GetComponent(id, posType)
	if !ok {
		t.Fatal("Position should be found")
	}
	if pos := comp.(*testPositionComponent); pos.X != 3 || pos.Y != 4 {
		t.Errorf("Position mismatch, got (%v, %v)", pos.X, pos.Y)
	}

	em.RemoveComponent(id, velType)
	if em.HasComponent(id, velType) {
		t.Error("Velocity should be removed")
	}
	if _, ok := em.GetComponent(99, posType); ok {
		t.Error("Unknown entity should have no components")
	}
}

func TestEntityManager_MarkAndCompact(t *testing.T) {
	tests := []struct {
		name    string
		destroy []int // ids 下标
		want    []int
	}{
		{"不删除", nil, []int{0, 1, 2, 3, 4}},
		{"删除中间", []int{2}, []int{0, 1, 3, 4}},
		{"删除首尾", []int{0, 4}, []int{1, 2, 3}},
		{"重复标记只算一次", []int{1, 1, 3}, []int{0, 2, 4}},
		{"全部删除", []int{0, 1, 2, 3, 4}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, ids := newPopulatedManager(t, 5)
			marked := make(map[EntityID]bool)
			for _, i := range tt.destroy {
				em.DestroyEntity(ids[i])
				marked[ids[i]] = true
			}

			// 标记期间实体与组件都仍可访问
			for id := range marked {
				if !em.Exists(id) || !em.IsMarkedForDestroy(id) {
					t.Errorf("Entity %d should exist and be marked before compaction", id)
				}
				if !HasComponent[*testPositionComponent](em, id) {
					t.Errorf("Entity %d should keep components before compaction", id)
				}
			}

			if removed := em.RemoveMarkedEntities(); removed != len(marked) {
				t.Errorf("Expected %d removed, got %d", len(marked), removed)
			}

			want := make([]EntityID, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, ids[i])
			}
			if got := GetEntitiesWith1[*testPositionComponent](em); !sameIDs(got, want) {
				t.Errorf("Expected survivors %v in creation order, got %v", want, got)
			}
			for id := range marked {
				if em.Exists(id) || em.IsMarkedForDestroy(id) {
					t.Errorf("Entity %d should be gone with no mark left", id)
				}
			}
		})
	}

	t.Run("未知实体不会被标记", func(t *testing.T) {
		em := NewEntityManager()
		em.DestroyEntity(42)
		if em.IsMarkedForDestroy(42) {
			t.Error("Unknown entity should not be marked")
		}
		if removed := em.RemoveMarkedEntities(); removed != 0 {
			t.Errorf("Expected nothing removed, got %d", removed)
		}
	})
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	AddComponent(em, a, &testPositionComponent{})
	AddComponent(em, a, &testVelocityComponent{})
	AddComponent(em, a, &testTagComponent{})

	b := em.CreateEntity()
	AddComponent(em, b, &testPositionComponent{})

	c := em.CreateEntity()
	AddComponent(em, c, &testPositionComponent{})
	AddComponent(em, c, &testVelocityComponent{})

	t.Run("单组件查询", func(t *testing.T) {
		if got := GetEntitiesWith1[*testPositionComponent](em); !sameIDs(got, []EntityID{a, b, c}) {
			t.Errorf("Expected [a b c], got %v", got)
		}
	})

	t.Run("双组件查询", func(t *testing.T) {
		got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
		if !sameIDs(got, []EntityID{a, c}) {
			t.Errorf("Expected [a c], got %v", got)
		}
	})

	t.Run("三组件查询", func(t *testing.T) {
		got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
		if !sameIDs(got, []EntityID{a}) {
			t.Errorf("Expected [a], got %v", got)
		}
	})

	t.Run("泛型读写同一份组件", func(t *testing.T) {
		pos, ok := GetComponent[*testPositionComponent](em, b)
		if !ok {
			t.Fatal("Position should be found")
		}
		pos.X = 7
		again, _ := GetComponent[*testPositionComponent](em, b)
		if again.X != 7 {
			t.Errorf("Expected shared pointer, got X=%v", again.X)
		}

		if _, ok := GetComponent[*testVelocityComponent](em, b); ok {
			t.Error("Missing component should not be found")
		}

		RemoveComponent[*testPositionComponent](em, b)
		if HasComponent[*testPositionComponent](em, b) {
			t.Error("Component should be removed")
		}
	})
}
