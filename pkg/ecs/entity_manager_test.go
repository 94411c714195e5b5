package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must not be InvalidEntity")
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 返回的是同一个指针，修改对后续查询可见
	pos.X = 5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 5 {
		t.Errorf("Component should be shared by pointer, got X=%f", again.X)
	}
}

func TestGetComponent_Missing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Missing component should not be found")
	}
	if _, found := GetComponent[*testVelocityComponent](em, EntityID(999)); found {
		t.Error("Unknown entity should not have components")
	}
}

func TestAddComponent_UnknownEntityIgnored(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &testTagComponent{})

	if em.Exists(EntityID(42)) {
		t.Error("AddComponent must not create entities implicitly")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) || HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})
	AddComponent(em, id3, &testPositionComponent{})
	AddComponent(em, id3, &testTagComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 2 || both[0] != id1 || both[1] != id3 {
		t.Errorf("GetEntitiesWith2 = %v, want [%d %d]", both, id1, id3)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 3 {
		t.Errorf("Expected 3 entities with Position component, got %d", len(posEntities))
	}

	tagged := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(tagged) != 1 || tagged[0] != id3 {
		t.Errorf("GetEntitiesWith3 = %v, want [%d]", tagged, id3)
	}
}

func TestGetEntitiesWith_SortedByID(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testTagComponent{})
	}

	ids := GetEntitiesWith1[*testTagComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Query result not sorted: %v", ids)
		}
	}
}
