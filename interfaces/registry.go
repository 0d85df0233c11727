package interfaces

import "arenamanager/domain"

// InstanceRegistry is the concurrency-safe collection of live arena instances,
// keyed by instance id with secondary lookups by live boss entity and by party
// member. Instances are exclusively owned by the registry for their lifetime;
// Remove happens exactly once, at the end of teardown.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . InstanceRegistry
type InstanceRegistry interface {
	Add(instance *domain.ArenaInstance)
	Remove(instanceID string)
	Get(instanceID string) (*domain.ArenaInstance, bool)
	FindByBossEntity(entityID string) (*domain.ArenaInstance, bool)
	FindByMember(subjectID string) (*domain.ArenaInstance, bool)
	List() []*domain.ArenaInstance
	Len() int
}
