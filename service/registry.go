package service

import (
	"sync"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// instanceRegistry implements interfaces.InstanceRegistry: one RWMutex-guarded
// map, reads from any goroutine, mutation serialized by the lock. The working
// set is small (bounded by the slot cap), so the secondary lookups scan.
type instanceRegistry struct {
	logger log.Logger

	mu        sync.RWMutex
	instances map[string]*domain.ArenaInstance
}

// NewInstanceRegistry creates an empty registry. Panics on nil logger.
func NewInstanceRegistry(logger log.Logger) interfaces.InstanceRegistry {
	return &instanceRegistry{
		logger:    log.With(helpers.NilPanic(logger, "service.registry.go: logger is required"), "component", "instance_registry"),
		instances: make(map[string]*domain.ArenaInstance),
	}
}

// Add registers a live instance. Re-adding an existing id is logged and
// overwrites, which only happens on an id collision bug upstream.
func (r *instanceRegistry) Add(instance *domain.ArenaInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.instances[instance.ID]; exists {
		_ = level.Warn(r.logger).Log("msg", "instance id already registered, overwriting", "instance_id", instance.ID)
	}
	r.instances[instance.ID] = instance
}

// Remove drops an instance from the registry. Removing an unknown id is a no-op.
func (r *instanceRegistry) Remove(instanceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, instanceID)
}

// Get returns the instance with the given id.
func (r *instanceRegistry) Get(instanceID string) (*domain.ArenaInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[instanceID]
	return inst, ok
}

// FindByBossEntity returns the in-use instance whose live boss actor has the
// given entity id, if any.
func (r *instanceRegistry) FindByBossEntity(entityID string) (*domain.ArenaInstance, bool) {
	if entityID == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inst := range r.instances {
		if inst.State() == domain.StateInUse && inst.BossEntityID() == entityID {
			return inst, true
		}
	}
	return nil, false
}

// FindByMember returns the in-use instance whose party contains the subject, if any.
func (r *instanceRegistry) FindByMember(subjectID string) (*domain.ArenaInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inst := range r.instances {
		if inst.State() == domain.StateInUse && inst.HasMember(subjectID) {
			return inst, true
		}
	}
	return nil, false
}

// List returns a snapshot slice of all live instances.
func (r *instanceRegistry) List() []*domain.ArenaInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.ArenaInstance, 0, len(r.instances))
	for _, inst := range r.instances {
		out = append(out, inst)
	}
	return out
}

// Len returns the number of live instances.
func (r *instanceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
