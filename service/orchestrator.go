package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"arenamanager/domain"
	"arenamanager/helpers"
	"arenamanager/interfaces"
)

// OrchestratorConfig carries the tunables of the instance lifecycle.
type OrchestratorConfig struct {
	// LobbyLocation is where members are returned on teardown.
	LobbyLocation domain.Location
	// MusicTracks are candidate ambiance tracks; one is picked per encounter.
	// Empty disables playback.
	MusicTracks []string
	// ProvisionTimeout bounds blueprint load and paste for one instance.
	ProvisionTimeout time.Duration
	// RetireDelay is the lingering time between a final-phase boss death and
	// teardown, so the party sees the victory.
	RetireDelay time.Duration
	// BossDefeatedMessage is sent to every member on victory. Supports the
	// %boss_name% placeholder.
	BossDefeatedMessage string
}

// arenaOrchestrator implements interfaces.ArenaOrchestrator.
//
// Execution discipline: lookups and bookkeeping run on the caller's
// goroutine; everything that touches the live world (teleports, spawns,
// spectator flips) is marshalled onto the coordinating context via the
// scheduler; blueprint paste and region clear run on the background pool.
// Teardown is guarded by the instance's retire latch, so whichever trigger
// fires first (boss death, party wipe, admin, shutdown) wins and the rest
// are no-ops.
type arenaOrchestrator struct {
	cfg        OrchestratorConfig
	slots      interfaces.SlotPool
	registry   interfaces.InstanceRegistry
	themes     interfaces.ThemeCatalog
	blueprints interfaces.BlueprintStore
	spawner    interfaces.MobSpawner
	players    interfaces.PlayerGateway
	rewards    interfaces.RewardDispatcher
	sched      interfaces.HostScheduler
	timeProv   interfaces.TimeProvider
	roll       func() float64
	logger     log.Logger
}

// NewArenaOrchestrator creates the orchestrator service.
//
// Parameters:
//   - cfg: lifecycle tunables. ProvisionTimeout and RetireDelay must be set
//     by the caller (cmd applies defaults).
//   - slots, registry, themes, blueprints, spawner, players, rewards, sched,
//     timeProv: collaborators. All must be non-nil.
//   - roll: uniform [0, 1) source for reward rolls and track choice. Must be
//     non-nil; cmd passes rand.Float64, tests pass a fixed func.
//   - logger: logger. Must be non-nil.
//
// Returns: interfaces.ArenaOrchestrator.
//
// Called from: main.
func NewArenaOrchestrator(
	cfg OrchestratorConfig,
	slots interfaces.SlotPool,
	registry interfaces.InstanceRegistry,
	themes interfaces.ThemeCatalog,
	blueprints interfaces.BlueprintStore,
	spawner interfaces.MobSpawner,
	players interfaces.PlayerGateway,
	rewards interfaces.RewardDispatcher,
	sched interfaces.HostScheduler,
	timeProv interfaces.TimeProvider,
	roll func() float64,
	logger log.Logger,
) interfaces.ArenaOrchestrator {
	if cfg.ProvisionTimeout <= 0 {
		panic("service.orchestrator.go: cfg.ProvisionTimeout must be positive")
	}
	if cfg.RetireDelay < 0 {
		panic("service.orchestrator.go: cfg.RetireDelay must not be negative")
	}

	return &arenaOrchestrator{
		cfg:        cfg,
		slots:      helpers.NilPanic(slots, "service.orchestrator.go: slots is required"),
		registry:   helpers.NilPanic(registry, "service.orchestrator.go: registry is required"),
		themes:     helpers.NilPanic(themes, "service.orchestrator.go: themes is required"),
		blueprints: helpers.NilPanic(blueprints, "service.orchestrator.go: blueprints is required"),
		spawner:    helpers.NilPanic(spawner, "service.orchestrator.go: spawner is required"),
		players:    helpers.NilPanic(players, "service.orchestrator.go: players is required"),
		rewards:    helpers.NilPanic(rewards, "service.orchestrator.go: rewards is required"),
		sched:      helpers.NilPanic(sched, "service.orchestrator.go: sched is required"),
		timeProv:   helpers.NilPanic(timeProv, "service.orchestrator.go: timeProv is required"),
		roll:       helpers.NilPanic(roll, "service.orchestrator.go: roll is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.orchestrator.go: logger is required"), "component", "orchestrator"),
	}
}

// Provision reserves a slot, stamps the theme's structure onto it and
// registers the new instance in Preparing state.
//
// Parameters:
//   - ctx: caller's context; the heavy paste work is additionally bounded by
//     ProvisionTimeout.
//   - themeID: arena theme id, case-insensitive.
//
// Returns: the registered instance, or an ArenaError (entity_not_found for an
// unknown theme, no_capacity when the pool is exhausted,
// collaborator_failure when the structure engine fails or times out). The
// slot is released on every failure path.
//
// Called from: workflow, handlers (admin surface).
func (o *arenaOrchestrator) Provision(ctx context.Context, themeID string) (*domain.ArenaInstance, error) {
	theme, ok := o.themes.Theme(themeID)
	if !ok {
		return nil, NewEntityNotFoundError(fmt.Sprintf("theme %q is not in the catalog", themeID), nil)
	}

	slot, err := o.slots.Reserve()
	if err != nil {
		if err == ErrNoAvailableSlot {
			return nil, NewNoCapacityError("all arena slots are in use", err)
		}
		return nil, NewInternalServerError("reserving arena slot", err)
	}

	if theme.HasGeometry {
		if err := o.pasteBlueprint(ctx, theme, slot.Origin); err != nil {
			o.slots.Release(slot.SlotID)
			return nil, err
		}
	}

	inst := domain.NewArenaInstance(uuid.NewString(), theme, slot, o.timeProv.Now())
	o.registry.Add(inst)
	_ = level.Info(o.logger).Log("msg", "instance provisioned", "instance_id", inst.ID, "theme", theme.ID, "slot_id", slot.SlotID)
	return inst, nil
}

// pasteBlueprint loads and pastes the theme structure on the background pool,
// bounded by ProvisionTimeout. On timeout the paste goroutine keeps running
// against the cancelled context; the slot is handed back by the caller either
// way.
func (o *arenaOrchestrator) pasteBlueprint(ctx context.Context, theme domain.ArenaTheme, origin domain.Location) error {
	pctx, cancel := context.WithTimeout(ctx, o.cfg.ProvisionTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	o.sched.RunAsync(func() {
		bp, err := o.blueprints.Load(theme.BlueprintFile)
		if err != nil {
			errCh <- fmt.Errorf("loading blueprint %q: %w", theme.BlueprintFile, err)
			return
		}
		errCh <- o.blueprints.Paste(pctx, bp, origin)
	})

	select {
	case err := <-errCh:
		if err != nil {
			return NewCollaboratorFailureError("pasting arena structure", err)
		}
		return nil
	case <-pctx.Done():
		_ = level.Warn(o.logger).Log("msg", "provisioning timed out", "theme", theme.ID, "timeout", o.cfg.ProvisionTimeout)
		return NewCollaboratorFailureError("provisioning timed out", pctx.Err())
	}
}

// Activate moves a Preparing instance into service: records the party,
// teleports members to their spawns, starts ambiance and spawns the boss at
// the party-scaled level.
//
// Parameters:
//   - ctx: bounds the wait for the coordinating context.
//   - instance: a Provisioned instance still in Preparing state.
//   - memberIDs: party members to move in; must be non-empty.
//   - boss: boss to spawn; must be non-nil.
//
// Returns: nil on success, and nil (after a warning, with nothing touched)
// when the instance is not awaiting activation. bad_parameter for nil/empty
// arguments; collaborator_failure when the boss spawn fails, in which case
// the instance is torn down before returning. Individual member teleports
// fail soft: they are logged and skipped.
//
// Called from: workflow.
func (o *arenaOrchestrator) Activate(ctx context.Context, instance *domain.ArenaInstance, memberIDs []string, boss *domain.BossDefinition) error {
	if instance == nil {
		return NewBadParameterError("instance is required", nil)
	}
	if boss == nil {
		return NewBadParameterError("boss is required", nil)
	}
	if len(memberIDs) == 0 {
		return NewBadParameterError("at least one member is required", nil)
	}
	if state := instance.State(); state != domain.StatePreparing {
		// Benign race (a concurrent retire or double activation), not a
		// caller error: warn and leave the instance alone.
		_ = level.Warn(o.logger).Log("msg", "activate called on instance not awaiting activation, skipping", "instance_id", instance.ID, "state", state)
		return nil
	}

	var actErr error
	err := o.sched.RunSync(ctx, func() {
		actErr = o.activateOnHost(ctx, instance, memberIDs, boss)
	})
	if err != nil {
		return NewInternalServerError("reaching the coordinating context", err)
	}
	return actErr
}

// activateOnHost runs on the coordinating context.
func (o *arenaOrchestrator) activateOnHost(ctx context.Context, inst *domain.ArenaInstance, memberIDs []string, boss *domain.BossDefinition) error {
	now := o.timeProv.Now()
	origin := inst.Slot.Origin

	locations := make(map[string]domain.Location, len(memberIDs))
	for _, member := range memberIDs {
		if loc, ok := o.players.LocationOf(member); ok {
			locations[member] = loc
		}
	}
	inst.SetParty(memberIDs, boss, locations, now)

	if len(o.cfg.MusicTracks) > 0 {
		track := o.cfg.MusicTracks[int(o.roll()*float64(len(o.cfg.MusicTracks)))%len(o.cfg.MusicTracks)]
		inst.SetMusicTrack(track)
		for _, member := range memberIDs {
			o.players.PlaySound(member, track, 1.0, 1.0)
		}
	}

	for i, member := range memberIDs {
		spawn, ok := inst.Theme.MemberSpawn(i, origin)
		if !ok {
			_ = level.Warn(o.logger).Log("msg", "theme has no member spawns, using slot origin", "theme", inst.Theme.ID)
			spawn = origin
		}
		if err := o.players.Teleport(ctx, member, spawn); err != nil {
			_ = level.Warn(o.logger).Log("msg", "member teleport failed", "instance_id", inst.ID, "subject_id", member, "err", err)
		}
	}

	bossSpawn, ok := inst.Theme.BossSpawnLocation(origin)
	if !ok {
		_ = level.Warn(o.logger).Log("msg", "theme has no boss spawn, using slot origin", "theme", inst.Theme.ID)
		bossSpawn = origin
	}
	lvl := boss.ScaledLevel(len(memberIDs))
	entityID, err := o.spawner.Spawn(ctx, boss.ScriptID, bossSpawn, lvl)
	if err != nil {
		_ = level.Error(o.logger).Log("msg", "boss spawn failed, tearing instance down", "instance_id", inst.ID, "script", boss.ScriptID, "err", err)
		if inst.BeginRetire() {
			o.retireOnHost(ctx, inst)
		}
		return NewCollaboratorFailureError(fmt.Sprintf("spawning boss script %q", boss.ScriptID), err)
	}

	inst.SetBossEntityID(entityID)
	inst.SetState(domain.StateInUse, now)
	_ = level.Info(o.logger).Log("msg", "instance activated", "instance_id", inst.ID, "boss", boss.ID, "members", len(memberIDs), "level", lvl)
	return nil
}

// Retire tears an instance down: members are restored and returned to the
// lobby, the boss is despawned, the region is cleared on the background pool
// and the slot is released. First caller wins; every later call is a no-op.
//
// Returns: nil, including when the instance was already retiring. An error
// only when the coordinating context is unreachable; the slot is still
// released and the instance deregistered in that case.
//
// Called from: workflow compensation, boss death, party wipe, admin surface,
// shutdown.
func (o *arenaOrchestrator) Retire(ctx context.Context, instance *domain.ArenaInstance) error {
	if instance == nil {
		return NewBadParameterError("instance is required", nil)
	}
	if !instance.BeginRetire() {
		_ = level.Debug(o.logger).Log("msg", "instance already retiring", "instance_id", instance.ID)
		return nil
	}

	if err := o.sched.RunSync(ctx, func() { o.retireOnHost(ctx, instance) }); err != nil {
		// World access is gone (shutdown race); still hand resources back.
		o.slots.Release(instance.Slot.SlotID)
		o.registry.Remove(instance.ID)
		return NewInternalServerError("reaching the coordinating context", err)
	}
	return nil
}

// retireOnHost runs on the coordinating context. Caller must hold the
// instance's retire latch.
func (o *arenaOrchestrator) retireOnHost(ctx context.Context, inst *domain.ArenaInstance) {
	now := o.timeProv.Now()
	entityID := inst.BossEntityID()
	track := inst.MusicTrack()
	members := inst.MemberIDs()
	inst.SetState(domain.StateCleaningUp, now)

	for _, member := range members {
		if track != "" {
			o.players.StopSound(member, track)
		}
		if !o.players.IsOnline(member) {
			continue
		}
		if err := o.players.SetSpectator(ctx, member, false); err != nil {
			_ = level.Warn(o.logger).Log("msg", "restoring member mode failed", "instance_id", inst.ID, "subject_id", member, "err", err)
		}
		if err := o.players.Teleport(ctx, member, o.cfg.LobbyLocation); err != nil {
			_ = level.Warn(o.logger).Log("msg", "returning member to lobby failed", "instance_id", inst.ID, "subject_id", member, "err", err)
		}
	}

	if entityID != "" && o.spawner.IsActive(ctx, entityID) {
		if err := o.spawner.Despawn(ctx, entityID); err != nil {
			_ = level.Warn(o.logger).Log("msg", "boss despawn failed", "instance_id", inst.ID, "entity_id", entityID, "err", err)
		}
	}

	o.sched.RunAsync(func() { o.clearAndRelease(inst) })
	_ = level.Info(o.logger).Log("msg", "instance retiring", "instance_id", inst.ID, "members", len(members))
}

// clearAndRelease runs on the background pool: wipes the slot region (one
// retry) and hands the slot back. The slot is released even when the clear
// keeps failing; debris in the plot beats a leaked slot.
func (o *arenaOrchestrator) clearAndRelease(inst *domain.ArenaInstance) {
	cctx, cancel := context.WithTimeout(context.Background(), o.cfg.ProvisionTimeout)
	defer cancel()

	region := inst.Theme.ClearRegion(inst.Slot.Origin)
	err := o.blueprints.ClearRegion(cctx, region)
	if err != nil {
		_ = level.Warn(o.logger).Log("msg", "region clear failed, retrying once", "instance_id", inst.ID, "err", err)
		err = o.blueprints.ClearRegion(cctx, region)
	}
	if err != nil {
		_ = level.Error(o.logger).Log("msg", "region clear failed twice, releasing slot with debris", "instance_id", inst.ID, "slot_id", inst.Slot.SlotID, "err", err)
	}

	o.slots.Release(inst.Slot.SlotID)
	o.registry.Remove(inst.ID)
	_ = level.Info(o.logger).Log("msg", "instance retired", "instance_id", inst.ID, "slot_id", inst.Slot.SlotID)
}

// OnBossDeath handles a scripted-actor death reported by the host. Deaths of
// a non-final phase only drop the stale entity id; the script engine chains
// the next phase itself. A final-phase death pays out reward rolls and
// schedules teardown after RetireDelay.
//
// Parameters:
//   - ctx: caller's context, used for reward dispatch.
//   - entityID: the dead actor's live entity id.
//   - scriptID: the dead actor's script id.
//
// Called from: the host's death listener adapter.
func (o *arenaOrchestrator) OnBossDeath(ctx context.Context, entityID string, scriptID string) {
	inst, ok := o.registry.FindByBossEntity(entityID)
	if !ok {
		inst, ok = o.findByBossScript(scriptID)
	}
	if !ok {
		return
	}
	boss := inst.Boss()
	if boss == nil {
		_ = level.Warn(o.logger).Log("msg", "tracked boss died but instance has no definition", "instance_id", inst.ID, "entity_id", entityID)
		_ = o.Retire(ctx, inst)
		return
	}

	if !strings.EqualFold(scriptID, boss.EffectiveFinalScriptID()) {
		if inst.BossEntityID() == entityID {
			inst.SetBossEntityID("")
		}
		_ = level.Debug(o.logger).Log("msg", "boss phase defeated, awaiting next phase", "instance_id", inst.ID, "script", scriptID)
		return
	}

	o.payRewards(ctx, inst, boss)
	o.sched.RunLater(o.cfg.RetireDelay, func() {
		if err := o.Retire(context.Background(), inst); err != nil {
			_ = level.Warn(o.logger).Log("msg", "deferred retire failed", "instance_id", inst.ID, "err", err)
		}
	})
}

// findByBossScript is the fallback lookup for deaths of phases whose entity
// id was never tracked: the in-use instance whose boss uses the script.
func (o *arenaOrchestrator) findByBossScript(scriptID string) (*domain.ArenaInstance, bool) {
	if scriptID == "" {
		return nil, false
	}
	for _, inst := range o.registry.List() {
		if inst.State() != domain.StateInUse {
			continue
		}
		boss := inst.Boss()
		if boss == nil {
			continue
		}
		if strings.EqualFold(scriptID, boss.ScriptID) || strings.EqualFold(scriptID, boss.EffectiveFinalScriptID()) {
			return inst, true
		}
	}
	return nil, false
}

// payRewards rolls every reward entry once per party member and dispatches
// the expanded actions. Dispatch failures are logged and do not stop the
// remaining rolls.
func (o *arenaOrchestrator) payRewards(ctx context.Context, inst *domain.ArenaInstance, boss *domain.BossDefinition) {
	members := inst.MemberIDs()
	if len(members) == 0 || len(boss.Rewards) == 0 {
		_ = level.Warn(o.logger).Log("msg", "no rewards to pay out", "instance_id", inst.ID, "members", len(members), "rewards", len(boss.Rewards))
		return
	}

	for _, member := range members {
		for _, reward := range boss.Rewards {
			if o.roll() > reward.Chance {
				continue
			}
			action := strings.NewReplacer(
				"%player%", member,
				"%boss_name%", boss.DisplayName,
				"%arena_id%", inst.ID,
			).Replace(reward.ActionTemplate)
			if err := o.rewards.Dispatch(ctx, action); err != nil {
				_ = level.Error(o.logger).Log("msg", "reward dispatch failed", "instance_id", inst.ID, "action", action, "err", err)
			}
		}
		if o.cfg.BossDefeatedMessage != "" && o.players.IsOnline(member) {
			o.players.SendMessage(member, strings.ReplaceAll(o.cfg.BossDefeatedMessage, "%boss_name%", boss.DisplayName))
		}
	}
}

// OnMemberDefeated handles a party member going down inside their arena: the
// member becomes a spectator, and when every member is a spectator or offline
// the encounter is over and the instance retires.
//
// Called from: the host's player death listener adapter.
func (o *arenaOrchestrator) OnMemberDefeated(ctx context.Context, subjectID string) {
	inst, ok := o.registry.FindByMember(subjectID)
	if !ok {
		return
	}

	err := o.sched.RunSync(ctx, func() {
		if err := o.players.SetSpectator(ctx, subjectID, true); err != nil {
			_ = level.Warn(o.logger).Log("msg", "moving defeated member to spectator failed", "instance_id", inst.ID, "subject_id", subjectID, "err", err)
		}
	})
	if err != nil {
		_ = level.Warn(o.logger).Log("msg", "defeated member handling skipped", "instance_id", inst.ID, "err", err)
		return
	}

	if o.partyWiped(inst) {
		_ = level.Info(o.logger).Log("msg", "party wiped, retiring instance", "instance_id", inst.ID)
		if err := o.Retire(ctx, inst); err != nil {
			_ = level.Warn(o.logger).Log("msg", "wipe retire failed", "instance_id", inst.ID, "err", err)
		}
	}
}

// partyWiped reports whether every member is in spectator mode or gone.
func (o *arenaOrchestrator) partyWiped(inst *domain.ArenaInstance) bool {
	for _, member := range inst.MemberIDs() {
		if o.players.IsOnline(member) && !o.players.IsSpectator(member) {
			return false
		}
	}
	return true
}

// Shutdown retires every live instance and waits for the teardowns that could
// be started. Bounded by ctx.
//
// Called from: main on shutdown.
func (o *arenaOrchestrator) Shutdown(ctx context.Context) error {
	instances := o.registry.List()
	_ = level.Info(o.logger).Log("msg", "draining live instances", "count", len(instances))

	var firstErr error
	for _, inst := range instances {
		if err := o.Retire(ctx, inst); err != nil && firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil {
			return NewInternalServerError("shutdown drain interrupted", ctx.Err())
		}
	}
	return firstErr
}
