package redis

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenamanager/domain"
)

// fakeHost subscribes to the host command channel and answers round-trip
// commands the way the game host would.
func fakeHost(t *testing.T, client redis.UniversalClient, answer func(cmd hostCommand) hostReply) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sub := client.Subscribe(ctx, hostCommandChannel)
	_, err := sub.Receive(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { sub.Close() })

	go func() {
		for msg := range sub.Channel() {
			var cmd hostCommand
			if json.Unmarshal([]byte(msg.Payload), &cmd) != nil {
				continue
			}
			if cmd.ReplyKey == "" {
				continue
			}
			payload, _ := json.Marshal(answer(cmd))
			client.RPush(context.Background(), cmd.ReplyKey, payload)
		}
	}()
}

func TestHostBridgeCall(t *testing.T) {
	client := setupTestRedis(t)
	bridge := NewHostBridge(client, 2*time.Second, log.NewNopLogger())

	t.Run("round trip delivers the host reply", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			assert.Equal(t, "spawn", cmd.Op)
			return hostReply{OK: true, EntityID: "entity-7"}
		})

		reply, err := bridge.call(context.Background(), hostCommand{Op: "spawn", ScriptID: "MagmaLord"})
		require.NoError(t, err)
		assert.Equal(t, "entity-7", reply.EntityID)
	})

	t.Run("host rejection surfaces as an error", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			return hostReply{OK: false, Error: "world is locked"}
		})

		_, err := bridge.call(context.Background(), hostCommand{Op: "paste_blueprint"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "world is locked")
	})

	t.Run("silent host times out", func(t *testing.T) {
		short := NewHostBridge(client, 100*time.Millisecond, log.NewNopLogger())
		_, err := short.call(context.Background(), hostCommand{Op: "teleport"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did not answer")
	})
}

func TestMobSpawner(t *testing.T) {
	client := setupTestRedis(t)
	bridge := NewHostBridge(client, 2*time.Second, log.NewNopLogger())
	spawner := NewMobSpawner(bridge, log.NewNopLogger())
	ctx := context.Background()

	t.Run("spawn returns the assigned entity id", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			assert.Equal(t, "spawn", cmd.Op)
			assert.Equal(t, "MagmaLord", cmd.ScriptID)
			assert.Equal(t, 3, cmd.Level)
			return hostReply{OK: true, EntityID: "entity-42"}
		})

		id, err := spawner.Spawn(ctx, "MagmaLord", domain.Location{World: "arenas", X: 10}, 3)
		require.NoError(t, err)
		assert.Equal(t, "entity-42", id)
	})

	t.Run("spawn without entity id is an error", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			return hostReply{OK: true}
		})

		_, err := spawner.Spawn(ctx, "MagmaLord", domain.Location{World: "arenas"}, 1)
		require.Error(t, err)
	})

	t.Run("liveness follows the entity key", func(t *testing.T) {
		assert.False(t, spawner.IsActive(ctx, "entity-9"))
		require.NoError(t, client.Set(ctx, bossEntityKeyPrefix+":entity-9", "1", 0).Err())
		assert.True(t, spawner.IsActive(ctx, "entity-9"))
	})
}

func TestPlayerGatewayPresence(t *testing.T) {
	client := setupTestRedis(t)
	bridge := NewHostBridge(client, 2*time.Second, log.NewNopLogger())
	gateway := NewPlayerGateway(bridge, log.NewNopLogger())
	ctx := context.Background()

	t.Run("offline player has no presence", func(t *testing.T) {
		assert.False(t, gateway.IsOnline("ghost"))
		_, ok := gateway.LocationOf("ghost")
		assert.False(t, ok)
		assert.False(t, gateway.IsSpectator("ghost"))
	})

	t.Run("presence hash drives online state and location", func(t *testing.T) {
		require.NoError(t, client.HSet(ctx, presenceKey("player-1"), map[string]interface{}{
			"world": "arenas", "x": "100.5", "y": "64", "z": "-20.25",
			"yaw": "90", "pitch": "0", "spectator": "1",
		}).Err())

		assert.True(t, gateway.IsOnline("player-1"))
		loc, ok := gateway.LocationOf("player-1")
		require.True(t, ok)
		assert.Equal(t, "arenas", loc.World)
		assert.Equal(t, 100.5, loc.X)
		assert.Equal(t, -20.25, loc.Z)
		assert.Equal(t, float32(90), loc.Yaw)
		assert.True(t, gateway.IsSpectator("player-1"))
	})

	t.Run("teleport round trip", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			assert.Equal(t, "teleport", cmd.Op)
			assert.Equal(t, "player-1", cmd.SubjectID)
			require.NotNil(t, cmd.Location)
			assert.Equal(t, "arenas", cmd.Location.World)
			return hostReply{OK: true}
		})

		err := gateway.Teleport(ctx, "player-1", domain.Location{World: "arenas", X: 5, Y: 64, Z: 5})
		require.NoError(t, err)
	})
}

func TestBlueprintStore(t *testing.T) {
	client := setupTestRedis(t)
	bridge := NewHostBridge(client, 2*time.Second, log.NewNopLogger())
	store := NewBlueprintStore(bridge, "arenas", log.NewNopLogger())

	writeDescriptor := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "arena.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("load reads geometry from the descriptor", func(t *testing.T) {
		path := writeDescriptor(t, `
name: lava_arena
dimensions: {x: 48, y: 20, z: 48}
origin_offset: {x: -24, y: 0, z: -24}
`)
		bp, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, domain.Vec3{X: 48, Y: 20, Z: 48}, bp.Dimensions())
		assert.Equal(t, domain.Vec3{X: -24, Y: 0, Z: -24}, bp.OriginOffset())
	})

	t.Run("load rejects a descriptor without a name", func(t *testing.T) {
		path := writeDescriptor(t, `dimensions: {x: 10, y: 10, z: 10}`)
		_, err := store.Load(path)
		require.Error(t, err)
	})

	t.Run("load rejects non-positive dimensions", func(t *testing.T) {
		path := writeDescriptor(t, `
name: flat
dimensions: {x: 10, y: 0, z: 10}
`)
		_, err := store.Load(path)
		require.Error(t, err)
	})

	t.Run("paste sends the blueprint name and origin", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			assert.Equal(t, "paste_blueprint", cmd.Op)
			assert.Equal(t, "lava_arena", cmd.Blueprint)
			return hostReply{OK: true}
		})

		path := writeDescriptor(t, `
name: lava_arena
dimensions: {x: 48, y: 20, z: 48}
`)
		bp, err := store.Load(path)
		require.NoError(t, err)
		require.NoError(t, store.Paste(context.Background(), bp, domain.Location{World: "arenas", X: 1000}))
	})

	t.Run("clear region carries the configured world", func(t *testing.T) {
		fakeHost(t, client, func(cmd hostCommand) hostReply {
			assert.Equal(t, "clear_region", cmd.Op)
			require.NotNil(t, cmd.Region)
			assert.Equal(t, "arenas", cmd.Region.World)
			assert.Equal(t, 47, cmd.Region.MaxX)
			return hostReply{OK: true}
		})

		err := store.ClearRegion(context.Background(), domain.Region{
			Min: domain.Vec3{X: 0, Y: 0, Z: 0},
			Max: domain.Vec3{X: 47, Y: 19, Z: 47},
		})
		require.NoError(t, err)
	})
}
