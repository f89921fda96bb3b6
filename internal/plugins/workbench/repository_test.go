package workbench

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/forgelabs/pluginforge/internal/scaffold"
)

func testRepository(t *testing.T, ttl time.Duration) (Repository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRepository(client, ttl), mr
}

func TestRedisRepositoryRoundTrip(t *testing.T) {
	repo, _ := testRepository(t, time.Hour)
	ctx := context.Background()

	state := DefaultState()
	state.Metadata.CodeName = "Nebula Toolkit"
	state.Endpoints = append(state.Endpoints, scaffold.EndpointSpec{
		Name:       "Ping",
		ReturnType: "bool",
		Params:     []scaffold.Param{{Name: "Target", Type: "FVector"}},
	})

	if err := repo.Save(ctx, "sid", state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(state, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisRepositoryMissingSession(t *testing.T) {
	repo, _ := testRepository(t, time.Hour)

	got, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() = %+v, want nil for missing session", got)
	}
}

func TestRedisRepositoryStateExpires(t *testing.T) {
	repo, mr := testRepository(t, time.Minute)
	ctx := context.Background()

	if err := repo.Save(ctx, "sid", DefaultState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := repo.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Error("state survived past its TTL")
	}
}

func TestRedisRepositoryCorruptStateTreatedAsAbsent(t *testing.T) {
	repo, mr := testRepository(t, time.Hour)

	mr.Set(stateKey("sid"), "{not json")

	got, err := repo.Load(context.Background(), "sid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() = %+v, want nil for corrupt state", got)
	}
}

func TestRedisRepositoryClear(t *testing.T) {
	repo, _ := testRepository(t, time.Hour)
	ctx := context.Background()

	if err := repo.Save(ctx, "sid", DefaultState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Clear(ctx, "sid"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := repo.Load(ctx, "sid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Error("state survived Clear()")
	}
}
