package workbench

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/forgelabs/pluginforge/internal/apperror"
	"github.com/forgelabs/pluginforge/internal/scaffold"
)

// mockRepository is a function-field test double for the Repository
// interface. Tests set only the functions they need.
type mockRepository struct {
	loadFn  func(ctx context.Context, sessionID string) (*State, error)
	saveFn  func(ctx context.Context, sessionID string, state *State) error
	clearFn func(ctx context.Context, sessionID string) error
}

func (m *mockRepository) Load(ctx context.Context, sessionID string) (*State, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockRepository) Save(ctx context.Context, sessionID string, state *State) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, sessionID, state)
	}
	return nil
}

func (m *mockRepository) Clear(ctx context.Context, sessionID string) error {
	if m.clearFn != nil {
		return m.clearFn(ctx, sessionID)
	}
	return nil
}

// memoryRepo wires the mock to an in-memory map for tests that need state
// to survive across calls.
func memoryRepo() *mockRepository {
	store := map[string]*State{}
	return &mockRepository{
		loadFn: func(_ context.Context, sid string) (*State, error) {
			return store[sid], nil
		},
		saveFn: func(_ context.Context, sid string, state *State) error {
			store[sid] = state
			return nil
		},
		clearFn: func(_ context.Context, sid string) error {
			delete(store, sid)
			return nil
		},
	}
}

func TestStateReturnsDefaultsForFreshSession(t *testing.T) {
	svc := NewService(&mockRepository{})

	state, err := svc.State(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}

	if diff := cmp.Diff(DefaultState(), state); diff != "" {
		t.Errorf("fresh session state mismatch (-want +got):\n%s", diff)
	}
}

func TestStateWrapsRepositoryErrors(t *testing.T) {
	svc := NewService(&mockRepository{
		loadFn: func(context.Context, string) (*State, error) {
			return nil, errors.New("redis down")
		},
	})

	_, err := svc.State(context.Background(), "sid")

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("State() error = %v, want *apperror.AppError", err)
	}
	if appErr.Code != 500 {
		t.Errorf("Code = %d, want 500", appErr.Code)
	}
}

func TestUpdateMetadataField(t *testing.T) {
	tests := []struct {
		field string
		value string
		check func(t *testing.T, m scaffold.PluginMetadata)
	}{
		{FieldCodeName, "Nebula Toolkit", func(t *testing.T, m scaffold.PluginMetadata) {
			if m.CodeName != "Nebula Toolkit" {
				t.Errorf("CodeName = %q", m.CodeName)
			}
		}},
		{FieldVersion, "2.1.0", func(t *testing.T, m scaffold.PluginMetadata) {
			if m.Version != "2.1.0" {
				t.Errorf("Version = %q", m.Version)
			}
		}},
		{FieldLoadPhase, "PostEngineInit", func(t *testing.T, m scaffold.PluginMetadata) {
			if m.LoadPhase != scaffold.PhasePostEngineInit {
				t.Errorf("LoadPhase = %q", m.LoadPhase)
			}
		}},
		{FieldAsyncAction, "on", func(t *testing.T, m scaffold.PluginMetadata) {
			if !m.AsyncAction {
				t.Error("AsyncAction = false, want true")
			}
		}},
		{FieldEditorModule, "", func(t *testing.T, m scaffold.PluginMetadata) {
			if m.EditorModule {
				t.Error("EditorModule = true, want false for empty value")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			repo := memoryRepo()
			svc := NewService(repo)

			if err := svc.UpdateMetadataField(context.Background(), "sid", tt.field, tt.value); err != nil {
				t.Fatalf("UpdateMetadataField() error = %v", err)
			}

			state, err := svc.State(context.Background(), "sid")
			if err != nil {
				t.Fatalf("State() error = %v", err)
			}
			tt.check(t, state.Metadata)
		})
	}
}

func TestUpdateMetadataFieldRejectsUnknownField(t *testing.T) {
	svc := NewService(memoryRepo())

	err := svc.UpdateMetadataField(context.Background(), "sid", "favourite_color", "blue")

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Fatalf("error = %v, want 400 AppError", err)
	}
}

func TestUpdateMetadataFieldRejectsUnknownLoadPhase(t *testing.T) {
	svc := NewService(memoryRepo())

	err := svc.UpdateMetadataField(context.Background(), "sid", FieldLoadPhase, "PreEverything")

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 422 {
		t.Fatalf("error = %v, want 422 AppError", err)
	}
}

func TestAddEndpointParsesParamDraft(t *testing.T) {
	svc := NewService(memoryRepo())

	err := svc.AddEndpoint(context.Background(), "sid", AddEndpointInput{
		Name:       "  Get Score ",
		ReturnType: "float",
		ParamDraft: "PlayerId:int32, nonsense, Scale : float",
	})
	if err != nil {
		t.Fatalf("AddEndpoint() error = %v", err)
	}

	state, _ := svc.State(context.Background(), "sid")
	if len(state.Endpoints) != 1 {
		t.Fatalf("got %d endpoints, want 1", len(state.Endpoints))
	}

	want := scaffold.EndpointSpec{
		Name:       "Get Score",
		ReturnType: "float",
		Params: []scaffold.Param{
			{Name: "PlayerId", Type: "int32"},
			{Name: "Scale", Type: "float"},
		},
	}
	if diff := cmp.Diff(want, state.Endpoints[0]); diff != "" {
		t.Errorf("stored endpoint mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveEndpointKeepsOrder(t *testing.T) {
	svc := NewService(memoryRepo())
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if err := svc.AddEndpoint(ctx, "sid", AddEndpointInput{Name: name}); err != nil {
			t.Fatalf("AddEndpoint(%s) error = %v", name, err)
		}
	}

	if err := svc.RemoveEndpoint(ctx, "sid", 1); err != nil {
		t.Fatalf("RemoveEndpoint() error = %v", err)
	}

	state, _ := svc.State(ctx, "sid")
	got := []string{}
	for _, e := range state.Endpoints {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff([]string{"First", "Third"}, got); diff != "" {
		t.Errorf("endpoint order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveEndpointOutOfRange(t *testing.T) {
	svc := NewService(memoryRepo())

	err := svc.RemoveEndpoint(context.Background(), "sid", 5)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != 404 {
		t.Fatalf("error = %v, want 404 AppError", err)
	}
}

func TestBundleIsDeterministic(t *testing.T) {
	svc := NewService(memoryRepo())
	ctx := context.Background()

	if err := svc.UpdateMetadataField(ctx, "sid", FieldCodeName, "Nebula Toolkit"); err != nil {
		t.Fatalf("UpdateMetadataField() error = %v", err)
	}
	if err := svc.AddEndpoint(ctx, "sid", AddEndpointInput{Name: "Ping", ReturnType: "bool"}); err != nil {
		t.Fatalf("AddEndpoint() error = %v", err)
	}

	_, first, err := svc.Bundle(ctx, "sid")
	if err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}
	_, second, err := svc.Bundle(ctx, "sid")
	if err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Bundle() differs (-first +second):\n%s", diff)
	}
}

func TestResetClearsState(t *testing.T) {
	svc := NewService(memoryRepo())
	ctx := context.Background()

	if err := svc.AddEndpoint(ctx, "sid", AddEndpointInput{Name: "Ping"}); err != nil {
		t.Fatalf("AddEndpoint() error = %v", err)
	}
	if err := svc.Reset(ctx, "sid"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	state, _ := svc.State(ctx, "sid")
	if diff := cmp.Diff(DefaultState(), state); diff != "" {
		t.Errorf("state after reset mismatch (-want +got):\n%s", diff)
	}
}
