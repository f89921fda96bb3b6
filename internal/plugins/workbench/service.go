package workbench

import (
	"context"
	"fmt"

	"github.com/forgelabs/pluginforge/internal/apperror"
	"github.com/forgelabs/pluginforge/internal/scaffold"
)

// Service exposes the workbench operations the HTTP layer calls. Every
// mutating call persists the new state; Bundle regenerates all artifacts
// from whatever is stored, so two calls over unchanged state produce
// byte-identical output.
type Service interface {
	State(ctx context.Context, sessionID string) (*State, error)
	Bundle(ctx context.Context, sessionID string) (*State, []scaffold.Artifact, error)
	UpdateMetadataField(ctx context.Context, sessionID, field, value string) error
	AddEndpoint(ctx context.Context, sessionID string, input AddEndpointInput) error
	RemoveEndpoint(ctx context.Context, sessionID string, index int) error
	Replace(ctx context.Context, sessionID string, state *State) error
	Reset(ctx context.Context, sessionID string) error
}

type service struct {
	repo Repository
}

// NewService creates a workbench service backed by the given repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// State loads the session's state, falling back to defaults for sessions
// that have not edited anything yet.
func (s *service) State(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if state == nil {
		return DefaultState(), nil
	}
	return state, nil
}

// Bundle loads the state and regenerates the full artifact set from it.
func (s *service) Bundle(ctx context.Context, sessionID string) (*State, []scaffold.Artifact, error) {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return state, scaffold.Bundle(state.Metadata, state.Endpoints), nil
}

// UpdateMetadataField sets one metadata field by its form name. Unknown
// field names are rejected; everything else is accepted as typed, since the
// generators tolerate any input.
func (s *service) UpdateMetadataField(ctx context.Context, sessionID, field, value string) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	m := &state.Metadata
	switch field {
	case FieldCodeName:
		m.CodeName = value
	case FieldFriendlyName:
		m.FriendlyName = value
	case FieldVersion:
		m.Version = value
	case FieldDescription:
		m.Description = value
	case FieldCategory:
		m.Category = value
	case FieldLoadPhase:
		if !scaffold.ValidLoadPhases[scaffold.LoadPhase(value)] {
			return apperror.NewValidation(fmt.Sprintf("unknown loading phase %q", value))
		}
		m.LoadPhase = scaffold.LoadPhase(value)
	case FieldPlatforms:
		m.Platforms = value
	case FieldEditorModule:
		m.EditorModule = parseFlag(value)
	case FieldFunctionLibrary:
		m.FunctionLibrary = parseFlag(value)
	case FieldAsyncAction:
		m.AsyncAction = parseFlag(value)
	case FieldEditorMenu:
		m.EditorMenu = parseFlag(value)
	default:
		return apperror.NewBadRequest(fmt.Sprintf("unknown metadata field %q", field))
	}

	return s.save(ctx, sessionID, state)
}

// AddEndpoint appends a new endpoint built from the sub-form submission.
// Order is preserved: new endpoints always land at the end of the list.
func (s *service) AddEndpoint(ctx context.Context, sessionID string, input AddEndpointInput) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	state.Endpoints = append(state.Endpoints, endpointFromInput(input))
	return s.save(ctx, sessionID, state)
}

// RemoveEndpoint deletes the endpoint at the given position. Remaining
// endpoints keep their relative order.
func (s *service) RemoveEndpoint(ctx context.Context, sessionID string, index int) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(state.Endpoints) {
		return apperror.NewNotFound("endpoint not found")
	}

	state.Endpoints = append(state.Endpoints[:index], state.Endpoints[index+1:]...)
	return s.save(ctx, sessionID, state)
}

// Replace swaps the session's entire state, used when applying a preset.
func (s *service) Replace(ctx context.Context, sessionID string, state *State) error {
	if state == nil {
		return apperror.NewBadRequest("missing workbench state")
	}
	return s.save(ctx, sessionID, state)
}

// Reset discards the session's state so it starts over from defaults.
func (s *service) Reset(ctx context.Context, sessionID string) error {
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

func (s *service) save(ctx context.Context, sessionID string, state *State) error {
	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}
