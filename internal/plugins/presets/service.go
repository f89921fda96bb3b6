package presets

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgelabs/pluginforge/internal/apperror"
	"github.com/forgelabs/pluginforge/internal/plugins/workbench"
)

// WorkbenchGateway is the slice of the workbench service presets needs:
// reading a session's state to snapshot it, and replacing it on apply.
type WorkbenchGateway interface {
	State(ctx context.Context, sessionID string) (*workbench.State, error)
	Replace(ctx context.Context, sessionID string, state *workbench.State) error
}

// Service exposes the preset catalog operations.
type Service interface {
	List(ctx context.Context) ([]Preset, error)
	Get(ctx context.Context, slug string) (*Preset, error)
	CreateFromSession(ctx context.Context, sessionID string, input CreatePresetInput) (*Preset, error)
	Delete(ctx context.Context, slug string) error
	Apply(ctx context.Context, sessionID, slug string) error
}

type service struct {
	repo      Repository
	workbench WorkbenchGateway
}

// NewService creates a preset service.
func NewService(repo Repository, wb WorkbenchGateway) Service {
	return &service{repo: repo, workbench: wb}
}

// List returns the catalog ordered by name.
func (s *service) List(ctx context.Context) ([]Preset, error) {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return presets, nil
}

// Get fetches one preset by slug.
func (s *service) Get(ctx context.Context, slug string) (*Preset, error) {
	preset, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if preset == nil {
		return nil, apperror.NewNotFound(fmt.Sprintf("preset %q not found", slug))
	}
	return preset, nil
}

// CreateFromSession snapshots the session's current workbench state under a
// new preset name.
func (s *service) CreateFromSession(ctx context.Context, sessionID string, input CreatePresetInput) (*Preset, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidation("preset name is required")
	}

	slug := Slugify(name)
	if slug == "" {
		return nil, apperror.NewValidation("preset name must contain letters or digits")
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if existing != nil {
		return nil, apperror.NewConflict(fmt.Sprintf("a preset named %q already exists", name))
	}

	state, err := s.workbench.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	preset := &Preset{
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		State:       state,
	}
	if err := s.repo.Create(ctx, preset); err != nil {
		return nil, apperror.NewInternal(err)
	}
	return preset, nil
}

// Delete removes a preset from the catalog.
func (s *service) Delete(ctx context.Context, slug string) error {
	preset, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if preset == nil {
		return apperror.NewNotFound(fmt.Sprintf("preset %q not found", slug))
	}

	if err := s.repo.Delete(ctx, slug); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

// Apply replaces the session's workbench state with the preset's snapshot.
func (s *service) Apply(ctx context.Context, sessionID, slug string) error {
	preset, err := s.Get(ctx, slug)
	if err != nil {
		return err
	}
	return s.workbench.Replace(ctx, sessionID, preset.State)
}
