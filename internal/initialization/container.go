package initialization

import (
	"github.com/devtoolbox/devtoolbox/pkg/domain"

	"github.com/rs/zerolog/log"
)

type ToolDependencies struct {
	Registry        domain.ToolRegistry
	ParameterBinder domain.ToolParameterBinder
}

// BuildToolDependencies creates the tool registry shared by every front end.
// The registry is not modified after this returns.
func BuildToolDependencies() (*ToolDependencies, error) {
	log.Debug().Msg("Building tool registry")

	binder := domain.NewJSONParameterBinder()
	registry := domain.NewToolRegistry()

	toolDeps := domain.ToolDeps{
		ParameterBinder: binder,
	}

	if err := registerTools(registry, toolDeps); err != nil {
		log.Error().Err(err).Msg("Failed to register tools")
		return nil, err
	}

	log.Debug().Int("tool_count", len(registry.Tools())).Msg("Tool registry built")

	return &ToolDependencies{
		Registry:        registry,
		ParameterBinder: binder,
	}, nil
}
