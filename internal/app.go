package internal

import (
	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

// AppInternal is the root object assembled by the DIG container.
type AppInternal struct {
	controllers []entities.Controller
	aggregate   commands.Aggregate
}

// NewAppInternal creates the application from its controllers and commands.
func NewAppInternal(controllers *[]entities.Controller, aggregate commands.Aggregate) *AppInternal {
	return &AppInternal{
		controllers: *controllers,
		aggregate:   aggregate,
	}
}

// GetControllers returns every HTTP controller to mount.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetAggregate returns the repository aggregation command, used by the CLI.
func (it *AppInternal) GetAggregate() commands.Aggregate {
	return it.aggregate
}
