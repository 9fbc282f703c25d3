package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewAggregateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewGradeCommand); err != nil {
		return err
	}
	if err := container.Provide(NewRenderPageCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *AggregateCommand) Aggregate {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *GradeCommand) Grade {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RenderPageCommand) RenderPage {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
