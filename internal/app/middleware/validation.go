package middleware

import (
	"context"

	"autorent/internal/app/commands"
)

// Validator inspects a message before its handler runs. Implementations
// decide which message types they care about and return nil for the rest.
type Validator interface {
	Validate(ctx context.Context, message any) error
}

// Validation gates command dispatch on the validator. A booking submission
// that fails field validation is rejected here, so its handler and the
// pricing pipeline behind it never run.
func Validation(v Validator) CommandMiddleware {
	if v == nil {
		panic("middleware: validator required")
	}
	return func(next commands.Bus) commands.Bus {
		nextFn := wrapCommand(next)
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			if err := v.Validate(ctx, cmd); err != nil {
				return nil, err
			}
			return nextFn(ctx, cmd)
		})
	}
}
