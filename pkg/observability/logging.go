package observability

import (
	"log/slog"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
)

// Logging returns middleware that logs failed runs at debug level with the
// type tag, message and the location relative to the logging validator.
func Logging(logger *slog.Logger) registry.Middleware {
	return func(typeName string, v domain.Validator) domain.Validator {
		return domain.ValidatorFunc(func(input any) domain.Result {
			res := v.Run(input)
			if !res.OK() {
				logger.Debug("validation failed",
					"type", typeName,
					"message", res.Failure.Message,
					"location", res.Failure.Location.String(),
				)
			}
			return res
		})
	}
}
