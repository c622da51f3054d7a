// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Apply a Config loaded from the environment or a YAML file
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value every time Handle is invoked.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with NewContextHandler, which runs any
// registered ContextExtractor callbacks before delegating to the underlying
// handler.
//
// Helper constructors such as Error, Input and FormatName live in attr.go and
// keep attribute naming consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/validators/pkg/logger"
//
//	func main() {
//	    log := logger.New(logger.WithDevelopment("device-registry"))
//	    logger.SetAsDefault(log)
//
//	    log.Debug("input rejected",
//	        logger.FormatName("mac"),
//	        logger.Input(raw),
//	        logger.Error(err),
//	    )
//	}
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, so they can be passed without an additional nil check. Input
// truncates long values to MaxInputLen bytes.
package logger
