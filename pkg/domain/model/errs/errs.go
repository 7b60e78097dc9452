package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound   = goerr.NewTag("not_found")  // 404
	TagValidation = goerr.NewTag("validation") // 400

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500
	TagExternal = goerr.NewTag("external") // 502

	// Business logic errors
	TagInvalidState = goerr.NewTag("invalid_state")

	// External service errors
	TagNotionError = goerr.NewTag("notion_error")

	// Configuration errors are fatal at startup
	TagConfig = goerr.NewTag("config")
)
