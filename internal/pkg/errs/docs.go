// Package errs provides the standardized error types used throughout the
// fulfillment pipeline. It implements a consistent pattern for error
// creation, formatting, and unwrapping.
//
// The package defines one error kind per failure class the pipeline
// anticipates:
//   - TransportError: the remote call never produced a usable response
//   - AuthError: the endpoint rejected the supplied credentials
//   - ValidationError: an order carried malformed or missing required fields
//   - UpstreamBusinessError: the API answered but flagged the operation failed
//   - UploadError: the remote archive store could not be written to
//   - UnexpectedError: the final catch-all, never silently swallowed
//   - ValueIsRequiredError: a required configuration value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrTransport)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause applies
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// Components convert every remote-call failure into one of these kinds at
// their own boundary; no raw transport error crosses a pipeline stage.
package errs
