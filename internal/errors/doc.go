// Package errors provides structured errors for the apparel service.
//
// Errors carry a Code, a user-facing message, an optional cause and
// optional metadata:
//
//	err := errors.NotFound("placement not found").
//	    WithMeta("character_id", charID)
//
// Wrapping keeps the code of a wrapped *Error and defaults to Internal for
// anything else:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load placement")
//	}
//
// Handlers convert to gRPC status errors with ToGRPCError; clients convert
// back with FromGRPCError.
//
// Layer guidelines:
//   - Repositories return NotFound for missing keys and DataLoss for stored
//     data that no longer matches the catalog.
//   - Orchestrators validate input and return InvalidArgument.
//   - Handlers convert with ToGRPCError and log internal errors.
package errors
