// Package errors is the structured error type shared by the arena service.
//
// Errors carry a Code, a message safe to show a player, an optional cause and
// metadata that is emitted alongside the error in logs:
//
//	err := errors.FailedPrecondition("run is not in intermission").
//	    WithMeta("run_id", runID).
//	    WithMeta("wave", wave)
//
// Wrapping keeps the code of the innermost *Error so repository failures keep
// their classification as they travel up:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load profile")
//	}
//
// The simulation core itself does not return errors from its tick path. Only
// calls that commit player choices, load configuration or touch persistence do.
package errors
