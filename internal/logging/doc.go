// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package logging provides the process-wide zerolog logger for Listingscope.

Call Init once from main with the values from config.LoggingConfig. Until
then a JSON logger at info level writing to stderr is active, so packages can
log during their own initialization.

# Usage

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Int("listings", n).Msg("Dataset loaded")
	logging.Err(err).Str("source", "csv").Msg("Dataset load failed")

Request-scoped logging picks up the request and correlation IDs stored in the
context by the HTTP middleware:

	logging.Ctx(r.Context()).Debug().Msg("Snapshot computed")

WebSocket clients carry their own ID:

	ctx = logging.ContextWithClientID(ctx, client.ID)

# slog bridge

NewSlogLogger returns a *slog.Logger that writes through zerolog. The
supervisor tree uses it for sutureslog event hooks.

# Output

JSON output uses the fields time, level, message, error and caller. Console
output is intended for local development only.
*/
package logging
