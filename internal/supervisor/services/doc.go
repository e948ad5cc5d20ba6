// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package services provides suture.Service wrappers for listingscope components.

Each wrapper implements suture's interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its events.

Available services:

  - HTTPServerService binds the listen address, serves an *http.Server and
    shuts it down gracefully within a timeout when its context is canceled.
    A bind failure is returned so the supervisor can back off and retry.
  - WebSocketHubService runs a websocket.Hub through the ContextHub
    interface, which avoids importing the websocket package here.

Both return ctx.Err() on a normal shutdown.
*/
package services
