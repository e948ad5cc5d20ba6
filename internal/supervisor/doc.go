// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package supervisor runs listingscope's long-lived services under a suture v4
supervisor tree.

The tree has two layers so a failure in one does not restart the other:

	RootSupervisor ("listingscope")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure threshold, decay and
backoff (see TreeConfig). Supervisor events are logged through sutureslog
into the zerolog-backed slog logger from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

	if report, _ := tree.UnstoppedServiceReport(); len(report) > 0 {
	    logging.Warn().Int("count", len(report)).Msg("Services failed to stop")
	}
*/
package supervisor
