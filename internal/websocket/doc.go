// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

/*
Package websocket serves the live dashboard over WebSocket connections.

A client sends filter updates and receives a full dashboard snapshot for each
one, so a browser can re-render every chart from a single frame.

Key Components:

  - Hub: tracks connected clients, keeps the connection gauge current and
    closes every client on shutdown. Runs as a supervised service.
  - Client: one connection with a read pump and a write pump.
  - Message: the typed frame exchanged in both directions.

Protocol:

	-> {"type":"filter","data":{"neighbourhood_group":["Brooklyn"],"price_max":200}}
	<- {"type":"snapshot","data":{"filter":{...},"metrics":{...},...}}

	-> {"type":"ping"}
	<- {"type":"pong","data":null}

	<- {"type":"error","data":{"code":"VALIDATION_ERROR","message":"..."}}

Filter data has the same shape and validation rules as the HTTP filter query
parameters. Omitted price bounds default to the dataset's price range.

Each client owns a token bucket (golang.org/x/time/rate). A filter update
arriving when the bucket is empty is answered with a RATE_LIMIT_EXCEEDED
error frame and no snapshot is computed.

Connections are kept alive with ping/pong frames. Frames larger than the
configured limit close the connection.

Usage:

	hub := websocket.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(hub))

	client := websocket.NewClient(hub, conn, dashboardService, opts)
	hub.Register <- client
	client.Start()
*/
package websocket
