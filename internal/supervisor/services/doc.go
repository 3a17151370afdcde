// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

/*
Package services adapts Tablero components to suture.Service.

HTTPServerService turns the blocking ListenAndServe/Shutdown pair of an
*http.Server into a context-aware Serve:

	server := &http.Server{Addr: ":8501", Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

EngineProbeService pings the database engine on an interval, keeps the
tablero_database_up gauge current and logs when the engine goes away or
comes back:

	tree.AddDataService(services.NewEngineProbeService(engine, 30*time.Second))

Return values follow suture's contract: an error means the service crashed
and is restarted, ctx.Err() means shutdown was requested.
*/
package services
