// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package supervisor runs Tablero's long-lived services under a suture
// supervisor tree.
//
// The tree has two layers so a crashing background service never takes
// the HTTP server down with it:
//
//	tablero
//	├── data-layer  (engine probe)
//	└── api-layer   (HTTP server)
//
// Supervisor events are logged through sutureslog on top of the zerolog
// bridge from internal/logging.
package supervisor
