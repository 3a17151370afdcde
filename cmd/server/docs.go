// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// @title Tablero API
// @version 1.0
// @description Table explorer and chart dashboard over DuckDB or SQL Server.
// @description
// @description ## Envelope
// @description
// @description Every JSON response is wrapped:
// @description ```json
// @description {"success": true, "data": {}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
// @description ```
// @description Chart warnings are part of a successful response, not errors.
// @description
// @description ## Rate Limiting
// @description
// @description Default: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tablero/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
//
// @tag.name Tables
// @tag.description Table catalog, previews and spreadsheet export
//
// @tag.name Charts
// @tag.description Chart kinds and chart mapping over table samples
//
// @tag.name Questions
// @tag.description Canned questions of the important tables
//
// @tag.name Dashboard
// @tag.description One full dashboard interaction
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
