// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package logging

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// RedactDSN hides the password in a database connection string before it
// reaches a log line. Both URL DSNs (sqlserver://user:pw@host) and
// key=value DSNs (password=pw;...) are handled.
func RedactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
		}
		q := u.Query()
		for _, k := range []string{"password", "pwd"} {
			if q.Has(k) {
				q.Set(k, redacted)
			}
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	parts := strings.Split(dsn, ";")
	for i, p := range parts {
		k, _, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "password", "pwd":
			parts[i] = k + "=" + redacted
		}
	}
	return strings.Join(parts, ";")
}
