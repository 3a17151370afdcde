// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/tablero/internal/models"
)

// ListTables returns every base table in catalog order. On failure the
// list is empty and the gateway error is returned.
func (g *Gateway) ListTables(ctx context.Context, d Dialect) ([]models.TableRef, error) {
	res, err := g.Execute(WithStatementName(ctx, "catalog"), d.ListTablesStatement())
	if err != nil {
		return nil, err
	}
	return tableRefs(res)
}

func tableRefs(res models.TabularResult) ([]models.TableRef, error) {
	if len(res.Columns) < 2 {
		return nil, fmt.Errorf("catalog returned %d columns, want 2", len(res.Columns))
	}
	refs := make([]models.TableRef, 0, len(res.Rows))
	for _, r := range res.Rows {
		schema, _ := r[0].(string)
		name, _ := r[1].(string)
		if schema == "" || name == "" {
			continue
		}
		refs = append(refs, models.TableRef{Schema: schema, Name: name})
	}
	return refs, nil
}

// Preview runs the dialect's row-bounded SELECT over t.
func (g *Gateway) Preview(ctx context.Context, d Dialect, t models.TableRef, n int) (models.TabularResult, error) {
	return g.Execute(WithStatementName(ctx, "preview"), d.PreviewStatement(t, n))
}
