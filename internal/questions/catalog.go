// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

// Package questions holds the canned analytical questions offered for the
// three important tables and runs the few that are wired to a query.
//
// Every (table, question) pair resolves to a Binding: Bound pairs carry a
// literal SQL template and optionally a fixed bar chart, Unbound pairs are
// listed for selection only and answer with ErrNotImplemented.
package questions

import (
	"strings"

	"github.com/tomtom215/tablero/internal/models"
)

// TablePlaceholder is replaced by the schema-qualified table name.
const TablePlaceholder = "{table}"

// Binding is either Bound or Unbound.
type Binding interface {
	bound() bool
}

// ChartTemplate is the fixed chart drawn over a bound answer. Columns are
// addressed by name, unlike the generic chart mapper.
type ChartTemplate struct {
	Kind  models.ChartKind `json:"kind"`
	Title string           `json:"title"`
	X     string           `json:"x"`
	Y     string           `json:"y"`
}

// Spec turns the template into a ChartSpec.
func (c ChartTemplate) Spec() models.ChartSpec {
	return models.ChartSpec{Kind: c.Kind, Title: c.Title, X: c.X, Y: c.Y}
}

// Bound runs Query and, when Chart is set, draws it.
type Bound struct {
	Query string
	Chart *ChartTemplate
}

func (Bound) bound() bool { return true }

// Statement interpolates t into the template.
func (b Bound) Statement(t models.TableRef) string {
	return strings.ReplaceAll(b.Query, TablePlaceholder, t.String())
}

// Unbound questions have no behavior yet.
type Unbound struct{}

func (Unbound) bound() bool { return false }

// IsBound reports whether b runs a query.
func IsBound(b Binding) bool {
	return b != nil && b.bound()
}

// Question is one selectable entry.
type Question struct {
	Text    string
	Binding Binding
}

// ImportantTable groups the questions asked about one table.
type ImportantTable struct {
	Table     models.TableRef
	Questions []Question
}

var (
	salesOrderHeader = models.TableRef{Schema: "Sales", Name: "SalesOrderHeader"}
	customer         = models.TableRef{Schema: "Sales", Name: "Customer"}
	product          = models.TableRef{Schema: "Production", Name: "Product"}
)

// Selection order.
var catalog = []ImportantTable{
	{
		Table: salesOrderHeader,
		Questions: []Question{
			{
				Text: "¿Cuál es el total de ventas por año?",
				Binding: Bound{
					Query: "SELECT YEAR(OrderDate) AS Anio, SUM(TotalDue) AS TotalVentas FROM {table} GROUP BY YEAR(OrderDate) ORDER BY Anio",
					Chart: &ChartTemplate{Kind: models.ChartBar, Title: "Total de Ventas por Año", X: "Anio", Y: "TotalVentas"},
				},
			},
			{Text: "¿Cuántos pedidos se realizaron por cliente?", Binding: Unbound{}},
		},
	},
	{
		Table: customer,
		Questions: []Question{
			{
				Text:    "¿Cuántos clientes tenemos en total?",
				Binding: Bound{Query: "SELECT COUNT(*) AS TotalClientes FROM {table}"},
			},
			{Text: "¿Cuál es la distribución de clientes por región?", Binding: Unbound{}},
		},
	},
	{
		Table: product,
		Questions: []Question{
			{
				Text: "¿Cuántos productos tenemos en cada subcategoría?",
				Binding: Bound{
					Query: "SELECT ProductSubcategoryID, COUNT(*) AS TotalProductos FROM {table} GROUP BY ProductSubcategoryID",
					Chart: &ChartTemplate{Kind: models.ChartBar, Title: "Total de Productos por Subcategoría", X: "ProductSubcategoryID", Y: "TotalProductos"},
				},
			},
			{Text: "¿Cuál es la subcategoría más común de productos?", Binding: Unbound{}},
		},
	},
}

// Catalog returns the important tables in selection order. The slices are
// copies.
func Catalog() []ImportantTable {
	out := make([]ImportantTable, len(catalog))
	for i, t := range catalog {
		qs := make([]Question, len(t.Questions))
		copy(qs, t.Questions)
		out[i] = ImportantTable{Table: t.Table, Questions: qs}
	}
	return out
}

// DefaultTable is the first important table.
func DefaultTable() models.TableRef {
	return catalog[0].Table
}

// Tables lists the important tables in order.
func Tables() []models.TableRef {
	out := make([]models.TableRef, len(catalog))
	for i, t := range catalog {
		out[i] = t.Table
	}
	return out
}

// QuestionsFor returns the question texts for table, or ErrUnknownTable.
func QuestionsFor(table models.TableRef) ([]string, error) {
	t, err := find(table)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Questions))
	for i, q := range t.Questions {
		out[i] = q.Text
	}
	return out, nil
}

// Lookup resolves a pair to its binding.
func Lookup(table models.TableRef, question string) (Binding, error) {
	t, err := find(table)
	if err != nil {
		return nil, err
	}
	for _, q := range t.Questions {
		if q.Text == question {
			return q.Binding, nil
		}
	}
	return nil, ErrUnknownQuestion
}

func find(table models.TableRef) (*ImportantTable, error) {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Table.String(), table.String()) {
			return &catalog[i], nil
		}
	}
	return nil, ErrUnknownTable
}
