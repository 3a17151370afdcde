// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package database

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/tablero/internal/models"
)

var numericTypes = map[string]bool{
	"TINYINT": true, "SMALLINT": true, "INTEGER": true, "INT": true, "BIGINT": true, "HUGEINT": true,
	"UTINYINT": true, "USMALLINT": true, "UINTEGER": true, "UBIGINT": true, "UHUGEINT": true,
	"INT1": true, "INT2": true, "INT4": true, "INT8": true,
	"FLOAT": true, "REAL": true, "DOUBLE": true, "DECIMAL": true, "NUMERIC": true,
	"MONEY": true, "SMALLMONEY": true,
}

var datetimeTypes = map[string]bool{
	"DATE": true, "TIME": true, "TIMESTAMP": true, "TIMESTAMPTZ": true,
	"TIMESTAMP WITH TIME ZONE": true, "TIMESTAMP_S": true, "TIMESTAMP_MS": true, "TIMESTAMP_NS": true,
	"DATETIME": true, "DATETIME2": true, "SMALLDATETIME": true, "DATETIMEOFFSET": true,
}

var categoricalTypes = map[string]bool{
	"BOOLEAN": true, "BIT": true, "ENUM": true,
}

// baseTypeName strips precision arguments: DECIMAL(18,2) -> DECIMAL.
func baseTypeName(dbType string) string {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}

// scalarTypeOf classifies an engine type name. An empty or unknown name
// returns ok=false so the caller can infer from values.
func scalarTypeOf(dbType string) (models.ScalarType, bool) {
	t := baseTypeName(dbType)
	switch {
	case t == "":
		return "", false
	case numericTypes[t]:
		return models.ScalarNumeric, true
	case datetimeTypes[t]:
		return models.ScalarDatetime, true
	case categoricalTypes[t], strings.HasPrefix(t, "ENUM"):
		return models.ScalarCategorical, true
	case strings.Contains(t, "CHAR"), strings.Contains(t, "TEXT"), t == "VARCHAR", t == "STRING", t == "UUID", t == "UNIQUEIDENTIFIER":
		return models.ScalarText, true
	default:
		return "", false
	}
}

// inferScalarType looks at the first non-NULL value of column i.
func inferScalarType(rows []models.Row, i int) models.ScalarType {
	for _, r := range rows {
		switch r[i].(type) {
		case nil:
			continue
		case int64, float64, decimal.Decimal:
			return models.ScalarNumeric
		case time.Time:
			return models.ScalarDatetime
		case bool:
			return models.ScalarCategorical
		default:
			return models.ScalarText
		}
	}
	return models.ScalarText
}

// normalizeValue turns driver values into the small set of cell types a
// TabularResult carries: nil, bool, int64, float64, decimal.Decimal,
// string and time.Time.
func normalizeValue(v interface{}, dbType string) interface{} {
	switch x := v.(type) {
	case nil, bool, int64, float64, string, time.Time, decimal.Decimal:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
		}
		return int64(x)
	case float32:
		return float64(x)
	case *big.Int:
		if x == nil {
			return nil
		}
		return decimal.NewFromBigInt(x, 0)
	case duckdb.Decimal:
		return duckDecimal(x)
	case *duckdb.Decimal:
		if x == nil {
			return nil
		}
		return duckDecimal(*x)
	case []byte:
		return bytesValue(x, dbType)
	case [16]byte:
		return uuid.UUID(x).String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func duckDecimal(d duckdb.Decimal) interface{} {
	if d.Value == nil {
		return nil
	}
	return decimal.NewFromBigInt(d.Value, -int32(d.Scale))
}

// bytesValue handles drivers that hand back text, exact numerics and GUIDs
// as raw bytes (SQL Server does all three).
func bytesValue(b []byte, dbType string) interface{} {
	switch baseTypeName(dbType) {
	case "UNIQUEIDENTIFIER":
		var id mssql.UniqueIdentifier
		if err := id.Scan(b); err == nil {
			return id.String()
		}
	case "UUID":
		if id, err := uuid.FromBytes(b); err == nil {
			return id.String()
		}
	case "DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY":
		if d, err := decimal.NewFromString(string(b)); err == nil {
			return d
		}
	}
	return string(b)
}
