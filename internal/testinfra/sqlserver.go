// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

//go:build integration

package testinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/log"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/tablero/internal/config"
)

const (
	DefaultSQLServerImage = "mcr.microsoft.com/mssql/server:2022-latest"
	DefaultSQLServerPort  = "1433"

	// DefaultSAPassword satisfies SQL Server's complexity policy.
	DefaultSAPassword = "Tablero-Test-1433"
)

// SQLServerContainer is a running SQL Server instance.
type SQLServerContainer struct {
	testcontainers.Container
	Host     string
	Port     int
	Password string
}

// SQLServerOption configures the SQL Server container.
type SQLServerOption func(*sqlServerConfig)

type sqlServerConfig struct {
	image        string
	password     string
	startTimeout time.Duration
	logger       log.Logger
}

func WithSQLServerImage(image string) SQLServerOption {
	return func(c *sqlServerConfig) {
		c.image = image
	}
}

func WithSAPassword(password string) SQLServerOption {
	return func(c *sqlServerConfig) {
		c.password = password
	}
}

// WithStartTimeout bounds the wait for the ready log line.
func WithStartTimeout(timeout time.Duration) SQLServerOption {
	return func(c *sqlServerConfig) {
		c.startTimeout = timeout
	}
}

// WithContainerLogger routes testcontainers output to logger, usually a
// ContainerLogger.
func WithContainerLogger(logger log.Logger) SQLServerOption {
	return func(c *sqlServerConfig) {
		c.logger = logger
	}
}

// NewSQLServerContainer starts SQL Server and waits until it accepts
// connections.
func NewSQLServerContainer(ctx context.Context, opts ...SQLServerOption) (*SQLServerContainer, error) {
	cfg := &sqlServerConfig{
		image:        DefaultSQLServerImage,
		password:     DefaultSAPassword,
		startTimeout: 3 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultSQLServerPort + "/tcp"},
		Env: map[string]string{
			"ACCEPT_EULA":       "Y",
			"MSSQL_SA_PASSWORD": cfg.password,
			"MSSQL_PID":         "Developer",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultSQLServerPort+"/tcp"),
			wait.ForLog("SQL Server is now ready for client connections"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		Logger:           cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create sql server container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultSQLServerPort+"/tcp")
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &SQLServerContainer{
		Container: container,
		Host:      host,
		Port:      port.Int(),
		Password:  cfg.password,
	}, nil
}

// DatabaseConfig points a sqlserver engine at database name as sa.
func (c *SQLServerContainer) DatabaseConfig(name string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:          config.DriverSQLServer,
		Host:            c.Host,
		Port:            c.Port,
		Name:            name,
		User:            "sa",
		Password:        c.Password,
		Encrypt:         "disable",
		BreakerFailures: 3,
		BreakerTimeout:  time.Second,
		QueryTimeout:    30 * time.Second,
	}
}

// CreateDatabase creates an empty database through master, so its
// information_schema holds only what the test puts there.
func CreateDatabase(ctx context.Context, master *sql.DB, name string) error {
	if _, err := master.ExecContext(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	return nil
}

// adventureWorksStatements create a few rows of the three important tables
// with their AdventureWorks column types. Each statement is its own batch
// because CREATE SCHEMA must be.
var adventureWorksStatements = []string{
	`CREATE SCHEMA Sales`,
	`CREATE SCHEMA Production`,

	`CREATE TABLE Sales.SalesOrderHeader (
		SalesOrderID INT NOT NULL PRIMARY KEY,
		OrderDate    DATETIME NOT NULL,
		CustomerID   INT NOT NULL,
		TotalDue     MONEY NOT NULL
	)`,
	`INSERT INTO Sales.SalesOrderHeader (SalesOrderID, OrderDate, CustomerID, TotalDue) VALUES
		(43659, '2011-05-31', 29825, 23153.2339),
		(43660, '2011-06-30', 29672, 1457.3288),
		(43661, '2012-01-31', 29734, 36865.8012),
		(43662, '2013-03-31', 29994, 32474.9324)`,

	`CREATE TABLE Sales.Customer (
		CustomerID    INT NOT NULL PRIMARY KEY,
		PersonID      INT NULL,
		StoreID       INT NULL,
		TerritoryID   INT NULL,
		AccountNumber VARCHAR(10) NOT NULL
	)`,
	`INSERT INTO Sales.Customer (CustomerID, PersonID, StoreID, TerritoryID, AccountNumber) VALUES
		(29825, NULL, 934, 5, 'AW00029825'),
		(29672, 1045, NULL, 5, 'AW00029672'),
		(29734, NULL, 938, 6, 'AW00029734')`,

	`CREATE TABLE Production.Product (
		ProductID            INT NOT NULL PRIMARY KEY,
		Name                 NVARCHAR(50) NOT NULL,
		ListPrice            MONEY NOT NULL,
		ProductSubcategoryID INT NULL
	)`,
	`INSERT INTO Production.Product (ProductID, Name, ListPrice, ProductSubcategoryID) VALUES
		(680, N'HL Road Frame - Black, 58', 1431.50, 14),
		(706, N'HL Road Frame - Red, 58', 1431.50, 14),
		(707, N'Sport-100 Helmet, Red', 34.99, 31),
		(1, N'Adjustable Race', 0.00, NULL)`,
}

// SeedAdventureWorks creates the sample tables in db.
func SeedAdventureWorks(ctx context.Context, db *sql.DB) error {
	for _, stmt := range adventureWorksStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed adventureworks: %w", err)
		}
	}
	return nil
}
