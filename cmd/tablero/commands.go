// Tablero - Database Table Explorer and Chart Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablero

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tablero/internal/dashboard"
	"github.com/tomtom215/tablero/internal/export"
	"github.com/tomtom215/tablero/internal/logging"
	"github.com/tomtom215/tablero/internal/questions"
	"github.com/tomtom215/tablero/internal/render"
)

// connectFunc opens a dashboard service and returns its cleanup.
type connectFunc func(ctx context.Context) (*dashboard.Service, func(), error)

type cli struct {
	out      io.Writer
	connect  connectFunc
	pretty   bool
	logLevel string
}

func newRootCmd(out io.Writer, connect connectFunc) *cobra.Command {
	c := &cli{out: out, connect: connect}

	root := &cobra.Command{
		Use:          "tablero",
		Short:        "Explore database tables and chart them",
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{Level: c.logLevel, Format: "console", Output: os.Stderr})
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&c.pretty, "pretty", false, "Pretty-print JSON output")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Log level on stderr")

	root.AddCommand(
		c.tablesCmd(),
		c.kindsCmd(),
		c.questionsCmd(),
		c.previewCmd(),
		c.exportCmd(),
		c.chartCmd(),
		c.askCmd(),
		c.dashboardCmd(),
	)
	return root
}

func (c *cli) print(v interface{}) error {
	var (
		b   []byte
		err error
	)
	if c.pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(b))
	return err
}

// withService runs fn against a connected service.
func (c *cli) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *dashboard.Service) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, cleanup, err := c.connect(ctx)
	if err != nil {
		return errors.New(dashboard.ErrorText(err))
	}
	defer cleanup()
	return fn(ctx, svc)
}

func (c *cli) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the base tables as schema.table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd, func(ctx context.Context, svc *dashboard.Service) error {
				refs, err := svc.Tables(ctx)
				if err != nil {
					return errors.New(dashboard.ErrorText(err))
				}
				names := make([]string, len(refs))
				for i, t := range refs {
					names[i] = t.String()
				}
				return c.print(names)
			})
		},
	}
}

func (c *cli) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the chart kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.print(dashboard.KindOptions())
		},
	}
}

func (c *cli) questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the important tables and their questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type entry struct {
				Table     string   `json:"table"`
				Questions []string `json:"questions"`
			}
			var out []entry
			for _, it := range questions.Catalog() {
				qs := make([]string, len(it.Questions))
				for i, q := range it.Questions {
					qs[i] = q.Text
				}
				out = append(out, entry{Table: it.Table.String(), Questions: qs})
			}
			return c.print(out)
		},
	}
}

func (c *cli) previewCmd() *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "preview <schema.table>",
		Short: "Print the first rows of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd, func(ctx context.Context, svc *dashboard.Service) error {
				res, err := svc.Preview(ctx, args[0], rows)
				if err != nil {
					return errors.New(dashboard.ErrorText(err))
				}
				return c.print(res)
			})
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Rows to read (default from configuration)")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var (
		rows   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <schema.table>",
		Short: "Write the first rows of a table to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = args[0] + ".xlsx"
			}
			return c.withService(cmd, func(ctx context.Context, svc *dashboard.Service) error {
				res, err := svc.Preview(ctx, args[0], rows)
				if err != nil {
					return errors.New(dashboard.ErrorText(err))
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := export.WriteXLSX(f, args[0], res); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				return c.print(map[string]interface{}{"file": output, "rows": res.NumRows()})
			})
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Rows to export (default from configuration)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Workbook path (default <schema.table>.xlsx)")
	return cmd
}

func (c *cli) chartCmd() *cobra.Command {
	var (
		kind string
		rows int
	)
	cmd := &cobra.Command{
		Use:   "chart <schema.table>",
		Short: "Map a table sample onto a chart kind and print the figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd, func(ctx context.Context, svc *dashboard.Service) error {
				sample, cv, err := svc.Chart(ctx, args[0], kind, rows)
				if err != nil {
					return errors.New(dashboard.ErrorText(err))
				}
				if cv.Warning != nil {
					return errors.New(cv.Warning.Message)
				}
				return c.print(map[string]interface{}{
					"title":  dashboard.Title(kind, args[0]),
					"rows":   sample.NumRows(),
					"spec":   cv.Spec,
					"figure": cv.Figure,
				})
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "bar", "Chart kind id or Spanish label")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Sample rows (default from configuration)")
	return cmd
}

func (c *cli) askCmd() *cobra.Command {
	var table, question string
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer a canned question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withService(cmd, func(ctx context.Context, svc *dashboard.Service) error {
				ans, err := svc.Ask(ctx, table, question)
				if errors.Is(err, questions.ErrNotImplemented) {
					return errors.New("Esta pregunta todavía no tiene un análisis implementado.")
				}
				if err != nil {
					return errors.New(dashboard.ErrorText(err))
				}
				out := map[string]interface{}{
					"table":    ans.Table.String(),
					"question": ans.Question,
					"sql":      ans.SQL,
					"result":   ans.Result,
				}
				if ans.Chart != nil {
					if fig, err := render.NewFigure(*ans.Chart, ans.Result); err == nil {
						out["figure"] = fig
					}
				}
				return c.print(out)
			})
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", questions.DefaultTable().String(), "Important table")
	cmd.Flags().StringVarP(&question, "question", "q", "", "Question text")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func (c *cli) dashboardCmd() *cobra.Command {
	var sel dashboard.Selection
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Run one full dashboard interaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			svc, cleanup, err := c.connect(ctx)
			if err != nil {
				// The page shows the connection error; so does the view.
				logging.Warn().Err(err).Msg("Running dashboard without an engine")
				return c.print(dashboard.NewService(nil, dashboard.Options{}).Run(ctx, sel))
			}
			defer cleanup()
			return c.print(svc.Run(ctx, sel))
		},
	}
	cmd.Flags().StringVarP(&sel.Table, "table", "t", "", "Selected table")
	cmd.Flags().StringVarP(&sel.Chart, "chart", "k", "bar", "Chart kind id or Spanish label")
	cmd.Flags().IntVarP(&sel.Rows, "rows", "n", 0, "Sample rows")
	cmd.Flags().StringVar(&sel.Important, "important", "", "Important table")
	cmd.Flags().StringVarP(&sel.Question, "question", "q", "", "Canned question")
	return cmd
}
