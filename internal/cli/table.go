package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtiwari1/tableloader/internal/table"
	pb "github.com/mtiwari1/tableloader/proto"
)

func (a *app) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Manage tables and load data into them",
	}
	cmd.AddCommand(a.loadCmd())
	cmd.AddCommand(a.createCmd())
	cmd.AddCommand(a.getCmd())
	cmd.AddCommand(a.listCmd())
	cmd.AddCommand(a.deleteCmd())
	return cmd
}

type loadOutput struct {
	File        string `json:"file"`
	DataTokenID string `json:"data_token_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (a *app) loadCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "load <table> <file>...",
		Short: "Load local .parquet or .csv files into a table",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			tableName, files := args[0], args[1:]

			ctx, conn, cleanup, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(files) == 1 {
				resp, err := table.Load(ctx, tableName, files[0], conn)
				if err != nil {
					return fmt.Errorf("load %s into %s: %w", files[0], tableName, err)
				}
				a.logger.Info("file loaded",
					slog.String("table", tableName),
					slog.String("file", files[0]),
					slog.String("data_token_id", resp.DataTokenId),
				)
				return printJSON(c.OutOrStdout(), loadOutput{File: files[0], DataTokenID: resp.DataTokenId})
			}

			if !c.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			results := table.LoadAll(ctx, tableName, files, conn, workers, a.logger)

			out := make([]loadOutput, 0, len(results))
			failed := 0
			for _, res := range results {
				o := loadOutput{File: res.FilePath, DataTokenID: res.DataTokenID}
				if res.Err != nil {
					o.Error = res.Err.Error()
					failed++
				}
				out = append(out, o)
			}
			if err := printJSON(c.OutOrStdout(), out); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to load", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent loads when several files are given (default from config)")
	return cmd
}

func (a *app) createCmd() *cobra.Command {
	var timeColumn, entityKeyColumn, subsortColumn, groupingID string

	cmd := &cobra.Command{
		Use:   "create <table>",
		Short: "Create a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx, conn, cleanup, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t := &pb.Table{
				TableName:           args[0],
				TimeColumnName:      timeColumn,
				EntityKeyColumnName: entityKeyColumn,
				GroupingId:          groupingID,
			}
			if subsortColumn != "" {
				t.SubsortColumnName = &subsortColumn
			}

			created, err := table.CreateTable(ctx, t, conn)
			if err != nil {
				return fmt.Errorf("create table %s: %w", args[0], err)
			}
			return printJSON(c.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVar(&timeColumn, "time-column", "", "Column holding the event time")
	cmd.Flags().StringVar(&entityKeyColumn, "entity-key-column", "", "Column holding the entity key")
	cmd.Flags().StringVar(&subsortColumn, "subsort-column", "", "(Optional) Column used to order events with equal times")
	cmd.Flags().StringVar(&groupingID, "grouping-id", "", "(Optional) Grouping shared by tables with the same entity type")
	for _, name := range []string{"time-column", "entity-key-column"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required: %w", name, err))
		}
	}
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <table>",
		Short: "Show a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx, conn, cleanup, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := table.GetTable(ctx, args[0], conn)
			if err != nil {
				return fmt.Errorf("get table %s: %w", args[0], err)
			}
			return printJSON(c.OutOrStdout(), t)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var search, pageToken string
	var pageSize int32
	var allDetails bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tables",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, conn, cleanup, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			tables, next, err := table.ListTables(ctx, search, pageSize, pageToken, conn)
			if err != nil {
				return fmt.Errorf("list tables: %w", err)
			}
			if next != "" {
				a.logger.Info("more tables available", slog.String("next_page_token", next))
			}

			if allDetails {
				return printJSON(c.OutOrStdout(), tables)
			}
			names := make([]string, len(tables))
			for i, t := range tables {
				names[i] = t.TableName
			}
			if len(names) > 0 {
				fmt.Fprintln(c.OutOrStdout(), strings.Join(names, "\n"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "(Optional) Search string")
	cmd.Flags().Int32VarP(&pageSize, "page-size", "p", 10, "(Optional) Page size")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "(Optional) Token from a previous list")
	cmd.Flags().BoolVarP(&allDetails, "all-details", "a", false, "(Optional) Print all details for each table")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <table>",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx, conn, cleanup, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := table.DeleteTable(ctx, args[0], force, conn); err != nil {
				return fmt.Errorf("delete table %s: %w", args[0], err)
			}
			fmt.Fprintf(c.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if other resources depend on the table")
	return cmd
}
