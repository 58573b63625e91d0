package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/internal/codegen"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

type generateOptions struct {
	schema string
	output string
	pkg    string
	header string
	watch  bool
	dryRun bool
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "colgen",
		Short:        "Generate columnar tables from a YAML schema",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newGenerateCmd(ro))
	cmd.AddCommand(newValidateCmd(ro))
	return cmd
}

func (ro *rootOptions) logger(cmd *cobra.Command) *colstore.Logger {
	level := slog.LevelInfo
	if ro.verbose {
		level = slog.LevelDebug
	}
	return colstore.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func newGenerateCmd(ro *rootOptions) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one <name>_table.go per table in the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := ro.logger(cmd)
			if err := runGenerate(cmd, o, logger); err != nil {
				return err
			}
			if !o.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchSchema(ctx, o.schema, logger, func() error {
				return runGenerate(cmd, o, logger)
			})
		},
	}

	cmd.Flags().StringVarP(&o.schema, "file", "f", "schema.yaml", "Schema file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output directory (default: directory of the schema file)")
	cmd.Flags().StringVarP(&o.pkg, "package", "p", "", "Override the package name of the schema file")
	cmd.Flags().StringVar(&o.header, "header", "", "Header comment of generated files")
	cmd.Flags().BoolVarP(&o.watch, "watch", "w", false, "Regenerate whenever the schema file changes")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Print the generated code instead of writing files")
	return cmd
}

func runGenerate(cmd *cobra.Command, o *generateOptions, logger *colstore.Logger) error {
	f, err := codegen.ParseFile(o.schema)
	if err != nil {
		return err
	}

	target := o.output
	if target == "" {
		target = filepath.Dir(o.schema)
	}

	g, err := codegen.NewGraph(&codegen.Config{
		Target:  target,
		Package: o.pkg,
		Header:  o.header,
	}, f)
	if err != nil {
		return err
	}

	if o.dryRun {
		for _, n := range g.Nodes {
			for _, tmpl := range codegen.TypeTemplates {
				src, err := codegen.Render(tmpl.Name, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", tmpl.Format(n), src)
			}
		}
		return nil
	}

	if err := g.Gen(); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		logger.Debug("generated table",
			"table", n.TableName(),
			"columns", len(n.Columns),
		)
	}
	logger.Info("generation complete",
		"schema", o.schema,
		"target", target,
		"files", len(g.Written),
	)
	return nil
}

func newValidateCmd(ro *rootOptions) *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a schema file without generating code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := codegen.ParseFile(schema)
			if err != nil {
				return err
			}
			logger := ro.logger(cmd)
			for _, t := range f.Tables {
				logger.Debug("table ok", "table", t.Name, "columns", len(t.Columns))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: package %s, %d tables ok\n", schema, f.Package, len(f.Tables))
			return nil
		},
	}
	cmd.Flags().StringVarP(&schema, "file", "f", "schema.yaml", "Schema file")
	return cmd
}
