package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/amaranand360/enterprise-search/config"
	"github.com/amaranand360/enterprise-search/internal/catalog"
	"github.com/amaranand360/enterprise-search/internal/query"
	srv "github.com/amaranand360/enterprise-search/internal/server"
)

func main() {
	var root = &cobra.Command{Use: "searchd"}

	root.AddCommand(serveCMD(), migrateCMD(), parseCMD(), suggestCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			return srv.Run(cfg)
		},
	}
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return serve
}

func migrateCMD() *cobra.Command {
	var migDir string
	var direction string
	var steps int
	var cfgPath string

	var migrate = &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			dsn := cfg.Databases.Postgres.DSN()
			if dsn == "" {
				return fmt.Errorf("postgres not configured (databases.postgres.host/dbname or url)")
			}
			return srv.Migrate(migDir, dsn, direction, steps)
		},
	}
	migrate.Flags().StringVar(&migDir, "dir", "file://migrations", "migrations source (file://migrations)")
	migrate.Flags().StringVar(&direction, "direction", "up", "up or down")
	migrate.Flags().IntVar(&steps, "steps", 0, "number of steps (0 = all)")
	migrate.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return migrate
}

func parseCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse a query and print the structured result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			for i, a := range args {
				if i > 0 {
					raw += " "
				}
				raw += a
			}
			parsed := query.Parse(raw, catalog.Default())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parsed)
		},
	}
}

func suggestCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [query]",
		Short: "Print query suggestions for a partial query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			for i, a := range args {
				if i > 0 {
					raw += " "
				}
				raw += a
			}
			for _, s := range query.Suggestions(raw, catalog.Default()) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
