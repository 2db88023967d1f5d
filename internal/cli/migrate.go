package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hydrate/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run migrations on the response cache database.

Without a subcommand, applies all pending migrations.

Examples:
  hydrate migrate          # Run all pending migrations
  hydrate migrate status   # Show current and pending versions
  hydrate migrate down 0   # Roll back every migration`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, migrateUp)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, migrateStatus)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down <version>",
	Short: "Roll back to a version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		return withDB(cmd, func(ctx context.Context, w io.Writer, db *sql.DB) error {
			return migrateDown(ctx, w, db, target)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

// withDB opens the cache database without applying migrations.
func withDB(cmd *cobra.Command, fn func(context.Context, io.Writer, *sql.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(cmd.Context(), cmd.OutOrStdout(), db)
}

func migrateUp(ctx context.Context, w io.Writer, db *sql.DB) error {
	applied, err := migrate.Up(ctx, db)
	if err != nil {
		return err
	}
	if applied == 0 {
		fmt.Fprintln(w, "No migrations to run")
		return nil
	}
	st, err := migrate.GetStatus(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Migrated to version %d (%d migrations applied)\n", st.Current, applied)
	return nil
}

func migrateStatus(ctx context.Context, w io.Writer, db *sql.DB) error {
	st, err := migrate.GetStatus(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Current version: %d\n", st.Current)
	fmt.Fprintf(w, "Latest version:  %d\n", st.Latest)
	if st.Dirty {
		fmt.Fprintln(w, "State: dirty, manual intervention required")
	}
	if len(st.Pending) == 0 {
		fmt.Fprintln(w, "Up to date")
		return nil
	}
	fmt.Fprintln(w, "Pending:")
	for _, m := range st.Pending {
		fmt.Fprintf(w, "  %03d_%s\n", m.Version, m.Name)
	}
	return nil
}

func migrateDown(ctx context.Context, w io.Writer, db *sql.DB, target int) error {
	if err := migrate.DownTo(ctx, db, target); err != nil {
		return err
	}
	fmt.Fprintf(w, "Migrated to version %d\n", target)
	return nil
}
