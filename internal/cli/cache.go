package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hydrate/internal/ports"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
	Long:  `Inspect and clean the local cache of backend responses.`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(cmd, clearCache)
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove expired cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(cmd, purgeCache)
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

func withCache(cmd *cobra.Command, fn func(context.Context, io.Writer, ports.ResponseCache) error) error {
	ctx := cmd.Context()
	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	return fn(ctx, cmd.OutOrStdout(), app.Cache)
}

func clearCache(ctx context.Context, w io.Writer, cache ports.ResponseCache) error {
	n, err := cache.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Fprintf(w, "Removed %d cached responses\n", n)
	return nil
}

func purgeCache(ctx context.Context, w io.Writer, cache ports.ResponseCache) error {
	n, err := cache.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	fmt.Fprintf(w, "Purged %d expired responses\n", n)
	return nil
}
