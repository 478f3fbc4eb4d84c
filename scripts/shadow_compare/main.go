// Command shadow_compare replays read-mostly requests against the legacy
// Express backend and this API and reports response differences.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "shadow_compare",
		Short: "Compare legacy and Go API responses route by route",
		Long: `Replays every target against both backends, strips the Go response
envelope and volatile fields (ids, timestamps, tokens), and compares the rest.
Exits non-zero when a critical target differs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := loadTargets(targetsPath)
			if err != nil {
				return fmt.Errorf("failed to load targets: %w", err)
			}

			c := comparer{client: &http.Client{Timeout: timeout}, goBase: goBase, legacyBase: legacyBase}
			var (
				results  []comparison
				breaking int
				optional int
			)
			for _, tgt := range targets {
				res := c.compare(cmd.Context(), tgt)
				switch {
				case res.breaking():
					breaking++
				case res.Err != nil || !res.StatusMatch || !res.BodyMatch:
					optional++
				}
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			printReport(out, results)
			fmt.Fprintf(out, "Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
			if breaking > 0 {
				return fmt.Errorf("%d critical targets differ", breaking)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	cmd.Flags().StringVar(&legacyBase, "legacy-base", "http://localhost:5000", "Legacy API base URL")
	cmd.Flags().StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	return cmd
}
