package boardctl

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llmboard/internal/config"
	"llmboard/internal/logging"
	"llmboard/internal/table"
)

// buildRootCmdWith constructs the Cobra command tree wired to the run* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	log := zerolog.Nop()
	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Maintenance tools for the leaderboard dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Models JSON file (defaults BOARDCTL_DATASET; read-only commands fall back to the bundled dataset)")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults BOARDCTL_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console|json")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logging.Config{Level: cfg.LogLvl, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		log = l
		return nil
	}

	var dryRun bool
	ranksCmd := &cobra.Command{
		Use:     "ranks",
		Short:   "Recompute operationalRank and safetyRank and write them back",
		Example: "  boardctl ranks --dataset data/models.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRanks(log, cfg, dryRun)
		},
	}
	ranksCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the ranks without writing the dataset")

	var csvPath string
	var cutoffDryRun bool
	cutoffsCmd := &cobra.Command{
		Use:     "cutoffs",
		Short:   "Backfill placeholder knowledge cutoffs from a CSV export",
		Example: "  boardctl cutoffs --dataset data/models.json --csv ~/Downloads/models.csv",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return fmt.Errorf("cutoffs requires --csv")
			}
			return runCutoffs(log, cfg, csvPath, cutoffDryRun)
		},
	}
	cutoffsCmd.Flags().StringVar(&csvPath, "csv", "", "CSV export with the model name in column 1 and the cutoff in column 12")
	cutoffsCmd.Flags().BoolVar(&cutoffDryRun, "dry-run", false, "Report matches without writing the dataset")

	var outDir, baseURL string
	sitemapCmd := &cobra.Command{
		Use:     "sitemap",
		Short:   "Write sitemap.xml and robots.txt",
		Example: "  boardctl sitemap --out public --base-url https://llmleaderboard.example.com",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSitemap(log, cfg, outDir, baseURL)
		},
	}
	sitemapCmd.Flags().StringVar(&outDir, "out", "public", "Output directory")
	sitemapCmd.Flags().StringVar(&baseURL, "base-url", config.DefaultBaseURL, "Public site origin")

	var strict bool
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset against its schema and report stale ranks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(log, cfg, strict)
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Fail when stored ranks differ from recomputed ones")

	var term, sortField, order string
	var limit int
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the leaderboard table",
		Example: "  boardctl list --q openai --sort inputCost --order desc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), cfg, term, sortField, order, limit)
		},
	}
	listCmd.Flags().StringVar(&term, "q", "", "Search term")
	listCmd.Flags().StringVar(&sortField, "sort", "", "Sort field (default operationalRank)")
	listCmd.Flags().StringVar(&order, "order", "", "asc or desc")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (0 = all)")
	_ = listCmd.RegisterFlagCompletionFunc("sort", completeSortField)
	_ = listCmd.RegisterFlagCompletionFunc("order", cobra.FixedCompletions([]string{"asc", "desc"}, cobra.ShellCompDirectiveNoFileComp))

	root.AddCommand(ranksCmd, cutoffsCmd, sitemapCmd, validateCmd, listCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	root.AddCommand(completionCmd)

	return root
}

func completeSortField(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, f := range table.Fields() {
		if strings.HasPrefix(string(f), toComplete) {
			out = append(out, string(f))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
