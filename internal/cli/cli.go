package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stringskit/internal/audit"
	"stringskit/internal/checker"
	"stringskit/internal/cleaner"
	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/report"
	"stringskit/internal/stats"
	"stringskit/internal/stringsfile"
	"stringskit/internal/syncer"
	"stringskit/internal/textutil"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagBaseDir string
	flagConfig  string
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:           "stringskit",
		Short:         "Manage Apple .strings localization resources",
		Long:          "Checks, synchronizes, cleans, and audits .strings localization files against an English master locale.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "dir", "", "Base directory containing the <locale>.lproj folders")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file overriding the built-in tables")

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(cleanCmd())
	rootCmd.AddCommand(auditCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagBaseDir != "" {
		cfg.BaseDir = flagBaseDir
	}
	return cfg, nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report missing, extra, duplicate, and possibly untranslated keys (read-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Append master keys missing from each target locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			create, _ := cmd.Flags().GetBool("create")
			return runSync(create)
		},
	}
	cmd.Flags().Bool("create", false, "Seed a full resource file for locales missing one")
	return cmd
}

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove duplicate keys, or explicitly listed unused keys, from every locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unused, _ := cmd.Flags().GetString("unused")
			return runClean(unused)
		},
	}
	cmd.Flags().String("unused", "", "Comma-separated keys to remove instead of deduplicating")
	return cmd
}

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <source-dir>",
		Short: "Scan UI source files for hardcoded strings (read-only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return runAudit(args[0], output)
		},
	}
	cmd.Flags().String("output", "", "Write a JSON findings report to this path")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Report per-locale key and word counts (read-only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

// runCheck handles the `check` command. Non-zero exit on any inconsistency.
func runCheck() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := checker.CheckAll(cfg)
	if err != nil {
		return fmt.Errorf("check locales: %w", err)
	}

	logReport(res.Master)
	for _, r := range res.Locales {
		logReport(r)
	}

	for _, code := range res.UnlistedLocales {
		log.Warn().Str("locale", code).Msg("Locale directory on disk is not in the configuration")
	}
	if !res.UniformKeyCount {
		log.Warn().Msg("Key counts differ across locales")
	}

	if !res.OK() {
		return fmt.Errorf("localization files are inconsistent")
	}
	log.Info().Msg("All localization files are consistent")
	return nil
}

func logReport(r *checker.Report) {
	if r.NotFound {
		log.Error().Str("locale", r.Locale).Str("path", r.Path).Msg("Resource file not found")
		return
	}

	ev := log.Info()
	if !r.Consistent() {
		ev = log.Warn()
	}
	ev.Str("locale", r.Locale).
		Int("keys", r.KeyCount).
		Int("missing", len(r.Missing)).
		Int("extra", len(r.Extra)).
		Int("duplicates", len(r.Duplicates)).
		Msg("Checked locale")

	for _, key := range r.Missing {
		log.Warn().Str("locale", r.Locale).Str("key", key).Msg("Missing key")
	}
	for _, key := range r.Extra {
		log.Warn().Str("locale", r.Locale).Str("key", key).Msg("Extra key not in master")
	}
	for key, lines := range r.Duplicates {
		log.Warn().Str("locale", r.Locale).Str("key", key).Ints("lines", lines).Msg("Duplicate key")
	}
	for _, m := range r.Malformed {
		log.Warn().Str("locale", r.Locale).Int("line", m.Line).Str("text", textutil.Truncate(m.Text, 50)).Msg("Invalid entry format")
	}
	for _, u := range r.Untranslated {
		log.Warn().Str("locale", r.Locale).Str("key", u.Key).Str("value", textutil.Truncate(u.Value, 50)).Msg("Possibly untranslated content")
	}
}

// runSync handles the `sync` command.
func runSync(create bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results, err := syncer.Sync(cfg, create)
	if err != nil {
		return fmt.Errorf("sync locales: %w", err)
	}

	added := 0
	for _, r := range results {
		added += r.Added
	}
	log.Info().Int("locales", len(results)).Int("added", added).Msg("Synchronization complete")
	return nil
}

// runClean handles the `clean` command.
func runClean(unused string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var results []cleaner.LocaleResult
	if unused != "" {
		var keys []string
		for _, k := range strings.Split(unused, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		results, err = cleaner.RemoveUnused(cfg, keys)
	} else {
		results, err = cleaner.RemoveDuplicates(cfg)
	}
	if err != nil {
		return fmt.Errorf("clean locales: %w", err)
	}

	removed := 0
	for _, r := range results {
		removed += r.Removed
	}
	log.Info().Int("locales", len(results)).Int("removed", removed).Msg("Clean complete")
	return nil
}

// runAudit handles the `audit` command.
func runAudit(sourceDir, output string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	auditor, err := audit.New(cfg)
	if err != nil {
		return err
	}

	findings, err := auditor.Scan(ctx, sourceDir)
	if err != nil {
		return fmt.Errorf("scan sources: %w", err)
	}

	master, err := stringsfile.ParseFile(locales.Path(cfg, cfg.MasterLocale))
	if err != nil {
		return fmt.Errorf("parse master locale: %w", err)
	}

	rep := report.Build(cfg, findings, master)

	for _, f := range rep.Findings {
		log.Warn().
			Str("file", f.File).
			Int("line", f.Line).
			Str("kind", f.Kind).
			Str("literal", textutil.Truncate(f.Literal, 60)).
			Msg("Hardcoded string")
	}
	log.Info().
		Int("findings", rep.TotalFindings).
		Int("unique", rep.UniqueLiterals).
		Int("files", rep.FilesAffected).
		Msg("Audit complete")

	if output != "" {
		if err := rep.WriteJSON(output); err != nil {
			return err
		}
	}
	return nil
}

// runStats handles the `stats` command.
func runStats() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	all, err := stats.Collect(cfg)
	if err != nil {
		return fmt.Errorf("collect stats: %w", err)
	}

	for _, s := range all {
		if s.NotFound {
			log.Warn().Str("locale", s.Locale).Msg("Resource file not found")
			continue
		}
		log.Info().
			Str("locale", s.Locale).
			Int("keys", s.Keys).
			Int("words", s.Words).
			Int("fallbacks", s.Fallbacks).
			Msg("Locale stats")
	}
	return nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
