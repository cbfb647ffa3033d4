// Command checkctl drives the checking engine from the command line,
// without the HTTP layer: open a .docx, run a batch check over every
// paragraph, and inspect or clear the on-disk result cache.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/writingtool-org/checkengine/internal/config"
	"github.com/writingtool-org/checkengine/internal/hostadapter"
	"github.com/writingtool-org/checkengine/internal/persistence"
	"github.com/writingtool-org/checkengine/internal/service"
	"github.com/writingtool-org/checkengine/internal/thesaurus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "checkctl",
		Short: "Inspect and drive the checking engine outside the HTTP API",
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newCacheCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "check <file.docx>",
		Short: "Run a batch check over every paragraph of a .docx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var profile *config.Profile
			if profilePath != "" {
				p, err := config.LoadProfile(profilePath)
				if err != nil {
					return fmt.Errorf("load profile: %w", err)
				}
				profile = p
			}

			host, err := hostadapter.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}

			svc := service.New(thesaurus.NewInMemory(nil), slog.Default())
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			info, err := svc.OpenDocument(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("register document: %w", err)
			}

			out := termenv.NewOutput(os.Stdout)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d paragraphs)\n", out.String(info.Title).Bold(), info.ParagraphCount)

			flat, err := host.FlatParagraphs(cmd.Context())
			if err != nil {
				return fmt.Errorf("read paragraphs: %w", err)
			}

			total := 0
			for i, p := range flat.Paragraphs {
				if p.Text == "" {
					continue
				}
				result, err := svc.Check(cmd.Context(), info.ID, service.CheckRequest{
					Text:   p.Text,
					Locale: p.Locale.String(),
				})
				if err != nil {
					return fmt.Errorf("check paragraph %d: %w", i, err)
				}
				for _, e := range result.Errors {
					if profile != nil && profile.RuleDisabled(e.RuleID, p.Locale.String()) {
						continue
					}
					total++
					marker := out.String(e.RuleID).Foreground(termenv.ANSIYellow)
					fmt.Fprintf(cmd.OutOrStdout(), "  para %d: [%s] %s\n", i, marker, e.ShortComment)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d finding(s)\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "path to a rule profile YAML file")
	return cmd
}

func newCacheCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the persisted result cache",
	}

	showCmd := &cobra.Command{
		Use:   "show <doc-id> <fingerprint>",
		Short: "Print whether a cached snapshot exists for a document and fingerprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			persister, err := persistence.OpenSQLitePersister(dbPath, nil)
			if err != nil {
				return err
			}
			defer persister.Close()

			blob, ok := persister.Load(cmd.Context(), args[0], args[1])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no cached snapshot (missing or stale)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cached snapshot: %d ignore rule(s), %d cache kind(s)\n",
				len(blob.IgnoreRules), len(blob.Caches))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear <doc-id>",
		Short: "Delete a document's persisted cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persister, err := persistence.OpenSQLitePersister(dbPath, nil)
			if err != nil {
				return err
			}
			defer persister.Close()
			return persister.Delete(cmd.Context(), args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "checkengine-cache.db", "path to the cache database")
	cmd.AddCommand(showCmd, clearCmd)
	return cmd
}
