package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pricofy/image-translator/internal/history"
	"github.com/pricofy/image-translator/internal/langmeta"
)

// ---------------------------------------------------------------------------
// history
// ---------------------------------------------------------------------------

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show extraction and translation history",
		Long: `Show history.

  extract     Images uploaded by the logged-in user (server)
  translate   Translations made by the logged-in user (server)
  local       Translations made from this machine`,
	}

	cmd.AddCommand(newHistoryExtractCmd(), newHistoryTranslateCmd(), newHistoryLocalCmd())
	return cmd
}

func newHistoryExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "List extraction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			entries, err := app.client.ExtractHistory(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				logInfo("No extractions yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tTYPE\tLANGUAGE\tTEXT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.TextType, langmeta.Name(e.Language), preview(e.ExtractedText))
			}
			return w.Flush()
		},
	}
}

func newHistoryTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "List translation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			entries, err := app.client.TranslateHistory(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				logInfo("No translations yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIMESTAMP\tFROM\tTO\tTEXT\tTRANSLATION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Timestamp, e.InputLanguage, e.OutputLanguage,
					preview(e.InputText), preview(e.TranslatedText))
			}
			return w.Flush()
		},
	}
}

func newHistoryLocalCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "local",
		Short: "List translations made from this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			store, err := history.Open(app.cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				logInfo("No local translations yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tMODEL\tSEGMENTS\tTO\tTEXT\tTRANSLATION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", humanize.Time(e.CreatedAt), e.Model, e.Segments,
					e.OutputLanguage, preview(e.InputText), preview(e.TranslatedText))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultLimit, "Number of entries")
	return cmd
}

// preview shortens text to one line of at most 40 characters.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= 40 {
		return text
	}
	return string(r[:39]) + "…"
}

// ---------------------------------------------------------------------------
// image
// ---------------------------------------------------------------------------

func newImageCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "image <timestamp>",
		Short: "Download a stored image",
		Long: `Download an image from extraction history.

The timestamp is the one shown by "imgtext history extract".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			img, err := app.client.Image(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = imageFileName(args[0], img.Extension())
			}
			if err := os.WriteFile(path, img.Data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logSuccess("Saved %s (%s)", path, humanize.Bytes(uint64(len(img.Data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default image-<timestamp> with the stored format's extension)")
	return cmd
}

// imageFileName turns a history timestamp into a safe default file name.
func imageFileName(timestamp, ext string) string {
	return "image-" + strings.NewReplacer(" ", "_", ":", "-", "/", "-").Replace(timestamp) + ext
}

// ---------------------------------------------------------------------------
// languages
// ---------------------------------------------------------------------------

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, code := range langmeta.Codes() {
				fmt.Fprintf(w, "%s\t%s\n", code, langmeta.Name(code))
			}
			w.Flush()
		},
	}
}
