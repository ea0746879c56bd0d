package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pricofy/image-translator/internal/backend"
	"github.com/pricofy/image-translator/internal/history"
	"github.com/pricofy/image-translator/internal/imageprep"
	"github.com/pricofy/image-translator/internal/langmeta"
	"github.com/pricofy/image-translator/internal/translator"
)

// ---------------------------------------------------------------------------
// translate
// ---------------------------------------------------------------------------

type translateArgs struct {
	to        string
	from      string
	model     string
	maxLength int
	file      string
	noHistory bool
}

func newTranslateCmd() *cobra.Command {
	var a translateArgs

	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text",
		Long: `Translate text read from the arguments, --file or stdin.

Text longer than the segment length is translated segment by segment, in
order. The first failing segment aborts the run.

Examples:
  imgtext translate --to fr "Hello world"
  imgtext translate --to de --file notes.txt
  cat notes.txt | imgtext translate --to es --model llm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args, a.file)
			if err != nil {
				return err
			}
			return runTranslate(cmd.Context(), cmd.OutOrStdout(), text, a)
		},
	}

	cmd.Flags().StringVar(&a.to, "to", "", "Target language code (required)")
	cmd.Flags().StringVar(&a.from, "from", "", "Source language code (default auto)")
	cmd.Flags().StringVar(&a.model, "model", "", "Translation model: nmt or llm (default from config)")
	cmd.Flags().IntVar(&a.maxLength, "max-length", 0, "Segment length in UTF-16 units (default from config)")
	cmd.Flags().StringVarP(&a.file, "file", "f", "", "Read text from file")
	cmd.Flags().BoolVar(&a.noHistory, "no-history", false, "Do not record in local history")
	_ = cmd.MarkFlagRequired("to")

	_ = cmd.RegisterFlagCompletionFunc("to", completeLanguages)
	_ = cmd.RegisterFlagCompletionFunc("from", completeLanguages)
	_ = cmd.RegisterFlagCompletionFunc("model", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(translator.ModelStatistical), string(translator.ModelGenerative)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// readText returns the joined args, the file contents or stdin, in that order.
func readText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runTranslate(ctx context.Context, out io.Writer, text string, a translateArgs) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	model := app.cfg.Model()
	if a.model != "" {
		if model, err = translator.ParseModel(a.model); err != nil {
			return err
		}
	}
	from := a.from
	if from == "" {
		from = app.cfg.Translation.SourceLanguage
	}

	tr, err := app.newTranslator(ctx, a.maxLength)
	if err != nil {
		return err
	}

	result, err := translateText(ctx, tr, text, from, a.to, model)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.TranslatedText)

	if !a.noHistory {
		recordTranslation(ctx, app.cfg.History.Path, history.Entry{
			InputText:      text,
			TranslatedText: result.TranslatedText,
			InputLanguage:  from,
			OutputLanguage: a.to,
			Model:          string(model),
			Segments:       result.Segments,
		})
	}
	return nil
}

// translateText runs a chunked translation and reports progress on stderr.
func translateText(ctx context.Context, tr *translator.Translator, text, from, to string, model translator.Model) (*translator.Outcome, error) {
	if !langmeta.Supported(to) {
		logWarning("target language %q is not in the known list", to)
	}

	logInfo("Translating %d characters to %s (%s)", len([]rune(text)), langmeta.Name(to), model)

	result, err := tr.Translate(ctx, translator.Input{
		Text:           text,
		TargetLanguage: to,
		SourceLanguage: from,
		Model:          model,
	})
	if err != nil {
		return nil, err
	}

	if result.DetectedLanguage != "" {
		logSuccess("Translated %d segment(s) from %s", result.Segments, langmeta.Name(result.DetectedLanguage))
	} else {
		logSuccess("Translated %d segment(s)", result.Segments)
	}
	return result, nil
}

// recordTranslation adds e to local history. Failures only warn.
func recordTranslation(ctx context.Context, path string, e history.Entry) {
	store, err := history.Open(path)
	if err != nil {
		logWarning("history not recorded: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, e); err != nil {
		logWarning("history not recorded: %v", err)
	}
}

// ---------------------------------------------------------------------------
// extract
// ---------------------------------------------------------------------------

type extractArgs struct {
	lang           string
	textType       string
	lineSeparation string
	maxDimension   int
	translateTo    string
	model          string
	noHistory      bool
}

func newExtractCmd() *cobra.Command {
	var a extractArgs

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract text from an image",
		Long: `Upload an image and print the text found in it.

Images larger than --max-dimension are scaled down before upload. With
--translate-to the extracted text is translated as well.

Examples:
  imgtext extract receipt.jpg
  imgtext extract --text-type handwritten --lang en note.png
  imgtext extract --translate-to fr menu.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), cmd.OutOrStdout(), args[0], a)
		},
	}

	cmd.Flags().StringVar(&a.lang, "lang", "auto", "Language of the text in the image")
	cmd.Flags().StringVar(&a.textType, "text-type", "auto", "Text type: auto, printed or handwritten")
	cmd.Flags().StringVar(&a.lineSeparation, "line-separation", "auto", "Line separation: auto or no")
	cmd.Flags().IntVar(&a.maxDimension, "max-dimension", 0, "Scale images down to this size (default from config)")
	cmd.Flags().StringVar(&a.translateTo, "translate-to", "", "Also translate the extracted text")
	cmd.Flags().StringVar(&a.model, "model", "", "Translation model for --translate-to")
	cmd.Flags().BoolVar(&a.noHistory, "no-history", false, "Do not record --translate-to results in local history")

	_ = cmd.RegisterFlagCompletionFunc("lang", completeLanguages)
	_ = cmd.RegisterFlagCompletionFunc("translate-to", completeLanguages)
	_ = cmd.RegisterFlagCompletionFunc("text-type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "printed", "handwritten"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExtract(ctx context.Context, out io.Writer, path string, a extractArgs) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	maxDimension := a.maxDimension
	if maxDimension <= 0 {
		maxDimension = app.cfg.Image.MaxDimension
	}

	up, err := imageprep.Prepare(path, maxDimension)
	if err != nil {
		return err
	}
	if up.Resized {
		logInfo("Scaled %s down to %dx%d", up.Filename, up.Width, up.Height)
	}
	logInfo("Uploading %s (%s)", up.Filename, humanize.Bytes(uint64(len(up.Data))))

	res, err := app.client.Extract(ctx, backend.ExtractRequest{
		Filename:       up.Filename,
		Image:          up.Data,
		InputLanguage:  a.lang,
		TextType:       a.textType,
		LineSeparation: a.lineSeparation,
	})
	if err != nil {
		return err
	}
	logSuccess("Extracted %s text (%s)", res.TextType, langmeta.Name(res.DetectedLanguage))
	fmt.Fprintln(out, res.ExtractedText)

	if a.translateTo == "" {
		return nil
	}

	model := app.cfg.Model()
	if a.model != "" {
		if model, err = translator.ParseModel(a.model); err != nil {
			return err
		}
	}
	tr, err := app.newTranslator(ctx, 0)
	if err != nil {
		return err
	}

	from := sourceLanguage(res.DetectedLanguage)
	result, err := translateText(ctx, tr, res.ExtractedText, from, a.translateTo, model)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, result.TranslatedText)

	if !a.noHistory {
		recordTranslation(ctx, app.cfg.History.Path, history.Entry{
			InputText:      res.ExtractedText,
			TranslatedText: result.TranslatedText,
			InputLanguage:  from,
			OutputLanguage: a.translateTo,
			Model:          string(model),
			Segments:       result.Segments,
		})
	}
	return nil
}

// sourceLanguage maps an extraction's detected language to a translation
// source; an unknown language is left to the translator to detect.
func sourceLanguage(detected string) string {
	detected = strings.TrimSpace(detected)
	if detected == "" || strings.EqualFold(detected, langmeta.Unknown) {
		return translator.AutoLanguage
	}
	return detected
}

func completeLanguages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, code := range langmeta.Codes() {
		if strings.HasPrefix(code, toComplete) {
			out = append(out, code+"\t"+langmeta.Name(code))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
