// imgtext is the command-line client for the image-to-text translation service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pricofy/image-translator/internal/backend"
	"github.com/pricofy/image-translator/internal/config"
	"github.com/pricofy/image-translator/internal/router"
	"github.com/pricofy/image-translator/internal/session"
	"github.com/pricofy/image-translator/internal/translator"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// Global flags
var (
	configPath string
	apiBase    string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imgtext",
		Short: "Extract and translate text from images",
		Long: `imgtext extracts text from images and translates it.

Long texts are split into segments that are translated one at a time and
joined back in order.

Commands:
  translate   Translate text
  extract     Extract text from an image (optionally translate it)
  signup      Create an account
  login       Log in and store the session
  logout      Log out and forget the session
  status      Show login status
  history     Show extraction and translation history
  image       Download a stored image
  languages   List supported languages`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.DefaultFileName+")")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "Service base URL (overrides config)")

	root.AddCommand(
		newTranslateCmd(),
		newExtractCmd(),
		newSignupCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newImageCmd(),
		newLanguagesCmd(),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// app bundles what every command needs.
type app struct {
	cfg         *config.Config
	client      *backend.Client
	sessionPath string
}

// loadApp reads config and the stored session. The client carries the
// session token when one exists.
func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiBase != "" {
		cfg.API.BaseURL = apiBase
	}

	path, err := session.Path()
	if err != nil {
		return nil, err
	}
	s, err := session.Load(path)
	if err != nil {
		logWarning("ignoring session: %v", err)
		s = nil
	}

	opts := backend.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.Translation.RequestTimeout}
	if s != nil {
		opts.Token = s.Token
	}

	return &app{cfg: cfg, client: backend.New(opts), sessionPath: path}, nil
}

// newTranslator builds a chunked translator over the configured endpoint.
func (a *app) newTranslator(ctx context.Context, maxLength int) (*translator.Translator, error) {
	opts := a.cfg.TranslatorOptions()
	if maxLength > 0 {
		opts.MaxSegmentLength = maxLength
	}

	var endpoint translator.Endpoint = a.client
	if a.cfg.API.Endpoint == config.EndpointLambda {
		r, err := router.New(ctx, a.cfg.Lambda.FunctionPrefix, a.cfg.Lambda.Environment)
		if err != nil {
			return nil, err
		}
		endpoint = r
	}
	return translator.New(endpoint, opts), nil
}
