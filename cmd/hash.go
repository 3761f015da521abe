// Package cmd — hash command.
// This is the main command that orchestrates the pipeline:
// fetch → normalize → digest → format.
//
// It handles flag validation, config merging, and result output.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/sitehash/config"
	"github.com/gaurav-prasanna/sitehash/core/digest"
	"github.com/gaurav-prasanna/sitehash/core/fetch"
	"github.com/gaurav-prasanna/sitehash/core/hasher"
	"github.com/gaurav-prasanna/sitehash/core/output"
	"github.com/gaurav-prasanna/sitehash/core/render"
	"github.com/gaurav-prasanna/sitehash/urlutil"
)

// Flag variables.
var (
	flagAlgorithm    string
	flagJSON         bool
	flagShowContent  bool
	flagShowRedirect bool
	flagTimeout      time.Duration
	flagRetries      int
)

var hashCmd = &cobra.Command{
	Use:   "hash <url>...",
	Short: "Fetch URLs and hash their visible content",
	Long: `Hash fetches each URL, normalizes the response according to its content
type (rendered visible text for HTML, canonical form for JSON, UTF-8 for
plain text, raw bytes otherwise), and prints a deterministic digest.

URLs without a scheme default to https.

Examples:
  sitehash hash example.com
  sitehash hash https://example.com/api.json --hash-algorithm sha512
  sitehash hash example.com other.org --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVarP(&flagAlgorithm, "hash-algorithm", "a", "sha256", "Hash algorithm to use")
	hashCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Output the results as JSON")
	hashCmd.Flags().BoolVarP(&flagShowContent, "show-content", "c", false, "Output the content after processing")
	hashCmd.Flags().BoolVarP(&flagShowRedirect, "show-redirect", "r", false, "Output whether the URL was redirected")
	hashCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-attempt fetch timeout (default from config, 5s)")
	hashCmd.Flags().IntVar(&flagRetries, "retries", -1, "Fetch retry budget (default from config, 3)")
}

func runHash(cmd *cobra.Command, args []string) error {
	if flagJSON && (flagShowContent || flagShowRedirect) {
		return fmt.Errorf("--json cannot be combined with --show-content or --show-redirect")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	algorithm := cfg.Hasher.Algorithm
	if cmd.Flags().Changed("hash-algorithm") {
		algorithm = flagAlgorithm
	}
	algorithm = strings.ToLower(algorithm)
	if !digest.Supported(algorithm) {
		return fmt.Errorf("invalid algorithm %q, must be one of: %s",
			algorithm, strings.Join(digest.Available(), ", "))
	}

	fetcher := fetch.New()
	fetcher.Timeout = cfg.Timeout()
	fetcher.Retries = cfg.Hasher.Retries
	if cmd.Flags().Changed("timeout") {
		fetcher.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("retries") {
		fetcher.Retries = flagRetries
	}

	h, err := hasher.New(algorithm,
		hasher.WithFetcher(fetcher),
		hasher.WithRenderSession(render.NewSession(cfg.BrowserFlags())),
	)
	if err != nil {
		return err
	}
	defer h.Close()

	ctx := context.Background()
	var jsonResults []output.JSONResult

	for _, rawURL := range args {
		target, err := urlutil.Normalize(rawURL)
		if err != nil {
			return err
		}

		result, err := h.HashURL(ctx, target)
		if err != nil {
			return err
		}

		if flagJSON {
			jsonResults = append(jsonResults, output.NewJSONResult(rawURL, result))
			continue
		}
		output.WriteHuman(os.Stdout, rawURL, result, output.Options{
			Algorithm:    algorithm,
			ShowContent:  flagShowContent,
			ShowRedirect: flagShowRedirect,
		})
	}

	if flagJSON {
		return output.WriteJSON(os.Stdout, jsonResults)
	}
	return nil
}
