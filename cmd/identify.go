package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/killallgit/songid/internal/services/acoustid"
	"github.com/killallgit/songid/internal/services/identify"
	"github.com/killallgit/songid/pkg/chromaprint"
	"github.com/killallgit/songid/pkg/config"
)

var (
	identifyClientKey string
	identifyFormat    string
)

// identifyCmd represents the identify command
var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Identify a song by its acoustic fingerprint",
	Long: `Fingerprint an audio file with fpcalc and look it up in the AcoustID
database. The raw service response is printed in the requested format.

Example:
  songid identify song.mp3
  songid identify --format xml song.mp3
  songid identify --client-key abcdef song.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)

	identifyCmd.Flags().StringVar(&identifyClientKey, "client-key", "", "AcoustID client key (overrides config)")
	identifyCmd.Flags().StringVar(&identifyFormat, "format", "", "response format: json or xml (default json)")
}

// newIdentifier builds an identifier from the loaded configuration
func newIdentifier() *identify.Identifier {
	fingerprinter := chromaprint.New(
		config.GetString("fpcalc.path"),
		config.GetDuration("fpcalc.timeout"),
	)

	client := acoustid.NewClient(acoustid.Config{
		BaseURL:           config.GetString("acoustid.base_url"),
		Timeout:           config.GetDuration("acoustid.timeout"),
		UserAgent:         config.GetString("acoustid.user_agent"),
		RequestsPerSecond: config.GetInt("acoustid.rate_limit"),
		BurstSize:         config.GetInt("acoustid.burst"),
	})

	return identify.New(fingerprinter, client)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	ident := newIdentifier()

	clientKey := identifyClientKey
	if clientKey == "" {
		clientKey = config.GetString("acoustid.client_key")
	}
	ident.SetClientKey(clientKey)

	if identifyFormat != "" {
		if err := ident.SetResponseFormat(identifyFormat); err != nil {
			return err
		}
	}

	if err := ident.SetFile(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", color.CyanString("identifying"), args[0])

	body, err := ident.Query(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}
