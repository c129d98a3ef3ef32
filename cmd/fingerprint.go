package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// fingerprintCmd represents the fingerprint command
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <file>",
	Short: "Print a file's acoustic fingerprint and duration",
	Long: `Fingerprint an audio file with fpcalc and print the fingerprint and
duration without contacting the identification service.

Example:
  songid fingerprint song.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runFingerprint,
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	ident := newIdentifier()

	if err := ident.SetFile(args[0]); err != nil {
		return err
	}

	details, err := ident.SongDetails(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d\n", color.CyanString("duration:"), details.DurationSeconds)
	fmt.Fprintf(out, "%s %s\n", color.CyanString("fingerprint:"), details.Fingerprint)
	return nil
}
