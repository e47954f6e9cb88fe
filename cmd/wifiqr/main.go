// Wifiqr generates Wi-Fi QR codes from network credentials.
//
// It serializes an SSID, password, authentication type and hidden-network
// flag into the standard WIFI: configuration payload, encodes it as a QR
// symbol, and renders the symbol as terminal text art, PNG bytes, or SVG
// markup on standard output.
//
// Usage:
//
//	wifiqr [SSID] [flags]
//	wifiqr [command]
//
// The SSID can also be piped on standard input. Running the wizard command
// launches an interactive credential form.
// See 'wifiqr --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/wifiqr/internal/logging"
	"github.com/muurk/wifiqr/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wifiqr [SSID]",
	Short: "Wi-Fi QR Code Generator",
	Long: `Generate QR codes that let phones join a Wi-Fi network by scanning.

The network credentials are serialized into the standard WIFI: payload
format and rendered as terminal text art, PNG, or SVG. The SSID is given
as an argument, piped on stdin, or loaded from a saved profile.`,
	Example: `  # Terminal QR code for a WPA network
  wifiqr MyNet -p pass1234

  # PNG written to a file
  wifiqr MyNet -p pass1234 -f png -o qr.png

  # SSID via pipe, open network
  echo GuestNet | wifiqr -t nopass

  # Hidden network from a saved profile
  wifiqr --profile home -p pass1234`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
	RunE:          runGenerate,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wifiqr %s (commit: %s)\n", version.Version, version.Commit)
	},
}
