package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muurk/wifiqr/internal/config"
	"github.com/muurk/wifiqr/internal/logging"
	"github.com/muurk/wifiqr/internal/qr"
	"github.com/muurk/wifiqr/internal/render"
	"github.com/muurk/wifiqr/internal/wifi"
	"github.com/muurk/wifiqr/internal/wizard/tui"
)

// Generation flags
var (
	password     string
	authType     string
	hidden       bool
	outputFormat string
	profileName  string
	outputPath   string
)

func init() {
	// Credential flags shared with the save command (persistent on root)
	rootCmd.PersistentFlags().StringVarP(&authType, "auth", "t", "WPA", "Authentication type (WPA, WEP, nopass)")
	rootCmd.PersistentFlags().BoolVarP(&hidden, "hidden", "H", false, "SSID is hidden (not broadcast)")

	rootCmd.Flags().StringVarP(&password, "password", "p", "", "Wi-Fi password (ignored for nopass)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "ascii", "Output format (ascii, png, svg)")
	rootCmd.Flags().StringVar(&profileName, "profile", "", "Load SSID, auth type and hidden flag from a saved profile")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")

	// Add subcommands directly to root
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(forgetCmd)
}

// runGenerate is the default command: credential -> payload -> QR -> output.
func runGenerate(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	applyPreferences(cmd)

	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	cred, err := resolveCredential(args)
	if err != nil {
		return err
	}

	// Advisory only: scanners accept the payload either way, the network
	// gear might not.
	for _, finding := range wifi.Lint(cred) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", finding)
	}

	payload, err := cred.Payload()
	if err != nil {
		return err
	}
	logging.LogPayloadBuilt(len(payload), cred.Auth.Tag(), cred.Hidden)

	code, err := qr.Encode(payload)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return render.Render(out, code, format)
}

// applyPreferences overrides the format and auth flag defaults with the
// saved registry preferences. Flags given explicitly on the command line
// always win. A broken config file downgrades to the built-in defaults
// rather than failing the generation.
func applyPreferences(cmd *cobra.Command) {
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("failed to load preferences: " + err.Error())
		return
	}
	prefs := registry.Preferences
	if prefs == nil {
		return
	}
	outputFormat = preferredValue(outputFormat, prefs.DefaultFormat, cmd.Flags().Changed("format"))
	authType = preferredValue(authType, prefs.DefaultAuth, cmd.Flags().Changed("auth"))
}

// preferredValue returns the saved preference unless the flag was set
// explicitly on the command line or no preference is saved.
func preferredValue(flagValue, preference string, flagSet bool) string {
	if flagSet || preference == "" {
		return flagValue
	}
	return preference
}

// resolveCredential assembles the credential from flags, the positional
// SSID, a saved profile, or piped stdin, in that order of precedence.
func resolveCredential(args []string) (wifi.Credential, error) {
	auth, err := wifi.ParseAuthType(authType)
	if err != nil {
		return wifi.Credential{}, err
	}

	cred := wifi.Credential{
		Password: password,
		Auth:     auth,
		Hidden:   hidden,
	}

	switch {
	case len(args) == 1:
		cred.SSID = args[0]

	case profileName != "":
		registry, err := config.LoadRegistry()
		if err != nil {
			return wifi.Credential{}, err
		}
		profile := registry.GetProfile(profileName)
		if profile == nil {
			return wifi.Credential{}, fmt.Errorf("unknown profile %q (see 'wifiqr profiles')", profileName)
		}
		profileAuth, err := wifi.ParseAuthType(profile.Auth)
		if err != nil {
			return wifi.Credential{}, fmt.Errorf("profile %q: %w", profileName, err)
		}
		cred.SSID = profile.SSID
		cred.Auth = profileAuth
		cred.Hidden = profile.Hidden

		registry.TouchProfile(profileName)
		if err := registry.Save(); err != nil {
			logging.Warn("failed to update profile timestamp: " + err.Error())
		}

	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Pipeline usage: read the SSID as a single line from stdin.
		ssid, err := readSSIDLine(os.Stdin)
		if err != nil {
			return wifi.Credential{}, err
		}
		cred.SSID = ssid

	default:
		return wifi.Credential{}, fmt.Errorf("no SSID provided (pass it as an argument, pipe it on stdin, or use --profile)")
	}

	// Open networks never carry a password in the payload.
	if !cred.Auth.RequiresPassword() {
		cred.Password = ""
	}

	return cred, nil
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch interactive credential wizard",
	Long: `Launch an interactive form for entering network credentials.

The wizard prompts for the SSID, password, authentication type and
hidden-network flag, then displays the QR code directly in the terminal.
Passwords are masked while typing and never written to disk.`,
	Example: `  wifiqr wizard`,
	RunE:    runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewAppModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// profilesCmd lists saved network profiles
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved network profiles",
	Long: `List the network profiles saved with 'wifiqr save'.

Profiles store the SSID, authentication type and hidden flag only.
Passwords are never stored and must be supplied with -p when generating.`,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	names := registry.ProfileNames()
	if len(names) == 0 {
		fmt.Println("No saved profiles.")
		fmt.Println("\nUse 'wifiqr save <name> <ssid>' to save one.")
		return nil
	}

	fmt.Printf("Saved profiles (%d):\n\n", len(names))
	for _, name := range names {
		profile := registry.GetProfile(name)
		fmt.Printf("  %s\n", name)
		fmt.Printf("    SSID:   %s\n", profile.SSID)
		fmt.Printf("    Auth:   %s\n", profile.Auth)
		if profile.Hidden {
			fmt.Printf("    Hidden: yes\n")
		}
		if !profile.LastUsed.IsZero() {
			fmt.Printf("    Last used: %s\n", profile.LastUsed.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	fmt.Println("Use 'wifiqr --profile <name> -p <password>' to generate a code")
	return nil
}

// saveCmd saves a network profile for later reuse
var saveCmd = &cobra.Command{
	Use:   "save <name> <ssid>",
	Short: "Save a network profile",
	Long: `Save a network's SSID, authentication type and hidden flag under a
profile name for later reuse with --profile.

The password is NOT saved; it is supplied with -p at generation time.`,
	Example: `  # Save a WPA network
  wifiqr save home HomeNet

  # Save a hidden WEP network
  wifiqr save attic AtticNet -t WEP -H`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	name, ssid := args[0], args[1]

	auth, err := wifi.ParseAuthType(authType)
	if err != nil {
		return err
	}
	if err := wifi.ValidateSSID(ssid); err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	registry.SetProfile(name, &config.Profile{
		SSID:   ssid,
		Auth:   auth.String(),
		Hidden: hidden,
	})
	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Saved profile %q (SSID: %s, auth: %s)\n", name, ssid, auth)
	return nil
}

// forgetCmd removes a saved network profile
var forgetCmd = &cobra.Command{
	Use:   "forget <name>",
	Short: "Delete a saved network profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runForget,
}

func runForget(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if !registry.DeleteProfile(name) {
		return fmt.Errorf("unknown profile %q (see 'wifiqr profiles')", name)
	}
	if err := registry.Save(); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted profile %q\n", name)
	return nil
}
