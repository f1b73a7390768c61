package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/afazeres/internal/config"
	"github.com/javiermolinar/afazeres/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  afazeres config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Output.DateFormat = promptValue(reader, out, "Date format (Go layout)", cfg.Output.DateFormat)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.Color = promptBool(reader, out, "Colored output", cfg.UI.Color)
	cfg.Server.Addr = promptValue(reader, out, "Server address", cfg.Server.Addr)
	cfg.Server.RateLimitPerMin = promptInt(reader, out, "Requests per minute per client (0 disables)", cfg.Server.RateLimitPerMin)
	cfg.Server.CacheSize = promptInt(reader, out, "Result cache size (0 disables)", cfg.Server.CacheSize)
	cfg.Log.Level = promptValue(reader, out, "Log level", cfg.Log.Level)
	cfg.Log.DebugPath = promptValue(reader, out, "Debug log path", cfg.Log.DebugPath)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[output]")
	fmt.Fprintf(out, "  date_format        = %s\n", cfg.Output.DateFormat)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme              = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  color              = %t\n", cfg.UI.Color)
	fmt.Fprintln(out, "\n[server]")
	fmt.Fprintf(out, "  addr               = %s\n", cfg.Server.Addr)
	fmt.Fprintf(out, "  mode               = %s\n", cfg.Server.Mode)
	fmt.Fprintf(out, "  rate_limit_per_min = %d\n", cfg.Server.RateLimitPerMin)
	fmt.Fprintf(out, "  cache_size         = %d\n", cfg.Server.CacheSize)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  level              = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  debug_path         = %s\n", cfg.Log.DebugPath)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	value := promptValue(reader, out, label, strconv.FormatBool(current))
	b, err := strconv.ParseBool(value)
	if err != nil {
		fmt.Fprintf(out, "  Invalid value %q, keeping %t\n", value, current)
		return current
	}
	return b
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	value := promptValue(reader, out, label, strconv.Itoa(current))
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(out, "  Invalid number %q, keeping %d\n", value, current)
		return current
	}
	return n
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
