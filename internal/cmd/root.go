// Package cmd provides the command-line interface for Spiderman.
// It handles command parsing, configuration loading, and crawl execution.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vrn21/spiderman/internal/config"
	"github.com/vrn21/spiderman/internal/crawler"
	"github.com/vrn21/spiderman/internal/export"
	"github.com/vrn21/spiderman/internal/logging"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spiderman [URL]",
	Short: "A breadth-first web crawler with Markdown and JSONL output",
	Long: `Spiderman crawls a site breadth-first starting from a seed URL.

Each fetched page is converted to Markdown, enriched with metadata from
the document head, and appended to a JSONL export file. An optional
SQLite archive keeps the full page and link graph for later queries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawler,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Configuration file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./spiderman.yml)")

	// Configuration management flags
	rootCmd.Flags().Bool("show-config", false, "Display current configuration in YAML format and exit")

	// Crawl scope flags
	rootCmd.Flags().IntP("limit", "l", 0, "Stop after admitting N pages (0=unlimited)")
	rootCmd.Flags().StringSlice("allowed-domains", []string{}, "Restrict the crawl to these hosts (empty=all)")

	// HTTP behavior flags
	rootCmd.Flags().DurationP("delay", "r", 100*time.Millisecond, "Delay between requests to the same host")
	rootCmd.Flags().DurationP("timeout", "t", 30*time.Second, "HTTP request timeout")
	rootCmd.Flags().StringP("user-agent", "u", "Spiderman/1.0", "HTTP User-Agent header")

	// Output flags
	rootCmd.Flags().StringP("output", "o", "./crawl.jsonl", "Path to the JSONL output file")
	rootCmd.Flags().StringP("database", "d", "", "Optional SQLite archive file (empty=disabled)")
	rootCmd.Flags().Bool("store-html", false, "Keep raw HTML in exported records")

	// Logging flags
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("log-format", "text", "Log format: text or json")

	// Bind flags to viper
	bindFlags := []struct {
		viperKey string
		flagName string
	}{
		{"limit", "limit"},
		{"allowed_domains", "allowed-domains"},
		{"request_delay", "delay"},
		{"request_timeout", "timeout"},
		{"user_agent", "user-agent"},
		{"output_path", "output"},
		{"database_path", "database"},
		{"store_html", "store-html"},
		{"log_level", "log-level"},
		{"log_format", "log-format"},
	}

	for _, bind := range bindFlags {
		if err := viper.BindPFlag(bind.viperKey, rootCmd.Flags().Lookup(bind.flagName)); err != nil {
			// Log the error but continue - non-critical for operation
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", bind.flagName, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("spiderman")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvPrefix("SM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func generateUserAgent() string {
	if version != "" && version != "dev" {
		return fmt.Sprintf("Spiderman/%s", version)
	}
	return "Spiderman/dev"
}

func showCurrentConfig(cfg *config.CrawlConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	fmt.Printf("# Current Spiderman Configuration\n")
	fmt.Printf("# Generated at: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("# Configuration file search paths: ./spiderman.yml\n")
	fmt.Printf("# Environment variables prefix: SM_\n\n")

	fmt.Print(string(yamlData))

	fmt.Printf("\n# Configuration source priority:\n")
	fmt.Printf("# 1. Command-line arguments (highest priority)\n")
	fmt.Printf("# 2. Environment variables (SM_ prefix)\n")
	fmt.Printf("# 3. Configuration file (spiderman.yml)\n")
	fmt.Printf("# 4. Default values (lowest priority)\n")

	return nil
}

func runCrawler(cmd *cobra.Command, args []string) error {
	// Handle --show-config flag first
	showConfig, _ := cmd.Flags().GetBool("show-config")

	cfg := config.DefaultConfig()

	// Override with viper values
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Seed URL from the command line wins over config file and environment
	if len(args) > 0 {
		cfg.SeedURL = args[0]
	}

	// Update User-Agent with dynamic version if not explicitly set
	if !cmd.Flags().Changed("user-agent") && cfg.UserAgent == "Spiderman/1.0" {
		cfg.UserAgent = generateUserAgent()
	}

	// Handle --show-config: display current configuration and exit
	if showConfig {
		return showCurrentConfig(cfg)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Set up structured logging
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	if v := viper.GetString("log_level"); v != "" {
		logLevel = v
	}
	if v := viper.GetString("log_format"); v != "" {
		logFormat = v
	}
	logging.SetDefault(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logFormat,
		Output: os.Stderr,
	})

	// Assemble exporters: JSONL always, SQLite archive when configured
	exporters := []crawler.Exporter{export.NewJSONL(cfg.OutputPath)}
	if cfg.DatabasePath != "" {
		archive, err := export.NewSQLiteArchive(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open archive database: %w", err)
		}
		defer func() { _ = archive.Close() }()
		exporters = append(exporters, archive)
	}

	c, err := crawler.New(cfg, crawler.WithExporters(exporters...))
	if err != nil {
		return fmt.Errorf("failed to initialize crawler: %w", err)
	}

	slog.Info("Starting crawl",
		"seed_url", cfg.SeedURL,
		"limit", cfg.Limit,
		"allowed_domains", cfg.AllowedDomains,
		"output", cfg.OutputPath,
		"database", cfg.DatabasePath)

	result, err := c.Run(cmd.Context())
	if result != nil {
		slog.Info("Crawl finished",
			"pages_crawled", result.Stats.PagesCrawled,
			"pages_failed", result.Stats.PagesFailed,
			"urls_discovered", result.Stats.URLsDiscovered,
			"duration", result.Stats.Duration.Round(time.Millisecond))
	}
	return err
}
