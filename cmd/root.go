package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Lumos-Labs-HQ/mockdata/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║                 📊 mockdata                  ║",
		"║   synthetic analytics datasets, as CSV       ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "mockdata",
	Short: "Generate synthetic web and social-media analytics datasets",
	Long: `
mockdata synthesizes fake but internally consistent analytics tables and
writes them to CSV files, split into 1,000,000-row parts when large.

Datasets:
- web     Users, Sessions, Traffic_Sources, Pages, Conversions, Transactions
- social  engagement, audience, paid ads, campaigns, posts, followers, content`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mockdata version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mockdata.config.json)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed; 0 picks a new one each run")
	rootCmd.PersistentFlags().Int("rows-per-file", 1_000_000, "maximum data rows per CSV file")
	rootCmd.PersistentFlags().Bool("no-progress", false, "disable progress bars")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("rows_per_file", rootCmd.PersistentFlags().Lookup("rows-per-file"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("mockdata.config")
	}

	config.ConfigureEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
		}
	}
}

// loadConfig reads and validates the merged flag, env and file configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func progressWriter(cmd *cobra.Command) io.Writer {
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); noProgress {
		return nil
	}
	return os.Stderr
}
