package cmd

import (
	"github.com/Lumos-Labs-HQ/mockdata/internal/seeder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Generate the web-analytics dataset",
	Long: `
Generate Users, Sessions, Traffic_Sources, Pages, Conversions and Transactions.
Pages holds three rows per session.

Examples:
  mockdata web
  mockdata web --users 50000 --sessions 200000 --out data/web
  mockdata web --start 2023-01-01 --end 2023-12-31 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		start, end, err := cfg.Web.Range()
		if err != nil {
			return err
		}

		domain := seeder.WebDomain(seeder.WebParams{
			Users:        cfg.Web.Users,
			Sessions:     cfg.Web.Sessions,
			Conversions:  cfg.Web.Conversions,
			Transactions: cfg.Web.Transactions,
		})
		return runDomain(cmd, cfg, domain, cfg.Web.OutputDir, start, end)
	},
}

func init() {
	rootCmd.AddCommand(webCmd)

	webCmd.Flags().String("out", "synthetic_data", "output directory")
	webCmd.Flags().String("start", "2020-01-01", "first date of generated timestamps (YYYY-MM-DD)")
	webCmd.Flags().String("end", "2024-12-31", "last date of generated timestamps (YYYY-MM-DD)")
	webCmd.Flags().Int("users", 1000, "number of users")
	webCmd.Flags().Int("sessions", 5000, "number of sessions (and traffic sources)")
	webCmd.Flags().Int("conversions", 170, "number of conversions")
	webCmd.Flags().Int("transactions", 210, "number of transactions")

	viper.BindPFlag("web.output_dir", webCmd.Flags().Lookup("out"))
	viper.BindPFlag("web.start", webCmd.Flags().Lookup("start"))
	viper.BindPFlag("web.end", webCmd.Flags().Lookup("end"))
	viper.BindPFlag("web.users", webCmd.Flags().Lookup("users"))
	viper.BindPFlag("web.sessions", webCmd.Flags().Lookup("sessions"))
	viper.BindPFlag("web.conversions", webCmd.Flags().Lookup("conversions"))
	viper.BindPFlag("web.transactions", webCmd.Flags().Lookup("transactions"))
}
