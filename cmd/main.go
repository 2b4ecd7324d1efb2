package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/wildfire-dashboard/internal/config"
	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/fetcher"
	"github.com/Zachdehooge/wildfire-dashboard/internal/generator"
	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/Zachdehooge/wildfire-dashboard/internal/projection"
	"github.com/Zachdehooge/wildfire-dashboard/internal/risk"
)

var (
	apiBase    string
	outputFile string
	jsonFile   string
	verbose    bool
	interval   int
	watchMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wildfire-dashboard",
		Short: "Fetch wildfire telemetry and generate the dashboard HTML",
		Long: `Wildfire Dashboard polls the wildfire backend for active fires,
temperature and summary statistics and renders them as a map,
alert banner and live data panel.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}

			if watchMode {
				if err := runWatchMode(cmd, cfg); err != nil {
					cmd.PrintErrln(fmt.Errorf("watch failed: %w", err))
					os.Exit(1)
				}
				return
			}

			if err := generateDashboardHTML(cmd, cfg); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to generate dashboard: %w", err))
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "Backend base URL (default $WILDFIRE_API_BASE or "+fetcher.DefaultBaseURL+")")
	rootCmd.PersistentFlags().IntVarP(&interval, "interval", "i", 0, "Refresh interval in seconds (default $WILDFIRE_INTERVAL or 10)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "dashboard.html", "Output HTML file path")
	rootCmd.Flags().StringVar(&jsonFile, "json", "dashboard.json", "Output JSON snapshot path (empty to skip)")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Keep polling and rewrite the dashboard on every update")

	addListCmd(rootCmd)
	addServeCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges .env, environment and command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiBase != "" {
		cfg.APIBase = apiBase
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = config.ClampInterval(time.Duration(interval) * time.Second)
	}
	if verbose {
		cmd.Println(fmt.Sprintf("Backend: %s, interval: %s", cfg.APIBase, cfg.Interval))
	}
	return cfg, nil
}

// generateDashboardHTML fetches every source once and writes the page.
func generateDashboardHTML(cmd *cobra.Command, cfg *config.Config) error {
	if verbose {
		cmd.Println("Fetching wildfire telemetry...")
	}

	client := fetcher.New(cfg.APIBase)
	snap := client.FetchAll(cmd.Context())
	view := dashboard.BuildView(snap.Fires, snap.Temperature, snap.Summary, projection.Default(), time.Now())

	if verbose {
		cmd.Println(fmt.Sprintf("Generating HTML to %s...", outputFile))
	}
	if err := generator.WriteFiles(view, outputFile, jsonFile, generator.PageOptions{}); err != nil {
		return err
	}

	cmd.Println(fmt.Sprintf("Wildfire dashboard saved to %s", outputFile))
	return nil
}

// runWatchMode keeps the dashboard files current until interrupted.
func runWatchMode(cmd *cobra.Command, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := dashboard.New(fetcher.New(cfg.APIBase), dashboard.WithInterval(cfg.Interval))
	defer d.Close()

	opts := generator.PageOptions{RefreshSeconds: int(cfg.Interval / time.Second)}
	sub := d.Subscribe(func(v dashboard.View) {
		if err := generator.WriteFiles(v, outputFile, jsonFile, opts); err != nil {
			cmd.PrintErrln(fmt.Errorf("update failed: %w", err))
		}
	})
	defer sub.Close()

	cmd.Println(fmt.Sprintf("Watch mode activated. Updating every %s. Press Ctrl+C to stop.", cfg.Interval))
	if err := d.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	cmd.Println("Shutting down watch mode")
	return nil
}

// addListCmd adds a 'list' subcommand that prints the telemetry without generating HTML
func addListCmd(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List active wildfires and live readings",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}

			snap := fetcher.New(cfg.APIBase).FetchAll(cmd.Context())
			view := dashboard.BuildView(snap.Fires, snap.Temperature, snap.Summary, projection.Default(), time.Now())

			if view.Banner.Visible {
				cmd.Println(color.New(color.FgWhite, color.BgRed, color.Bold).Sprint("⚠️  " + view.Banner.Message))
			}
			if view.Banner.HeatWarning {
				cmd.Println(color.New(color.FgHiRed, color.Bold).Sprint("🔥 " + view.Banner.HeatMessage))
			}

			cmd.Println(fmt.Sprintf("Temperature: %s", view.Panel.Temperature))
			cmd.Println(fmt.Sprintf("Avg Temperature: %s", view.Panel.AverageTemperature))
			cmd.Println(fmt.Sprintf("High Risk Fires: %d", view.Panel.HighRiskCount))
			cmd.Println(fmt.Sprintf("Last updated: %s", view.Panel.LastUpdated))

			if len(view.Map.Markers) == 0 {
				cmd.Println("No active wildfires.")
				return
			}

			cmd.Println("Active Wildfires:")
			for _, m := range view.Map.Markers {
				cmd.Println("---")
				cmd.Println(fmt.Sprintf("Name: %s", m.Name))
				cmd.Println(fmt.Sprintf("Risk: %s", riskColor(m.Risk).Sprint(m.Risk)))
				cmd.Println(fmt.Sprintf("Map position: (%.0f, %.0f)", m.X, m.Y))
				if m.OffCanvas {
					cmd.Println("Outside the map region")
				}
			}
		},
	}

	rootCmd.AddCommand(listCmd)
}

// riskColor picks the terminal color closest to the map marker color.
func riskColor(r model.Risk) *color.Color {
	switch risk.Level(r) {
	case model.RiskHigh:
		return color.New(color.FgHiRed, color.Bold)
	case model.RiskModerate:
		return color.New(color.FgHiYellow)
	case model.RiskLow:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgMagenta)
	}
}
