package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cli/browser"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/fetcher"
	"github.com/Zachdehooge/wildfire-dashboard/internal/server"
)

// addServeCmd adds a 'serve' subcommand running the live dashboard over HTTP
func addServeCmd(rootCmd *cobra.Command) {
	var (
		addr        string
		openBrowser bool
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live dashboard over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if !verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d := dashboard.New(fetcher.New(cfg.APIBase), dashboard.WithInterval(cfg.Interval))
			srv := server.New(d)
			s := &http.Server{
				Addr:              cfg.Addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			if err := d.Start(ctx); err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}

			go func() {
				log.Printf("[server] listening on %s", cfg.Addr)
				if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Printf("[server] ListenAndServe error: %v", err)
					stop()
				}
			}()

			if openBrowser {
				url := localURL(cfg.Addr)
				if err := browser.OpenURL(url); err != nil {
					cmd.PrintErrln(fmt.Errorf("failed to open browser: %w", err))
				}
			}

			<-ctx.Done()
			log.Println("[server] shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Close()
			if err := s.Shutdown(shutdownCtx); err != nil {
				log.Printf("[server] shutdown error: %v", err)
			}
			d.Close()
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address (default $WILDFIRE_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&openBrowser, "open", false, "Open the dashboard in the default browser")

	rootCmd.AddCommand(serveCmd)
}

// localURL turns a listen address like ":8080" into a browsable URL.
func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/"
}
