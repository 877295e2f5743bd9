package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

/*
watchCmd 定期 refresh 購物車與目錄, 狀態變更時重新輸出
設定檔變更會被記錄下來, METRICS_ADDR 有設定時提供 /metrics
*/
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the cart and catalog in sync and re-render on every change",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var outMu sync.Mutex
		app.Session.OnChange(func(state service.OrderState) {
			if state.Loading {
				return
			}
			outMu.Lock()
			defer outMu.Unlock()
			renderCart(cmd)
		})
		app.Catalog.OnChange(func(state service.CatalogState) {
			if state.Loading {
				return
			}
			outMu.Lock()
			defer outMu.Unlock()
			renderCatalog(cmd)
		})

		manager.OnChange(func(cf *config.Config) {
			app.Logger.Info().Str("api_url", cf.ApiURL).Msg("config reloaded, restart to apply connection settings")
		})
		manager.Watch(func(err error) {
			app.Logger.Error().Err(err).Msg("config reload failed")
		})

		if addr := app.Cf.MetricsAddr; addr != "" {
			srv := &http.Server{Addr: addr, Handler: promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					app.Logger.Error().Err(err).Msg("metrics server stopped")
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
		}

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
		for {
			app.Session.Refresh(ctx)
			app.Catalog.OnCategoryParamChanged(ctx, categoryParam)

			select {
			case <-ctx.Done():
				fmt.Fprintln(cmd.OutOrStdout(), "bye")
				return nil
			case <-ticker.C:
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&categoryParam, "category", "", "category id, empty for all products")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second, "refresh interval")
}
