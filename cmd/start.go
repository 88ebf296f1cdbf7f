/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdfchat/handler"
	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/repository"
	"github.com/tieubaoca/pdfchat/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the server that ingests PDFs on /api/scrape and answers questions on /api/chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		// Initialize services
		aiService, err := service.NewAIService(cfg.AIServiceConfig())
		if err != nil {
			return fmt.Errorf("failed to create AI service: %w", err)
		}
		if closer, ok := aiService.(io.Closer); ok {
			defer closer.Close()
		}
		documentRepo := repository.NewDocumentRepo()
		documentService := service.NewDocumentService(documentRepo, service.NewPDFService())
		chatService := service.NewChatService(documentRepo, aiService)

		// Initialize handlers
		gin.SetMode(gin.ReleaseMode)
		router := handler.SetupRouter(
			handler.NewCorsHandler(cfg.AllowedOrigin),
			handler.NewUploadHandler(documentService),
			handler.NewChatHandler(chatService),
		)
		router.MaxMultipartMemory = cfg.MultipartMemoryMB << 20

		server := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("server_starting",
				"addr", server.Addr,
				"provider", cfg.Provider,
				"model", aiService.Model(),
				"allowed_origin", cfg.AllowedOrigin,
			)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("server_stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("port", "p", "", "port to listen on, overrides the config file")
}
