/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdfchat/repository"
	"github.com/tieubaoca/pdfchat/service"
	"github.com/tieubaoca/pdfchat/types"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <file.pdf> <question>",
	Short: "Ask a single question about a local PDF",
	Long: `Ingests a local PDF and asks the configured model one question about it,
the same way the first message of a chat is handled by the server.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(true)
		if err != nil {
			return err
		}

		aiService, err := service.NewAIService(cfg.AIServiceConfig())
		if err != nil {
			return fmt.Errorf("failed to create AI service: %w", err)
		}
		if closer, ok := aiService.(io.Closer); ok {
			defer closer.Close()
		}

		filePath, question := args[0], args[1]
		file, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer file.Close()

		documentRepo := repository.NewDocumentRepo()
		documentService := service.NewDocumentService(documentRepo, service.NewPDFService())
		if _, err := documentService.Ingest(filepath.Base(filePath), types.MEDIA_TYPE_PDF, file); err != nil {
			return err
		}

		chatService := service.NewChatService(documentRepo, aiService)
		answer, err := chatService.Reply(cmd.Context(), []types.Message{
			{Role: types.ROLE_USER, Content: question},
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
