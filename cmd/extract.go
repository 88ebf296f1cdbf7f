/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/service"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Print the text extracted from a PDF",
	Long: `Extracts the text of a local PDF exactly as the server would on upload,
and prints it to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(false); err != nil {
			return err
		}

		filePath := args[0]
		extracted, err := service.NewPDFService().ExtractFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", filePath, err)
		}
		logger.Debug("pdf_extracted",
			"title", service.GetFileNameWithoutExt(filePath),
			"pages", extracted.TotalPages,
			"chars", len(extracted.Text),
		)

		if showPages, _ := cmd.Flags().GetBool("pages"); showPages {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d pages\n", extracted.TotalPages)
		}
		fmt.Fprintln(cmd.OutOrStdout(), extracted.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().Bool("pages", false, "print the page count to stderr")
}
