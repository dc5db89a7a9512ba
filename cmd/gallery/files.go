package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Upload and remove stored image files",
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file and print its public URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = filepath.Base(args[0])
		}

		contentType, _ := cmd.Flags().GetString("content-type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			url := g.UploadFile(ctx, data, name, contentType)
			if url == "" {
				return errOperationFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		})
	},
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Remove the file behind a public URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			if !g.DeleteFile(ctx, args[0]) {
				return errOperationFailed
			}
			return nil
		})
	},
}

func init() {
	filesUploadCmd.Flags().StringP("name", "n", "", "File name used to derive the storage key (default: base name of path)")
	filesUploadCmd.Flags().String("content-type", "", "MIME type (default: detected from content)")

	filesCmd.AddCommand(filesUploadCmd, filesDeleteCmd)
	rootCmd.AddCommand(filesCmd)
}
