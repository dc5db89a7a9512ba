package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var errOperationFailed = errors.New("operation failed, see log for details")

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage gallery image records",
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List image records in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			return printJSON(cmd, g.List(ctx))
		})
	},
}

var imagesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an image record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInputFromFlags(cmd)
		if err != nil {
			return err
		}

		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			img := g.Create(ctx, in)
			if img == nil {
				return errOperationFailed
			}
			return printJSON(cmd, img)
		})
	},
}

var imagesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an image record",
	Long:  `Only the flags given are written; other fields keep their current values.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		in, err := updateInputFromFlags(cmd)
		if err != nil {
			return err
		}

		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			img := g.Update(ctx, id, in)
			if img == nil {
				return errOperationFailed
			}
			return printJSON(cmd, img)
		})
	},
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an image record",
	Long:  `The record's file is not removed; use "gallery files delete" for that.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}

		return withGallery(cmd, func(ctx context.Context, g *images.Gallery) error {
			if !g.Delete(ctx, id) {
				return errOperationFailed
			}
			return nil
		})
	},
}

func init() {
	addImageFlags(imagesCreateCmd)
	addImageFlags(imagesUpdateCmd)

	imagesCmd.AddCommand(imagesListCmd, imagesCreateCmd, imagesUpdateCmd, imagesDeleteCmd)
	rootCmd.AddCommand(imagesCmd)
}

func addImageFlags(c *cobra.Command) {
	c.Flags().StringP("title", "t", "", "Image title")
	c.Flags().StringP("description", "d", "", "Image description")
	c.Flags().StringP("image-url", "u", "", "Public URL of the image file")
	c.Flags().IntP("position", "p", 0, "Display position")
}

// newInputFromFlags reads every record field; unset flags keep their zero value.
func newInputFromFlags(cmd *cobra.Command) (images.NewImageInput, error) {
	var in images.NewImageInput
	flags := cmd.Flags()

	var err error
	if in.Title, err = flags.GetString("title"); err != nil {
		return in, err
	}
	if in.Description, err = flags.GetString("description"); err != nil {
		return in, err
	}
	if in.ImageURL, err = flags.GetString("image-url"); err != nil {
		return in, err
	}
	if in.Position, err = flags.GetInt("position"); err != nil {
		return in, err
	}

	return in, nil
}

// updateInputFromFlags reads only the flags given on the command line.
func updateInputFromFlags(cmd *cobra.Command) (images.UpdateImageInput, error) {
	var in images.UpdateImageInput
	flags := cmd.Flags()

	for _, name := range []string{"title", "description", "image-url"} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return in, err
		}
		switch name {
		case "title":
			in.Title = &v
		case "description":
			in.Description = &v
		case "image-url":
			in.ImageURL = &v
		}
	}

	if flags.Changed("position") {
		p, err := flags.GetInt("position")
		if err != nil {
			return in, err
		}
		in.Position = &p
	}

	return in, nil
}
