package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/pkg/storage"
)

var errStorageDisabled = errors.New("storage is not configured, set S3_BUCKET")

func newCVCmd(envFiles *[]string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Manage the downloadable CV",
	}
	cmd.AddCommand(newCVUploadCmd(envFiles))
	return cmd
}

func newCVUploadCmd(envFiles *[]string) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload the CV PDF to object storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig[cvConfig](*envFiles...)
			if err != nil {
				return err
			}
			if key == "" {
				key = cfg.CV.Key
			}

			store, err := newStorage(cfg.Storage)
			if err != nil {
				return err
			}
			if store == nil {
				return errStorageDisabled
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := f.Stat()
			if err != nil {
				return err
			}

			info, err := store.Put(cmd.Context(), key, f, st.Size(),
				storage.WithContentType("application/pdf"),
				storage.WithCacheControl("private, max-age=300"),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s) to %s\n",
				args[0], humanize.IBytes(uint64(info.Size)), info.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "object key (default CV_KEY)")
	return cmd
}
