package main

import (
	"fmt"
	"os"

	"github.com/jebin2/hfsync/internal/config"
	"github.com/jebin2/hfsync/internal/logging"
	"github.com/jebin2/hfsync/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "hfsync",
		Short:         "Hugging Face dataset repository sync tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var debug bool
	rootCmd.PersistentFlags().
		BoolVarP(&debug, "debug", "d", false, "Enable debug output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetDebug(debug)
	}

	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create the config file with guided input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.InitInteractive()
			if err != nil {
				logging.Error("Initialization failed", err)
			}
			return err
		},
	}

	var uploadCmd = &cobra.Command{
		Use:   "upload <local-path> <repo-path>",
		Short: "Upload a single file to the dataset repo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.Upload(cmd.Context(), args[0], args[1])
		},
	}

	var uploadFolderCmd = &cobra.Command{
		Use:   "upload-folder <local-dir> [repo-base]",
		Short: "Upload all files of a folder recursively",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoBase := ""
			if len(args) == 2 {
				repoBase = args[1]
			}
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.UploadFolder(cmd.Context(), args[0], repoBase)
		},
	}

	var downloadCmd = &cobra.Command{
		Use:   "download <repo-path> <local-path>",
		Short: "Download a file from the dataset repo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.Download(cmd.Context(), args[0], args[1])
		},
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all files in the dataset repo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.List(cmd.Context())
		},
	}

	var deleteCmd = &cobra.Command{
		Use:   "delete <repo-path>",
		Short: "Delete a file from the dataset repo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.Delete(cmd.Context(), args[0])
		},
	}

	var watchCmd = &cobra.Command{
		Use:   "watch <local-dir> [repo-base]",
		Short: "Watch a folder and upload changed files",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoBase := ""
			if len(args) == 2 {
				repoBase = args[1]
			}
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.Watch(cmd.Context(), args[0], repoBase)
		},
	}

	var historyLimit int64
	var historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show recent transfers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := service.New(cmd.Context())
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.History(cmd.Context(), historyLimit)
		},
	}
	historyCmd.Flags().Int64VarP(&historyLimit, "limit", "n", 20, "Maximum number of entries to show")

	rootCmd.AddCommand(initCmd, uploadCmd, uploadFolderCmd, downloadCmd, listCmd, deleteCmd, watchCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
