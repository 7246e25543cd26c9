package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Import a backup snapshot",
	Long: `Import a snapshot produced by 'trainlog backup'. Records are merged by
id: matching sessions are overwritten in full, everything else in the
store is left alone. Use "-" to read from stdin.

A malformed snapshot (wrong version, sessions not an array) is rejected
before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		count, err := internal.ImportBackup(store, data)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d session(s)\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
