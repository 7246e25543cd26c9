package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/trainlog/internal"
	"github.com/spf13/cobra"
)

var backupOut string

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export a snapshot of every session",
	Long: `Export the full session store as a versioned JSON snapshot, suitable
for 'trainlog restore'. Writes to stdout unless --out is given (or a
backup_dir is configured, in which case a dated file is created there).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		data, err := internal.ExportBackup(store)
		if err != nil {
			return fmt.Errorf("failed to export backup: %w", err)
		}

		out := backupOut
		if out == "" {
			if dir := loadConfig().BackupDir; dir != "" {
				out = filepath.Join(dir, fmt.Sprintf("trainlog-backup-%s.json", internal.Today()))
			}
		}

		if out == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		fmt.Printf("Backup written to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "", "Output file (default: stdout, or backup_dir from config)")
}
