package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every memory (factory reset)",
		Run:   runReset,
	}

	cmd.Flags().Bool("force", false, "Confirm the wipe (required)")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		exitErr("reset", fmt.Errorf("refusing to wipe the palace without --force"))
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	s := openStore(cfg)
	defer s.Close()

	total, err := s.TotalCount(cmd.Context())
	if err != nil {
		exitErr("reset", err)
	}
	if err := s.DeleteAll(cmd.Context()); err != nil {
		exitErr("reset", err)
	}

	logger.Info("palace reset", zap.Int("removed", total))
	fmt.Printf(`{"ok":true,"removed":%d}`+"\n", total)
}
