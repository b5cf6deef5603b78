package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <locus>",
		Short: "Remove the memory at a locus",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	locusID := args[0]

	cfg := loadConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	s := openStore(cfg)
	defer s.Close()

	removed, err := s.DeleteByLocusID(cmd.Context(), locusID)
	if err != nil {
		exitErr("rm", err)
	}

	logger.Info("memory removed", zap.String("locus", locusID), zap.Bool("removed", removed))
	fmt.Printf(`{"ok":true,"locus":%q,"removed":%t}`+"\n", locusID, removed)
}
