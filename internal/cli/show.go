package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loci-app/loci/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single memory",
		Run:   runShow,
	}

	cmd.Flags().StringP("locus", "l", "", "Look up by locus ID")
	cmd.Flags().String("id", "", "Look up by item ID")

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	locusID, _ := cmd.Flags().GetString("locus")
	id, _ := cmd.Flags().GetString("id")

	if (locusID == "") == (id == "") {
		exitErr("show", fmt.Errorf("exactly one of --locus or --id is required"))
	}

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	var item *model.MemoryItem
	var err error
	if locusID != "" {
		item, err = s.GetByLocusID(cmd.Context(), locusID)
	} else {
		item, err = s.GetByID(cmd.Context(), id)
	}
	if err != nil {
		exitErr("show", err)
	}

	b, _ := json.MarshalIndent(item, "", "  ")
	fmt.Println(string(b))
}
