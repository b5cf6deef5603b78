package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/loci-app/loci/internal/model"
	"github.com/loci-app/loci/internal/srs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List placed memories",
		Run:   runList,
	}

	cmd.Flags().Bool("loci-only", false, "Only output locus IDs")

	RootCmd.AddCommand(cmd)
}

// listItem decorates an item with its due status for display.
type listItem struct {
	model.MemoryItem
	Due       bool   `json:"due"`
	TimeUntil string `json:"time_until"`
}

func runList(cmd *cobra.Command, args []string) {
	lociOnly, _ := cmd.Flags().GetBool("loci-only")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	items, err := s.GetAll(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}

	if lociOnly {
		for _, m := range items {
			fmt.Println(m.LocusID)
		}
		return
	}

	now := time.Now().UTC()
	out := make([]listItem, 0, len(items))
	for _, m := range items {
		out = append(out, listItem{
			MemoryItem: m,
			Due:        srs.IsDue(&m.NextReview, now),
			TimeUntil:  srs.TimeUntil(&m.NextReview, now),
		})
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
