package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List memories due for review",
		Run:   runDue,
	}

	cmd.Flags().Bool("count-only", false, "Only output the number of due memories")

	RootCmd.AddCommand(cmd)
}

func runDue(cmd *cobra.Command, args []string) {
	countOnly, _ := cmd.Flags().GetBool("count-only")

	cfg := loadConfig()
	s := openStore(cfg)
	defer s.Close()

	due, err := s.DueForReview(cmd.Context())
	if err != nil {
		exitErr("due", err)
	}

	if countOnly {
		fmt.Println(len(due))
		return
	}

	if due == nil {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(due, "", "  ")
	fmt.Println(string(b))
}
