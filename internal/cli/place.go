package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loci-app/loci/internal/gamify"
	"github.com/loci-app/loci/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "place [content]",
		Short: "Place a fact at a locus",
		Long:  "Place a fact at a locus. Content can be a positional arg or piped via stdin. Placing at an occupied locus overwrites it and reseeds its review schedule.",
		Run:   runPlace,
	}

	cmd.Flags().StringP("locus", "l", "", "Locus ID (required)")
	cmd.Flags().StringP("name", "n", "", "Locus display name")
	cmd.Flags().StringP("mnemonic", "m", "", "Memory aid")

	cmd.MarkFlagRequired("locus")

	RootCmd.AddCommand(cmd)
}

func runPlace(cmd *cobra.Command, args []string) {
	locusID, _ := cmd.Flags().GetString("locus")
	locusName, _ := cmd.Flags().GetString("name")
	mnemonic, _ := cmd.Flags().GetString("mnemonic")

	// Get content: positional arg first, then check stdin
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}

	if strings.TrimSpace(content) == "" {
		exitErr("place", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	if locusName == "" {
		locusName = locusID
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	s := openStore(cfg)
	defer s.Close()

	item, err := s.Place(cmd.Context(), store.PlaceParams{
		LocusID:   locusID,
		LocusName: locusName,
		Content:   strings.TrimSpace(content),
		Mnemonic:  mnemonic,
	})
	if err != nil {
		exitErr("place", err)
	}

	if err := openLedger(cfg).Add(gamify.PlaceXP, "Created memory"); err != nil {
		logger.Warn("xp award failed", zap.Error(err))
	}

	logger.Info("memory placed",
		zap.String("locus", item.LocusID),
		zap.Int("bucket", item.SRSBucket),
		zap.Time("next_review", item.NextReview))

	b, _ := json.MarshalIndent(item, "", "  ")
	fmt.Println(string(b))
}
