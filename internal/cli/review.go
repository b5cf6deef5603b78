package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loci-app/loci/internal/gamify"
	"github.com/loci-app/loci/internal/srs"
	"github.com/loci-app/loci/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review <locus>",
		Short: "Rate a reviewed memory",
		Long:  "Record the outcome of reviewing the memory at a locus. The rating drives the next review date: hard resets to one day, medium and easy grow the interval.",
		Args:  cobra.ExactArgs(1),
		Run:   runReview,
	}

	cmd.Flags().StringP("rating", "r", "", "Recall rating: hard, medium, or easy (required)")
	cmd.MarkFlagRequired("rating")

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	locusID := args[0]
	ratingStr, _ := cmd.Flags().GetString("rating")

	rating, err := srs.ParseRating(ratingStr)
	if err != nil {
		exitErr("review", err)
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	s := openStore(cfg)
	defer s.Close()

	item, err := s.Review(cmd.Context(), locusID, rating)
	if errors.Is(err, store.ErrNotFound) {
		exitErr("review", fmt.Errorf("no memory at locus %q", locusID))
	}
	if err != nil {
		exitErr("review", err)
	}

	if err := openLedger(cfg).Add(gamify.ReviewXP, "Memory reviewed"); err != nil {
		logger.Warn("xp award failed", zap.Error(err))
	}

	logger.Info("memory reviewed",
		zap.String("locus", item.LocusID),
		zap.String("rating", rating.String()),
		zap.Int("bucket", item.SRSBucket),
		zap.Int("review_count", item.ReviewCount),
		zap.Time("next_review", item.NextReview))

	b, _ := json.MarshalIndent(item, "", "  ")
	fmt.Println(string(b))
}
