package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loci-app/loci/internal/challenge"
	"github.com/loci-app/loci/internal/gamify"
)

func init() {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Generate a daily memory drill",
		Long:  "Generate a procedural memory drill. Memorize the items, recall them, then re-run with --score to claim XP.",
		Run:   runChallenge,
	}

	cmd.Flags().StringP("type", "t", "words", "Drill type: words, numbers, or names")
	cmd.Flags().String("difficulty", "", "Difficulty: easy, medium, or hard (default from config)")
	cmd.Flags().Int("score", -1, "Items recalled correctly; awards XP scaled by hit rate")

	RootCmd.AddCommand(cmd)
}

func runChallenge(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("type")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	score, _ := cmd.Flags().GetInt("score")

	cfg := loadConfig()
	if difficulty == "" {
		difficulty = cfg.ChallengeDifficulty
	}

	count := challenge.ItemCount(challenge.Difficulty(difficulty))
	if score >= 0 {
		if score > count {
			score = count
		}

		logger := newLogger(cfg)
		defer logger.Sync()

		earned := gamify.ChallengeXP(count, score)
		ledger := openLedger(cfg)
		if err := ledger.Add(earned, "Daily Challenge"); err != nil {
			exitErr("challenge", err)
		}

		logger.Info("challenge scored",
			zap.Int("score", score),
			zap.Int("items", count),
			zap.Int("xp", earned))

		fmt.Printf(`{"ok":true,"score":%d,"items":%d,"xp":%d,"total_xp":%d,"level":%d}`+"\n",
			score, count, earned, ledger.XP, ledger.Level())
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	c := challenge.Generate(challenge.Kind(kind), challenge.Difficulty(difficulty), rng, time.Now())

	b, _ := json.MarshalIndent(c, "", "  ")
	fmt.Println(string(b))
}
