package ai

import (
	"github.com/pkg/errors"

	"quantum-snake/game"
	"quantum-snake/logger"
)

// TrainStats summarizes a headless training run.
type TrainStats struct {
	Episodes     int
	BestScore    int
	AverageScore float64
	TotalReward  float64
}

// Train runs episodes headless sessions on cfg. An episode ends when the
// round resets or after maxSteps scheduler units.
func Train(cfg game.Config, brain *QLearning, episodes, maxSteps int, log *logger.Logger, opts ...game.Option) (TrainStats, error) {
	g, err := game.New(cfg, opts...)
	if err != nil {
		return TrainStats{}, errors.Wrap(err, "training session")
	}
	agent := NewAgent(brain)

	var st TrainStats
	totalScore := 0
	for episode := 0; episode < episodes; episode++ {
		score := runEpisode(g, agent, maxSteps)

		st.Episodes++
		totalScore += score
		if score > st.BestScore {
			st.BestScore = score
		}

		if log != nil && (episode+1)%100 == 0 {
			log.Info("training episode %d: best %d, average %.2f, epsilon %.3f",
				episode+1, st.BestScore, float64(totalScore)/float64(st.Episodes), brain.Epsilon)
		}
	}
	if st.Episodes > 0 {
		st.AverageScore = float64(totalScore) / float64(st.Episodes)
	}
	st.TotalReward = brain.TotalReward
	return st, nil
}

func runEpisode(g *game.Game, agent *Agent, maxSteps int) int {
	for step := 0; step < maxSteps; step++ {
		if res := agent.Step(g); res.Reset {
			return res.Snake.Score
		}
	}
	score := g.Score()
	g.Reset()
	return score
}
