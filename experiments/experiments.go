package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"wataruto/agent"
	"wataruto/engine"
	"wataruto/experiments/metrics"
	"wataruto/searcher"
)

const (
	NumGames   = 10 // Per matchup
	TimeBudget = 500 * time.Millisecond
	BoardSize  = 9 // Small board keeps matchup games short
)

// RunTacticalExperiment pits the tactical rollout policy against the pure
// random one, same time budget on both sides.
func RunTacticalExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, TimeLimit: TimeBudget, TacticalRollout: false}
	tactical := metrics.AgentConfig{ID: 1, TimeLimit: TimeBudget, TacticalRollout: true}

	matchUps := [][2]metrics.AgentConfig{
		{baseline, tactical},
		{tactical, baseline}, // Alternate starting color
	}

	return runExperiment("tactical_rollout", []metrics.AgentConfig{baseline, tactical}, matchUps)
}

// RunBudgetExperiment compares search time budgets against the baseline.
func RunBudgetExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, TimeLimit: TimeBudget, TacticalRollout: true}
	budgets := []metrics.AgentConfig{
		{ID: 1, TimeLimit: TimeBudget / 5, TacticalRollout: true},
		{ID: 2, TimeLimit: TimeBudget * 2, TacticalRollout: true},
		{ID: 3, TimeLimit: TimeBudget * 4, TacticalRollout: true},
	}

	matchUps := make([][2]metrics.AgentConfig, 0, len(budgets))
	for _, config := range budgets {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("time_budget", append(budgets, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var games []metrics.GameRecord
	var moves []metrics.MoveRecord
	gameID := 0

	for _, matchUp := range matchUps {
		log.Info().Str("experiment", name).
			Int("agent1", matchUp[0].ID).Int("agent2", matchUp[1].ID).
			Msg("starting matchup")

		for i := 0; i < NumGames; i++ {
			gameID++
			record, moveRecords, err := runGame(gameID, matchUp[0], matchUp[1])
			if err != nil {
				return err
			}
			games = append(games, record)
			moves = append(moves, moveRecords...)
		}
	}

	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moves)
}

func runGame(id int, blue, pink metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	e := engine.LocalEngine(BoardSize, newAgent(blue), newAgent(pink))

	start := time.Now()
	winner, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         id,
		Agent1:     blue.ID,
		Agent2:     pink.ID,
		Winner:     winner,
		TotalMoves: len(moveMetrics),
		Duration:   time.Since(start),
	}

	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, m := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{
			Game:           id,
			Step:           m.Step,
			Player:         m.Player,
			Simulations:    m.Simulations,
			Nodes:          m.NodesCreated,
			ElapsedSeconds: m.ElapsedSeconds,
		})
	}
	return record, moves, nil
}

func newAgent(config metrics.AgentConfig) agent.Agent {
	mcts := searcher.NewMCTS(
		searcher.WithDuration(config.TimeLimit),
		searcher.WithMaxSimulations(config.MaxSimulations),
		searcher.WithTacticalRollout(config.TacticalRollout),
	)
	return agent.NewMCTSAgent(mcts)
}
