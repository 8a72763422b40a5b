package tuning

import "sync"

// RunModeEvaluation plays model against every opponent, gamesPerMatchup
// games each, fanning out one worker per opponent matchup over a
// bounded pool. Each matchup owns its own seeded stream derived from
// (seed, opponent index) and there is no communication between
// workers; results are collected into a slice matching opponents'
// order once every worker has returned.
func RunModeEvaluation(model AutomoveModel, opponents []AutomoveModel, gamesPerMatchup int, seed int64, workers int) []MatchupStats {
	if workers < 1 {
		workers = 1
	}
	results := make([]MatchupStats, len(opponents))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				matchupSeed := seed + int64(i)*7919
				results[i] = RunMatchupSeries(model, opponents[i], gamesPerMatchup, matchupSeed)
			}
		}()
	}
	for i := range opponents {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
