package signal

import "fmt"

// Model evaluators pass through confidences computed upstream. A zero
// value means the model never ran for this game.

func ensemble(ctx *GameContext) (float64, string) {
	if ctx.Predictions == nil || ctx.Predictions.Ensemble == 0 {
		return neutral, "Ensemble model not available"
	}
	score := clampScore(ctx.Predictions.Ensemble)
	return score, fmt.Sprintf("Ensemble model: %.0f%% confidence", score)
}

func lstmBrain(ctx *GameContext) (float64, string) {
	if ctx.Predictions == nil || ctx.Predictions.LSTM == 0 {
		return neutral, "LSTM model not available"
	}
	score := clampScore(ctx.Predictions.LSTM)
	return score, fmt.Sprintf("LSTM sequence model: %.0f%% confidence", score)
}
