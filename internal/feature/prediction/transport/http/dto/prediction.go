package dto

type PredictionRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Model  string `json:"model"`
}

type ModelResponse struct {
	Prices       []float64 `json:"prices"`
	Accuracy     float64   `json:"accuracy"`
	RMSE         float64   `json:"rmse"`
	MAE          float64   `json:"mae"`
	TrainingTime int       `json:"trainingTime"`
}

type PredictionResponse struct {
	Symbol       string                   `json:"symbol"`
	Model        string                   `json:"model"`
	Predictions  map[string]ModelResponse `json:"predictions"`
	ActualPrices []float64                `json:"actualPrices"`
	Dates        []string                 `json:"dates"`
}
