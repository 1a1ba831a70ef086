package dto

// TrainRequest tunes a classifier training run.
type TrainRequest struct {
	TestSize   float64 `json:"test_size" validate:"gte=0,lt=1"`
	Seed       int64   `json:"seed"`
	MinDocFreq int     `json:"min_doc_freq" validate:"gte=0"`
	ModelPath  string  `json:"model_path"`
}
