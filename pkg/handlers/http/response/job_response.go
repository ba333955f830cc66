package response

type FileAcceptedOutput struct {
	JobID                string  `json:"jobId"`
	Filename             string  `json:"filename"`
	TotalTexts           int     `json:"totalTexts"`
	Status               string  `json:"status"`
	EstimatedTimeSeconds float64 `json:"estimatedTimeSeconds"`
}
