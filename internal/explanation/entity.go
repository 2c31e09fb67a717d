package explanation

type ExplanationRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}
