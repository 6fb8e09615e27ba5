package requests

// AnalyzeRequest asks a question about an image referenced by URL.
type AnalyzeRequest struct {
	Question string `json:"question" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
}

// CompareRequest fans a query out to every matching model.
type CompareRequest struct {
	Query     string `json:"query" binding:"required"`
	Provider  string `json:"provider"`
	ModelType string `json:"model_type"`
}

// ReasonRequest runs the tool-enhanced reasoning loop on a query.
type ReasonRequest struct {
	Query string `json:"query" binding:"required"`
	Model string `json:"model"`
}
