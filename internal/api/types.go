package api

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type transformRequest struct {
	Text string `json:"text"`
}

type transformResponse struct {
	Post string `json:"post"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HistoryEntry is one previous rewrite as stored by the backend.
type HistoryEntry struct {
	ID    string `json:"id"`
	Input string `json:"input"`
	Post  string `json:"post"`
}

// BatchResult is the outcome for one input of BatchTransform.
type BatchResult struct {
	Input string
	Post  string
	Err   error
}
