package dto

// AskAssistantRequest represents the request body for asking the assistant.
type AskAssistantRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskAssistantResponse represents the assistant's reply.
type AskAssistantResponse struct {
	Answer string `json:"answer"`
}
