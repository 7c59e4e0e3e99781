package chat

import "errors"

const (
	// DefaultEndpoint is the OpenAI chat completions URL
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultModel    = "gpt-3.5-turbo"
	// Greeting is the single user message sent by the probe
	Greeting = "Olá!"
)

var (
	// ErrTransport means no complete HTTP response was received
	ErrTransport = errors.New("chat request failed")
	// ErrDecode means the response body was not valid JSON
	ErrDecode = errors.New("chat response is not valid JSON")
)

// Message is one conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completion payload
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Response holds the decoded body exactly as the API returned it.
// StatusCode is informational; the body is decoded whatever the status.
type Response struct {
	StatusCode int
	Body       interface{}
}

// GreetingRequest returns the fixed one-message conversation
func GreetingRequest() Request {
	return Request{
		Model: DefaultModel,
		Messages: []Message{
			{Role: "user", Content: Greeting},
		},
	}
}
