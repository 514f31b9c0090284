// Copyright (c) Microsoft. All rights reserved.

package openai

// Role identifies the author of a [Message].
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged chat message. Messages are sent in the
// order given and are not modified on the way out.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system-role [Message].
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user-role [Message].
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-role [Message].
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ChatRequest is the Chat Completions request body. It is also what
// [Middleware] sees on its way to the transport.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

func newChatRequest(model Model, messages []Message) *ChatRequest {
	if messages == nil {
		// Encode as [] rather than null.
		messages = []Message{}
	}
	return &ChatRequest{Model: model.String(), Messages: messages}
}
