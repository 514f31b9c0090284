// Copyright (c) Microsoft. All rights reserved.

package openai_test

import (
	"encoding/json"
	"testing"

	"github.com/Lavryniukk/openai-lib/openai"
)

func TestMessageConstructors(t *testing.T) {
	tests := []struct {
		msg  openai.Message
		role openai.Role
	}{
		{openai.NewSystemMessage("x"), openai.RoleSystem},
		{openai.NewUserMessage("x"), openai.RoleUser},
		{openai.NewAssistantMessage("x"), openai.RoleAssistant},
	}
	for _, tc := range tests {
		if tc.msg.Role != tc.role {
			t.Errorf("role = %q, want %q", tc.msg.Role, tc.role)
		}
		if tc.msg.Content != "x" {
			t.Errorf("content = %q", tc.msg.Content)
		}
	}
}

func TestMessageJSON(t *testing.T) {
	b, err := json.Marshal(openai.NewUserMessage("Hello, I'm a user!"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"role":"user","content":"Hello, I'm a user!"}` {
		t.Errorf("json = %s", b)
	}

	// Empty content is still sent.
	b, _ = json.Marshal(openai.NewAssistantMessage(""))
	if string(b) != `{"role":"assistant","content":""}` {
		t.Errorf("json = %s", b)
	}
}
