// Copyright (c) Microsoft. All rights reserved.

// Command chat is an interactive multi-turn chat over the openai package.
//
// It works with both direct OpenAI and Azure OpenAI endpoints.
//
// Usage with OpenAI:
//
//	export OPENAI_API_KEY=sk-...
//	go run . -model gpt-4
//
// Usage with Azure OpenAI:
//
//	export AZURE_OPENAI_ENDPOINT=https://<resource>.openai.azure.com/openai/deployments/<deployment>
//	export AZURE_OPENAI_KEY=<your-key>   # optional; Azure AD is used when unset
//	go run .
//
// Variables may also be placed in a .env file in the working directory.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/joho/godotenv"
	"github.com/peterh/liner"

	"github.com/Lavryniukk/openai-lib/openai"
)

func main() {
	modelID := flag.String("model", openai.GPT35Turbo.String(), "model identifier")
	system := flag.String("system", "", "optional system prompt")
	raw := flag.Bool("raw", false, "print the full JSON response instead of the reply text")
	flag.Parse()

	// Load .env file if present (ignored if missing).
	_ = godotenv.Load()

	// Enable debug logging if requested
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	model, err := openai.ParseModel(*modelID)
	if err != nil {
		log.Fatalf("%v (known: %s)", err, knownModels())
	}

	client := newClient(model)

	var history []openai.Message
	if *system != "" {
		history = append(history, openai.NewSystemMessage(*system))
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("Chatting with %s (type 'quit' to exit)\n\n", model)

	for {
		input, err := line.Prompt("You: ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				break
			}
			log.Printf("read input: %v", err)
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}
		line.AppendHistory(input)

		history = append(history, openai.NewUserMessage(input))
		resp, err := client.ChatCompletion(context.Background(), history)
		if err != nil {
			// Drop the failed turn so the next attempt starts clean.
			history = history[:len(history)-1]
			fmt.Printf("Error (%s): %v\n\n", errorClass(err), err)
			continue
		}

		reply, ok := replyText(resp)
		if ok {
			history = append(history, openai.NewAssistantMessage(reply))
		}

		if *raw || !ok {
			b, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Printf("%s\n\n", b)
			continue
		}
		fmt.Printf("Assistant: %s\n\n", reply)
	}
}

// newClient creates a client, choosing between Azure OpenAI and direct
// OpenAI based on which environment variables are set.
func newClient(model openai.Model) *openai.Client {
	opts := []openai.Option{
		openai.WithMiddleware(openai.LoggingMiddleware(slog.Default())),
	}

	if endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT"); endpoint != "" {
		fmt.Printf("Using Azure OpenAI: %s\n", endpoint)
		opts = append(opts, openai.WithBaseURL(endpoint))

		key := os.Getenv("AZURE_OPENAI_KEY")
		if key == "" {
			fmt.Println("Using Azure AD authentication (DefaultAzureCredential)")
			cred, err := azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				log.Fatalf("Failed to create Azure credential: %v", err)
			}
			return openai.New("", model, append(opts, openai.WithAzureCredential(cred))...)
		}

		// Azure uses api-key header instead of Bearer token
		return openai.New(key, model, append(opts, openai.WithHeaders(map[string]string{
			"api-key": key,
		}))...)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("Set OPENAI_API_KEY or AZURE_OPENAI_ENDPOINT")
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if org := os.Getenv("OPENAI_ORG_ID"); org != "" {
		opts = append(opts, openai.WithOrganization(org))
	}
	return openai.New(apiKey, model, opts...)
}

func knownModels() string {
	ids := make([]string, 0, len(openai.Models()))
	for _, m := range openai.Models() {
		ids = append(ids, m.String())
	}
	return strings.Join(ids, ", ")
}

// replyText pulls choices[0].message.content out of a decoded response.
func replyText(resp any) (string, bool) {
	obj, ok := resp.(map[string]any)
	if !ok {
		return "", false
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	msg, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := msg["content"].(string)
	return content, ok
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, openai.ErrAuth):
		return "auth"
	case errors.Is(err, openai.ErrStatus):
		return "status"
	case errors.Is(err, openai.ErrDecode):
		return "decode"
	case errors.Is(err, openai.ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
