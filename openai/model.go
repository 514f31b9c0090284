// Copyright (c) Microsoft. All rights reserved.

package openai

import (
	"fmt"
	"strconv"
)

// Model selects the backend model a [Client] targets.
type Model int

const (
	GPT35Turbo Model = iota
	GPT35Turbo16k
	GPT35TurboInstruct
	GPT35Turbo1106
	GPT41106Preview
	GPT4
	GPT432k
	GPT4Instruct
	GPT432k0613
)

// modelIDs maps each Model to the identifier the API expects.
// Indexed by Model; keep in declaration order.
var modelIDs = [...]string{
	GPT35Turbo:         "gpt-3.5-turbo",
	GPT35Turbo16k:      "gpt-3.5-turbo-16k",
	GPT35TurboInstruct: "gpt-3.5-turbo-instruct",
	GPT35Turbo1106:     "gpt-3.5-turbo-1106",
	GPT41106Preview:    "gpt-4-1106-preview",
	GPT4:               "gpt-4",
	GPT432k:            "gpt-4-32k",
	GPT4Instruct:       "gpt-4-instruct",
	GPT432k0613:        "gpt-4-32k-0613",
}

// Valid reports whether m is one of the declared models.
func (m Model) Valid() bool {
	return m >= 0 && int(m) < len(modelIDs)
}

// String returns the API identifier for m, e.g. "gpt-3.5-turbo".
func (m Model) String() string {
	if !m.Valid() {
		return "Model(" + strconv.Itoa(int(m)) + ")"
	}
	return modelIDs[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m Model) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(m))
	}
	return []byte(modelIDs[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseModel returns the Model whose identifier is id.
func ParseModel(id string) (Model, error) {
	for i, s := range modelIDs {
		if s == id {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, id)
}

// Models returns every supported model in declaration order.
func Models() []Model {
	ms := make([]Model, len(modelIDs))
	for i := range modelIDs {
		ms[i] = Model(i)
	}
	return ms
}
