package todo

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/classboard/internal/model"
)

// Encode serializes the list as a JSON array. A nil or empty list encodes as "[]".
func Encode(items []model.Todo) (string, error) {
	if items == nil {
		items = []model.Todo{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses a JSON array of todos. "null" decodes to an empty list.
func Decode(s string) ([]model.Todo, error) {
	var items []model.Todo
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Todo{}
	}
	return items, nil
}
