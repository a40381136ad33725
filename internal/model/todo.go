package model

// Todo is a single task on the todo list.
// The JSON shape is the one persisted under the todo storage key.
type Todo struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
