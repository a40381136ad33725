// Package todo is the persisted todo list: add, toggle and remove operations over
// an ordered list that is rewritten to a durable store after every change.
package todo

import (
	"slices"
	"strings"

	"github.com/idilsaglam/classboard/internal/ids"
	"github.com/idilsaglam/classboard/internal/logger"
	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/observe"
	"github.com/idilsaglam/classboard/internal/store"
)

// StorageKey is the store key the list lives under unless WithKey says otherwise.
const StorageKey = "todoList"

// IDSource hands out identifiers for new todos.
type IDSource interface {
	NextID() int64
}

// Panel owns the in-memory list and keeps the store in step with it.
// It is not safe for concurrent use.
type Panel struct {
	store     store.Store
	key       string
	ids       IDSource
	log       *logger.Logger
	items     []model.Todo
	listeners observe.List[[]model.Todo]
}

// Option configures a Panel.
type Option func(*Panel)

func WithKey(key string) Option { return func(p *Panel) { p.key = key } }

func WithIDSource(src IDSource) Option { return func(p *Panel) { p.ids = src } }

func WithLogger(l *logger.Logger) Option { return func(p *Panel) { p.log = l } }

// Open builds a Panel and loads whatever the store holds under the key.
// A missing entry and an unreadable entry both start an empty list; only a
// failure to reach the store is returned as an error.
func Open(s store.Store, opts ...Option) (*Panel, error) {
	p := &Panel{store: s, key: StorageKey}
	for _, opt := range opts {
		opt(p)
	}
	if p.ids == nil {
		p.ids = ids.NewClock()
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	p.log = p.log.WithFields(map[string]any{"key": p.key})

	items, err := p.read()
	if err != nil {
		return nil, err
	}
	p.items = items
	return p, nil
}

func (p *Panel) read() ([]model.Todo, error) {
	raw, ok, err := p.store.Get(p.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Todo{}, nil
	}
	items, err := Decode(raw)
	if err != nil {
		p.log.WithFields(map[string]any{"error": err.Error()}).Warn("stored todo list is malformed; starting empty")
		return []model.Todo{}, nil
	}
	return p.sanitize(items), nil
}

// sanitize drops records that would break the list invariants: blank text or a repeated id.
func (p *Panel) sanitize(items []model.Todo) []model.Todo {
	seen := make(map[int64]struct{}, len(items))
	out := items[:0]
	dropped := 0
	for _, it := range items {
		if _, dup := seen[it.ID]; dup || strings.TrimSpace(it.Text) == "" {
			dropped++
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	if dropped > 0 {
		p.log.WithFields(map[string]any{"dropped": dropped}).Warn("ignored invalid stored todos")
	}
	return out
}

// commit persists next and, only if that worked, makes it the current list.
func (p *Panel) commit(next []model.Todo) error {
	enc, err := Encode(next)
	if err != nil {
		return err
	}
	if err := p.store.Set(p.key, enc); err != nil {
		p.log.Error(err, "failed to save todo list")
		return err
	}
	p.items = next
	p.log.WithFields(map[string]any{"items": len(next)}).Debug("todo list saved")
	p.listeners.Notify(p.Items())
	return nil
}

func (p *Panel) has(id int64) bool {
	return slices.IndexFunc(p.items, func(t model.Todo) bool { return t.ID == id }) >= 0
}

// Add appends a new undone todo holding text as typed. Text that is blank after
// trimming is ignored and added is false. Invalid UTF-8 is replaced with U+FFFD
// up front, the same way the JSON encoding would store it.
func (p *Panel) Add(text string) (todo model.Todo, added bool, err error) {
	if strings.TrimSpace(text) == "" {
		return model.Todo{}, false, nil
	}
	text = strings.ToValidUTF8(text, "\uFFFD")
	id := p.ids.NextID()
	for p.has(id) {
		id = p.ids.NextID()
	}
	todo = model.Todo{ID: id, Text: text}

	next := append(slices.Clone(p.items), todo)
	if err := p.commit(next); err != nil {
		return model.Todo{}, false, err
	}
	return todo, true, nil
}

// Toggle flips the done flag of the todo with id. An unknown id changes nothing.
func (p *Panel) Toggle(id int64) (found bool, err error) {
	i := slices.IndexFunc(p.items, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return false, nil
	}
	next := slices.Clone(p.items)
	next[i].Done = !next[i].Done
	if err := p.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the todo with id, keeping the order of the rest. An unknown id changes nothing.
func (p *Panel) Remove(id int64) (found bool, err error) {
	i := slices.IndexFunc(p.items, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(p.items), i, i+1)
	if err := p.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

// Reload re-reads the store, picking up writes made by another process.
// Subscribers are told only when the list actually differs.
func (p *Panel) Reload() (changed bool, err error) {
	items, err := p.read()
	if err != nil {
		return false, err
	}
	if slices.Equal(items, p.items) {
		return false, nil
	}
	p.items = items
	p.listeners.Notify(p.Items())
	return true, nil
}

// Items returns a copy of the list in order.
func (p *Panel) Items() []model.Todo { return slices.Clone(p.items) }

// Get returns the todo with id.
func (p *Panel) Get(id int64) (model.Todo, bool) {
	i := slices.IndexFunc(p.items, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return model.Todo{}, false
	}
	return p.items[i], true
}

func (p *Panel) Len() int { return len(p.items) }

// AllDone reports whether the list is non-empty and every todo is done.
func (p *Panel) AllDone() bool {
	if len(p.items) == 0 {
		return false
	}
	for _, t := range p.items {
		if !t.Done {
			return false
		}
	}
	return true
}

// Stats counts done and pending todos.
func (p *Panel) Stats() (done, pending int) {
	for _, t := range p.items {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Subscribe registers fn to receive the new list after every change.
func (p *Panel) Subscribe(fn func([]model.Todo)) (cancel func()) {
	return p.listeners.Subscribe(fn)
}
