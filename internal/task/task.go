package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the on-disk format of createdAt.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp is a time that serializes with TimeLayout.
// The zero value serializes as JSON null.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Local().Format(TimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	ts.Time = t
	return nil
}

// Task represents a single to-do item.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt Timestamp `json:"createdAt"`
}

// New returns a pending task created at createdAt.
func New(id int64, text string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Text:      text,
		CreatedAt: NewTimestamp(createdAt),
	}
}

// Restore rebuilds a task from stored values. Nothing is validated.
func Restore(id int64, text string, completed bool, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Text:      text,
		Completed: completed,
		CreatedAt: NewTimestamp(createdAt),
	}
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Status returns "completed" or "pending".
func (t Task) Status() string {
	if t.Completed {
		return "completed"
	}
	return "pending"
}

func (t Task) String() string {
	if t.Completed {
		return t.Text + " (Completed)"
	}
	return t.Text + " (Pending)"
}
