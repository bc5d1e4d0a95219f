package task

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	task := New(5, "Write report", testNow)
	if task.ID != 5 || task.Text != "Write report" || task.Completed {
		t.Errorf("New: got %+v", task)
	}
	if !task.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt: got %v, want %v", task.CreatedAt, testNow)
	}
}

func TestRestoreAcceptsAnything(t *testing.T) {
	task := Restore(-1, "", true, time.Time{})
	if task.ID != -1 || task.Text != "" || !task.Completed || !task.CreatedAt.IsZero() {
		t.Errorf("Restore: got %+v", task)
	}
}

func TestToggle(t *testing.T) {
	task := New(1, "x", testNow)
	task.Toggle()
	if !task.Completed {
		t.Error("expected completed after one toggle")
	}
	task.Toggle()
	if task.Completed {
		t.Error("expected pending after two toggles")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		completed bool
		want      string
		status    string
	}{
		{completed: false, want: "Buy milk (Pending)", status: "pending"},
		{completed: true, want: "Buy milk (Completed)", status: "completed"},
	}
	for _, tt := range tests {
		task := Restore(1, "Buy milk", tt.completed, testNow)
		if got := task.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
		if got := task.Status(); got != tt.status {
			t.Errorf("Status: got %q, want %q", got, tt.status)
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	t.Run("formats with layout", func(t *testing.T) {
		data, err := json.Marshal(NewTimestamp(testNow))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `"2024-06-10 08:13:20"` {
			t.Errorf("got %s", data)
		}
	})

	t.Run("zero is null", func(t *testing.T) {
		data, err := json.Marshal(Timestamp{})
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "null" {
			t.Errorf("got %s, want null", data)
		}
	})

	t.Run("parses layout in local time", func(t *testing.T) {
		var ts Timestamp
		if err := json.Unmarshal([]byte(`"2024-06-10 08:13:20"`), &ts); err != nil {
			t.Fatal(err)
		}
		want := time.Date(2024, 6, 10, 8, 13, 20, 0, time.Local)
		if !ts.Equal(want) {
			t.Errorf("got %v, want %v", ts.Time, want)
		}
	})

	t.Run("null and empty string are zero", func(t *testing.T) {
		for _, input := range []string{`null`, `""`} {
			ts := NewTimestamp(testNow)
			if err := json.Unmarshal([]byte(input), &ts); err != nil {
				t.Fatalf("%s: %v", input, err)
			}
			if !ts.IsZero() {
				t.Errorf("%s: got %v, want zero", input, ts.Time)
			}
		}
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, input := range []string{`"2024-06-10T08:13:20Z"`, `12`, `"June 10"`} {
			var ts Timestamp
			err := json.Unmarshal([]byte(input), &ts)
			if err == nil {
				t.Errorf("%s: expected error", input)
				continue
			}
			if !strings.Contains(err.Error(), "createdAt") {
				t.Errorf("%s: error %q does not name the field", input, err)
			}
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("null and blank are ErrNullCollection", func(t *testing.T) {
		for _, input := range []string{"", "   ", "null", "\nnull\n"} {
			_, err := Decode([]byte(input))
			if !errors.Is(err, ErrNullCollection) {
				t.Errorf("%q: got %v, want ErrNullCollection", input, err)
			}
		}
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		tasks, err := Decode([]byte(`[{"id": 3, "text": "x", "completed": false, "priority": 1}]`))
		if err != nil {
			t.Fatal(err)
		}
		if len(tasks) != 1 || tasks[0].ID != 3 {
			t.Errorf("got %+v", tasks)
		}
	})

	t.Run("parse errors are wrapped", func(t *testing.T) {
		_, err := Decode([]byte(`{`))
		if err == nil || errors.Is(err, ErrNullCollection) {
			t.Fatalf("got %v, want parse error", err)
		}
		if !strings.Contains(err.Error(), "parse task file") {
			t.Errorf("error %q lacks context", err)
		}
	})
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("got %q, want %q", data, "[]\n")
	}
}

func TestWithJSONExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "tasks", want: "tasks.json"},
		{in: "tasks.json", want: "tasks.json"},
		{in: "TASKS.JSON", want: "TASKS.JSON"},
		{in: "backup.Json", want: "backup.Json"},
		{in: "tasks.txt", want: "tasks.txt.json"},
		{in: "dir/out", want: "dir/out.json"},
	}
	for _, tt := range tests {
		if got := WithJSONExt(tt.in); got != tt.want {
			t.Errorf("WithJSONExt(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIDGenerator(t *testing.T) {
	t.Run("follows the clock when it advances", func(t *testing.T) {
		now := testNow
		g := newIDGenerator(func() time.Time { return now })
		first := g.Next()
		now = now.Add(5 * time.Millisecond)
		if second := g.Next(); second != first+5 {
			t.Errorf("got %d, want %d", second, first+5)
		}
	})

	t.Run("stays monotonic when the clock goes back", func(t *testing.T) {
		now := testNow
		g := newIDGenerator(func() time.Time { return now })
		first := g.Next()
		now = now.Add(-time.Minute)
		if second := g.Next(); second <= first {
			t.Errorf("got %d after %d", second, first)
		}
	})

	t.Run("skips observed ids", func(t *testing.T) {
		g := newIDGenerator(fixedClock)
		g.Observe([]Task{{ID: testNow.UnixMilli() + 10}})
		if got := g.Next(); got != testNow.UnixMilli()+11 {
			t.Errorf("got %d, want %d", got, testNow.UnixMilli()+11)
		}
	})
}
