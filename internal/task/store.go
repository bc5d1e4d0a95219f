package task

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Store owns the in-memory task collection and its backing file.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	path    string
	tasks   []Task
	ids     *idGenerator
	logger  *log.Logger
	lastErr error
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	logger *log.Logger
	now    func() time.Time
}

// WithLogger sets the logger that receives persistence errors.
func WithLogger(logger *log.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// WithClock sets the time source for ids and creation times.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) {
		o.now = now
	}
}

// Stats summarizes the collection.
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

func (s Stats) String() string {
	return fmt.Sprintf("Total: %d tasks | Completed: %d | Pending: %d", s.Total, s.Completed, s.Pending)
}

// Open returns a store backed by path and loads it if the file exists.
// A missing file leaves the store empty.
func Open(path string, opts ...Option) *Store {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.now == nil {
		o.now = time.Now
	}

	s := &Store{
		path:   path,
		tasks:  []Task{},
		ids:    newIDGenerator(o.now),
		logger: o.logger,
	}
	s.Load(path)
	return s
}

// Path returns the default file path.
func (s *Store) Path() string {
	return s.path
}

// LastErr returns the error from the most recent save or load, if any.
func (s *Store) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Add appends a new pending task and saves the collection.
// The task stays in memory even if the save fails.
func (s *Store) Add(text string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := New(s.ids.Next(), text, s.ids.now())
	s.tasks = append(s.tasks, t)
	s.save(s.path)
	return t
}

// Delete removes the first task with id and reports whether one was removed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.save(s.path)
	return true
}

// ToggleStatus flips the first task with id and reports whether one was found.
func (s *Store) ToggleStatus(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Toggle()
	s.save(s.path)
	return true
}

// Clear removes every task and returns how many were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tasks)
	if n == 0 {
		return 0
	}
	s.tasks = []Task{}
	s.save(s.path)
	return n
}

// Get returns the first task with id.
func (s *Store) Get(id int64) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// ListAll returns a copy of the collection in its current order.
func (s *Store) ListAll() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// CountPending returns the number of tasks not yet completed.
func (s *Store) CountPending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats().Pending
}

// CountCompleted returns the number of completed tasks.
func (s *Store) CountCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats().Completed
}

// Stats returns all counts from a single snapshot.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats()
}

// Save writes the collection to path. Errors are logged, not returned.
func (s *Store) Save(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(path)
}

// Load replaces the collection with the contents of path.
// It returns false, leaving the collection unchanged, when the file is
// missing, unreadable, malformed, empty or null.
func (s *Store) Load(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(path)
}

// ImportFrom loads path and, on success, saves the result to the default file.
// The return value reflects the load only.
func (s *Store) ImportFrom(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.load(path) {
		return false
	}
	s.save(s.path)
	return true
}

// ExportTo writes the collection to path.
func (s *Store) ExportTo(path string) bool {
	return s.Save(path)
}

func (s *Store) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
	}
	return st
}

func (s *Store) save(path string) bool {
	if err := WriteFile(path, s.tasks); err != nil {
		s.logger.Error("saving tasks", "path", path, "err", err)
		s.lastErr = err
		return false
	}
	s.lastErr = nil
	return true
}

func (s *Store) load(path string) bool {
	tasks, err := ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		s.lastErr = nil
		return false
	case errors.Is(err, ErrNullCollection):
		s.logger.Warn("task file holds no tasks", "path", path)
		s.lastErr = err
		return false
	default:
		s.logger.Error("loading tasks", "path", path, "err", err)
		s.lastErr = err
		return false
	}

	s.tasks = tasks
	s.ids.Observe(tasks)
	s.lastErr = nil
	return true
}
