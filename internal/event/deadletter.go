package event

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DeadLetterEntry is one JSON line in the dead-letter file.
type DeadLetterEntry struct {
	Format    string    `json:"format"`
	FailedAt  time.Time `json:"failed_at"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	Event     Event     `json:"event"`
}

// DeadLetterWriter keeps events whose delivery retries ran out so they can be
// replayed on the next start.
type DeadLetterWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
}

func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgOpenDeadLetter, path, err)
	}
	return &DeadLetterWriter{path: path, file: f}, nil
}

func (w *DeadLetterWriter) Write(evt Event, attempts int, cause error) error {
	entry := DeadLetterEntry{
		Format:   DeadLetterFormat,
		FailedAt: time.Now().UTC(),
		Attempts: attempts,
		Event:    evt,
	}
	if cause != nil {
		entry.LastError = cause.Error()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeDeadLetter, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteDeadLetter, err)
	}
	return nil
}

// Drain reads every entry and truncates the file. Lines that fail to decode
// are counted in skipped and dropped.
func (w *DeadLetterWriter) Drain() (entries []DeadLetterEntry, skipped int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgReadDeadLetter, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxDeadLetterLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e DeadLetterEntry
		if json.Unmarshal(line, &e) != nil || e.Event.Type == "" {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", ErrMsgReadDeadLetter, err)
	}

	if err := w.file.Truncate(0); err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", ErrMsgWriteDeadLetter, err)
	}
	return entries, skipped, nil
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}
