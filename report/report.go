// Package report persists the human-readable run record: one line per
// method invocation, appended so consecutive runs accumulate.
package report

import (
	"fmt"
	"os"
	"sync"
)

type Writer struct {
	mu   sync.Mutex
	file *os.File
}

func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open report file: %w", err)
	}
	return &Writer{file: file}, nil
}

// Result records a view method's outcome.
func (w *Writer) Result(label, result string) error {
	return w.writeLine(fmt.Sprintf("%s: %s", label, result))
}

// TxHash records an accepted state-changing call.
func (w *Writer) TxHash(label, hash string) error {
	return w.writeLine(fmt.Sprintf("%s: TX Hash %s", label, hash))
}

// Error records a terminal failure for one method.
func (w *Writer) Error(label string, err error) error {
	return w.writeLine(fmt.Sprintf("%s: Error - %v", label, err))
}

func (w *Writer) writeLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.file, line)
	return err
}

func (w *Writer) Close() error {
	return w.file.Close()
}
