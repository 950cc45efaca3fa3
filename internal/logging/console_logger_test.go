package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	logger.Verbose("classified %s", "Foo.cls")

	assert.Contains(t, buf.String(), "classified Foo.cls")
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)

	logger.Verbose("classified %s", "Foo.cls")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)

	logger.Info("info message: %s", "value")
	logger.Warn("wildcard member %q skipped", "*")
	logger.Error("error message: %d", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 3) {
		assert.Contains(t, lines[0], "INFO")
		assert.Contains(t, lines[0], "info message: value")
		assert.Contains(t, lines[1], "WARN")
		assert.Contains(t, lines[1], `wildcard member "*" skipped`)
		assert.Contains(t, lines[2], "ERRO")
		assert.Contains(t, lines[2], "error message: 42")
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Warn("warn %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 30)
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Warn("warn %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	wg.Wait()
}
