package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Field is one extra key=value pair attached to a log entry.
type Field struct {
	Key   string
	Value string
}

// Line is one parsed logrus text line.
type Line struct {
	Time    time.Time
	Level   string
	Message string
	Fields  []Field
	Raw     string
}

// Tail returns the last maxLines entries of the log at path, oldest first.
// A missing or empty file yields nil.
func Tail(path string, maxLines int) ([]Line, error) {
	raw, err := readLast(path, maxLines)
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, Parse(r))
	}
	return lines, nil
}

func readLast(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, 0, maxLines)
	next := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if len(ring) < maxLines {
			ring = append(ring, text)
			continue
		}
		ring[next] = text
		next = (next + 1) % maxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return append(ring[next:], ring[:next]...), nil
}

// Parse splits a logrus TextFormatter line into its parts. Lines that are
// not key=value shaped come back with Message set to the raw text.
func Parse(raw string) Line {
	line := Line{Raw: raw}
	pairs, ok := splitPairs(raw)
	if !ok {
		line.Message = raw
		return line
	}
	for _, p := range pairs {
		switch p.Key {
		case "time":
			if ts, err := time.Parse(time.RFC3339, p.Value); err == nil {
				line.Time = ts
			}
		case "level":
			line.Level = p.Value
		case "msg":
			line.Message = p.Value
		default:
			line.Fields = append(line.Fields, p)
		}
	}
	if line.Level == "" && line.Message == "" {
		line.Message = raw
		line.Fields = nil
	}
	return line
}

func splitPairs(s string) ([]Field, bool) {
	var out []Field
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return out, len(out) > 0
		}
		eq := strings.IndexByte(s, '=')
		if eq <= 0 || strings.ContainsRune(s[:eq], ' ') {
			return nil, false
		}
		key := s[:eq]
		s = s[eq+1:]

		var value string
		if strings.HasPrefix(s, `"`) {
			end := closingQuote(s)
			if end < 0 {
				return nil, false
			}
			unquoted, err := strconv.Unquote(s[:end+1])
			if err != nil {
				return nil, false
			}
			value = unquoted
			s = s[end+1:]
		} else {
			sp := strings.IndexByte(s, ' ')
			if sp < 0 {
				sp = len(s)
			}
			value = s[:sp]
			s = s[sp:]
		}
		out = append(out, Field{Key: key, Value: value})
	}
}

// closingQuote returns the index of the quote ending the string literal at
// the start of s, or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
