package ass

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Parse reads a subtitle file from raw bytes. It is tolerant of sections
// and keys it does not know, but a file without a well-formed [Events]
// section is a parse failure for the whole file.
func Parse(data []byte) (*Document, error) {
	decoded, err := decodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var (
		doc        Document
		inEvents   bool
		sawEvents  bool
		format     []string
		lineNumber int
	)

	sc := bufio.NewScanner(bytes.NewReader(decoded))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNumber++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			inEvents = strings.EqualFold(section, "Events")
			if inEvents {
				sawEvents = true
				format = nil
			}
			continue
		}
		if !inEvents {
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: event line without a descriptor", lineNumber)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimLeft(value, " \t")

		if strings.EqualFold(key, "Format") {
			format = splitFormat(value)
			continue
		}

		var kind EventKind
		switch {
		case strings.EqualFold(key, "Dialogue"):
			kind = EventDialogue
		case strings.EqualFold(key, "Comment"):
			kind = EventComment
		case strings.EqualFold(key, "Picture"), strings.EqualFold(key, "Movie"),
			strings.EqualFold(key, "Sound"), strings.EqualFold(key, "Command"):
			kind = EventOther
		default:
			// Незнакомый дескриптор — пропускаем молча.
			continue
		}
		if format == nil {
			return nil, fmt.Errorf("line %d: event before Format line in [Events]", lineNumber)
		}
		ev, err := parseEvent(kind, format, value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		doc.Events = append(doc.Events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawEvents {
		return nil, fmt.Errorf("no [Events] section")
	}
	return &doc, nil
}

// ParseFile reads and parses path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func splitFormat(value string) []string {
	parts := strings.Split(value, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return fields
}

// parseEvent maps the comma-separated value onto the declared format.
// Text is always the last field and may itself contain commas, so the
// value is split at most len(format)-1 times.
func parseEvent(kind EventKind, format []string, value string) (Event, error) {
	parts := strings.SplitN(value, ",", len(format))
	if len(parts) != len(format) {
		return Event{}, fmt.Errorf("expected %d fields, got %d", len(format), len(parts))
	}
	ev := Event{Kind: kind}
	for i, field := range format {
		raw := parts[i]
		switch {
		case strings.EqualFold(field, "Start"):
			t, err := ParseTime(raw)
			if err != nil {
				return Event{}, err
			}
			ev.Start = t
		case strings.EqualFold(field, "End"):
			t, err := ParseTime(raw)
			if err != nil {
				return Event{}, err
			}
			ev.End = t
		case strings.EqualFold(field, "Style"):
			ev.Style = strings.TrimSpace(raw)
		case strings.EqualFold(field, "Name"):
			ev.Name = strings.TrimSpace(raw)
		case strings.EqualFold(field, "Effect"):
			ev.Effect = strings.TrimSpace(raw)
		case strings.EqualFold(field, "Text"):
			ev.Text = raw
		}
	}
	return ev, nil
}
