package insight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSuggestions bounds every parsed suggestion list.
	MaxSuggestions = 5
	// minFragmentLength drops headers and stray fragments from free text.
	minFragmentLength = 20
)

// listMarker splits free text on "1. " style markers or newline runs.
var listMarker = regexp.MustCompile(`\d+\.\s+|\n+`)

// PayloadKind discriminates the shapes an AI response can arrive in.
type PayloadKind int

const (
	PayloadOther PayloadKind = iota
	PayloadList
	PayloadText
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadList:
		return "list"
	case PayloadText:
		return "text"
	default:
		return "other"
	}
}

// Payload is a suggestions response resolved once at the transport boundary.
// Exactly one of List, Text or Other is meaningful, selected by Kind.
type Payload struct {
	Kind  PayloadKind
	List  []string
	Text  string
	Other string
}

func ListPayload(items []string) Payload { return Payload{Kind: PayloadList, List: items} }

func TextPayload(text string) Payload { return Payload{Kind: PayloadText, Text: text} }

func OtherPayload(v any) Payload { return Payload{Kind: PayloadOther, Other: stringify(v)} }

// PayloadFromJSON resolves a raw JSON value. ok is false when the value is
// absent, null, a blank string or a list without a single non-blank entry,
// which callers report as a missing-content failure.
func PayloadFromJSON(raw json.RawMessage) (p Payload, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return Payload{}, false
	}
	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return TextPayload(trimmed), true
	}
	switch v := decoded.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return Payload{}, false
		}
		return TextPayload(v), true
	case []any:
		items := stringifyAll(v)
		if len(cleanSuggestions(items)) == 0 {
			return Payload{}, false
		}
		return ListPayload(items), true
	default:
		return OtherPayload(v), true
	}
}

// String is the stringified raw payload. An empty list is blank.
func (p Payload) String() string {
	switch p.Kind {
	case PayloadList:
		if len(p.List) == 0 {
			return ""
		}
		b, _ := json.Marshal(p.List)
		return string(b)
	case PayloadText:
		return p.Text
	default:
		return p.Other
	}
}

// ParseSuggestions turns any payload into at most MaxSuggestions non-empty
// tips. It never fails: when nothing survives cleanup, a non-blank payload
// comes back whole as a single entry.
func ParseSuggestions(p Payload) []string {
	var items []string
	switch p.Kind {
	case PayloadList:
		items = p.List
	case PayloadText:
		items = parseText(p.Text)
	case PayloadOther:
		items = []string{p.Other}
	}
	out := cleanSuggestions(items)
	if len(out) == 0 {
		if raw := strings.TrimSpace(p.String()); raw != "" {
			return []string{raw}
		}
	}
	return out
}

func parseText(text string) []string {
	text = trimCodeFence(text)
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err == nil {
		if arr, ok := decoded.([]any); ok {
			return stringifyAll(arr)
		}
		return []string{stringify(decoded)}
	}
	return splitFreeText(text)
}

func splitFreeText(text string) []string {
	var out []string
	for _, part := range listMarker.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= minFragmentLength {
			continue
		}
		out = append(out, strings.TrimSpace(strings.Trim(part, `[]"“”`)))
	}
	return out
}

func cleanSuggestions(items []string) []string {
	out := make([]string, 0, MaxSuggestions)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

func stringifyAll(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, stringify(v))
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
