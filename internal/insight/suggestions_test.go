package insight

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseSuggestionsJSONEncodedString(t *testing.T) {
	got := ParseSuggestions(TextPayload(`["Drink more water.", "Eat more protein."]`))
	want := []string{"Drink more water.", "Eat more protein."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSuggestions = %#v, want %#v", got, want)
	}
}

func TestParseSuggestionsNumberedText(t *testing.T) {
	text := "1. Drink water daily to stay hydrated.\n2. Add protein to every meal for muscle support."
	got := ParseSuggestions(TextPayload(text))
	want := []string{
		"Drink water daily to stay hydrated.",
		"Add protein to every meal for muscle support.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSuggestions = %#v, want %#v", got, want)
	}
	for _, s := range got {
		if utf8.RuneCountInString(s) <= 20 {
			t.Fatalf("fragment %q should have been dropped", s)
		}
	}
}

func TestParseSuggestionsTruncatesList(t *testing.T) {
	in := []string{"one", "two", "three", "four", "five", "six"}
	got := ParseSuggestions(ListPayload(in))
	if len(got) != MaxSuggestions {
		t.Fatalf("len = %d, want %d", len(got), MaxSuggestions)
	}
	if !reflect.DeepEqual(got, in[:5]) {
		t.Fatalf("ParseSuggestions = %#v", got)
	}
}

func TestParseSuggestionsVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    []string
	}{
		{
			name:    "list drops blanks",
			payload: ListPayload([]string{"  Eat vegetables with lunch.  ", "", "   ", "Walk after dinner."}),
			want:    []string{"Eat vegetables with lunch.", "Walk after dinner."},
		},
		{
			name:    "json scalar is wrapped",
			payload: TextPayload(`"Swap soda for sparkling water."`),
			want:    []string{"Swap soda for sparkling water."},
		},
		{
			name:    "code fenced json array",
			payload: TextPayload("```json\n[\"Have a protein-rich breakfast.\", \"Keep a bottle at your desk.\"]\n```"),
			want:    []string{"Have a protein-rich breakfast.", "Keep a bottle at your desk."},
		},
		{
			name:    "free text strips quotes and brackets",
			payload: TextPayload("Here are tips:\n[\"Eat a salad before your main course.\n\"Replace one snack with a piece of fruit.\"]"),
			want:    []string{"Eat a salad before your main course.", "Replace one snack with a piece of fruit."},
		},
		{
			// "<digit>. " is a list marker even inside prose, so a spaced
			// decimal splits and the short head is dropped. Kept on purpose.
			name:    "spaced decimal splits like a list marker",
			payload: TextPayload("Aim for 2. 5 liters of water across the day."),
			want:    []string{"5 liters of water across the day."},
		},
		{
			name:    "short fragments fall back to raw text",
			payload: TextPayload("Drink water."),
			want:    []string{"Drink water."},
		},
		{
			name:    "other payload is stringified",
			payload: OtherPayload(42.0),
			want:    []string{"42"},
		},
		{
			name:    "blank list entries fall back to raw list",
			payload: ListPayload([]string{"", " "}),
			want:    []string{`[""," "]`},
		},
		{
			name:    "empty list stays empty",
			payload: ListPayload(nil),
			want:    []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSuggestions(tc.payload)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseSuggestions = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestParseSuggestionsFreeTextIsBounded(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 8; i++ {
		sb.WriteString("Remember to log every single meal you eat today.\n")
	}
	got := ParseSuggestions(TextPayload(sb.String()))
	if len(got) != MaxSuggestions {
		t.Fatalf("len = %d, want %d", len(got), MaxSuggestions)
	}
}

func TestPayloadFromJSON(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		kind   PayloadKind
		wantOK bool
	}{
		{name: "string", raw: `"1. Drink more"`, kind: PayloadText, wantOK: true},
		{name: "array", raw: `["a", 2, true]`, kind: PayloadList, wantOK: true},
		{name: "object", raw: `{"tip":"x"}`, kind: PayloadOther, wantOK: true},
		{name: "null", raw: `null`},
		{name: "empty string", raw: `""`},
		{name: "blank string", raw: `"   "`},
		{name: "empty array", raw: `[]`},
		{name: "array of blanks", raw: `["", " ", null]`},
		{name: "absent", raw: ``},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := PayloadFromJSON(json.RawMessage(tc.raw))
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && p.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s", p.Kind, tc.kind)
			}
		})
	}

	p, _ := PayloadFromJSON(json.RawMessage(`["a", 2, true]`))
	if want := []string{"a", "2", "true"}; !reflect.DeepEqual(p.List, want) {
		t.Fatalf("List = %#v, want %#v", p.List, want)
	}
	p, _ = PayloadFromJSON(json.RawMessage(`{"tip":"x"}`))
	if p.Other != `{"tip":"x"}` {
		t.Fatalf("Other = %q", p.Other)
	}
}
