package tools

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"
)

type textTransformArgs struct {
	Text      string `json:"text"`
	Operation string `json:"operation"`
}

// TextTransform applies a named pure string transform to the given text.
func TextTransform(_ context.Context, args json.RawMessage) (Result, error) {
	var a textTransformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return Result{}, err
	}

	switch a.Operation {
	case "uppercase":
		return Text(strings.ToUpper(a.Text)), nil
	case "lowercase":
		return Text(strings.ToLower(a.Text)), nil
	case "reverse":
		return Text(reverse(a.Text)), nil
	case "capitalize":
		return Text(capitalize(a.Text)), nil
	case "title":
		return Text(titleCase(a.Text)), nil
	case "count_words":
		return Textf("Word count: %d", len(strings.Fields(a.Text))), nil
	case "count_chars":
		total := len([]rune(a.Text))
		noSpaces := len([]rune(strings.ReplaceAll(a.Text, " ", "")))
		return Textf("Character count: %d (including spaces), %d (excluding spaces)", total, noSpaces), nil
	default:
		return Errorf("Unknown operation: %s", a.Operation), nil
	}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// titleCase upper-cases the first letter of every word and lower-cases the
// remainder, where a word starts after any non-letter rune.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			inWord = false
			b.WriteRune(r)
			continue
		}
		if inWord {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		inWord = true
	}
	return b.String()
}
