// Package parse turns free-text entry like "2 kg äpplen och fem kiwi" into
// structured items. The sync core treats its output as ready-made todos; the
// vocabulary is Swedish because that is what the entry field speaks.
package parse

import (
	"regexp"
	"strings"
)

// Parsed is one structured item extracted from raw input.
type Parsed struct {
	Amount string
	Unit   string
	Text   string
}

var (
	// conjunction splitting: "mjölk och bröd" is two items
	conjunctionPattern = regexp.MustCompile(`(?i)\s+och\s+`)

	// [amount] [unit] item, e.g. "4 apelsiner", "2 kg äpplen", "fem kiwi"
	itemPattern = regexp.MustCompile(`(?i)^(\d+-\d+|\d+[,.]?\d*|en|ett|två|tre|fyra|fem|sex|sju|åtta|nio|tio)\s*([a-zåäö]+)?\s+(.+)$`)
)

var spelledAmounts = map[string]string{
	"en": "1", "ett": "1", "två": "2", "tre": "3", "fyra": "4",
	"fem": "5", "sex": "6", "sju": "7", "åtta": "8", "nio": "9", "tio": "10",
}

var units = map[string]string{
	"st": "st", "stycken": "st", "styck": "st",
	"kg": "kg", "kilo": "kg",
	"g": "g", "gram": "g",
	"hg": "hg", "hekto": "hg",
	"l": "l", "liter": "l",
	"dl": "dl", "deciliter": "dl",
	"ml": "ml",
	"msk": "msk", "matsked": "msk",
	"tsk": "tsk", "tesked": "tsk",
	"krm":  "krm",
	"påse": "påse", "påsar": "påse",
	"burk": "burk", "burkar": "burk",
	"paket": "paket",
	"förp":  "förp", "förpackning": "förp",
}

// Items splits raw input on the conjunction and extracts amount/unit from
// each part. Input that matches no pattern passes through as plain text.
func Items(raw string) []Parsed {
	var out []Parsed
	for _, part := range conjunctionPattern.Split(raw, -1) {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		match := itemPattern.FindStringSubmatch(trimmed)
		if match == nil {
			out = append(out, Parsed{Text: trimmed})
			continue
		}

		rawAmount, possibleUnit, text := match[1], match[2], match[3]
		unit := normalizeUnit(possibleUnit)
		if unit == "" && possibleUnit != "" {
			// the middle word was not a unit, it belongs to the item name
			text = possibleUnit + " " + text
		}
		out = append(out, Parsed{
			Amount: normalizeAmount(rawAmount),
			Unit:   unit,
			Text:   strings.TrimSpace(text),
		})
	}
	if len(out) == 0 {
		return []Parsed{{Text: strings.TrimSpace(raw)}}
	}
	return out
}

func normalizeAmount(amount string) string {
	if digits, ok := spelledAmounts[strings.ToLower(amount)]; ok {
		return digits
	}
	return strings.ReplaceAll(amount, ",", ".")
}

func normalizeUnit(unit string) string {
	return units[strings.ToLower(unit)]
}

// Format joins amount, unit and text back into a display string.
func Format(amount, unit, text string) string {
	parts := make([]string, 0, 3)
	if amount != "" {
		parts = append(parts, amount)
	}
	if unit != "" {
		parts = append(parts, unit)
	}
	parts = append(parts, text)
	return strings.Join(parts, " ")
}
