package tgmarkup

import (
	"strings"

	"github.com/riverfjs/tgmarkup/internal/codeunit"
	"github.com/riverfjs/tgmarkup/internal/types"
)

// 导出类型别名
type (
	Entity      = types.Entity
	EntityType  = types.Type
	UnclosedTag = types.UnclosedTag
)

// Entity types.
const (
	Bold          = types.Bold
	Italic        = types.Italic
	Underline     = types.Underline
	Strikethrough = types.Strikethrough
	Code          = types.Code
	Pre           = types.Pre
	Spoiler       = types.Spoiler
	TextLink      = types.TextLink
	CustomEmoji   = types.CustomEmoji
	Blockquote    = types.Blockquote
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return codeunit.Len(text)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
}

// SplitEntities splits (text, entities) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split right after a newline. Entities that span a split boundary
// are clipped into both chunks. A surrogate pair is never split.
func SplitEntities(text string, entities []Entity, maxUTF16Len int) []TextChunk {
	units := codeunit.Encode(text)
	if len(units) <= maxUTF16Len || maxUTF16Len <= 0 {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	var result []TextChunk
	for start := 0; start < len(units); {
		end := len(units)
		if end-start > maxUTF16Len {
			end = splitPoint(units, start, start+maxUTF16Len)
		}
		result = append(result, TextChunk{
			Text:     units.Slice(start, end).String(),
			Entities: clipEntities(entities, start, end),
		})
		start = end
	}
	return result
}

// splitPoint picks where a chunk starting at start and allowed to reach
// limit should end.
func splitPoint(units codeunit.Text, start, limit int) int {
	// Last newline that fits
	for i := limit; i > start; i-- {
		if units[i-1] == '\n' {
			return i
		}
	}
	// No newline split fits -- hard split, but not inside a surrogate pair
	if isLowSurrogate(units[limit]) && limit-1 > start {
		return limit - 1
	}
	return limit
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xdc00 && u < 0xe000
}

// clipEntities returns the entities overlapping [start, end), clipped to it
// and shifted so that start becomes offset 0.
func clipEntities(entities []Entity, start, end int) []Entity {
	var clipped []Entity
	for _, ent := range entities {
		if ent.End() <= start || ent.Offset >= end {
			continue // No overlap
		}
		newEnt := ent
		newEnt.Offset = max(ent.Offset, start) - start
		newEnt.Length = min(ent.End(), end) - start - newEnt.Offset
		if newEnt.Length <= 0 {
			continue
		}
		clipped = append(clipped, newEnt)
	}
	return clipped
}

// stripNewlinesAdjust strips leading/trailing newlines from text and adjusts entity offsets.
func stripNewlinesAdjust(text string, entities []Entity) (string, []Entity) {
	return trimAdjust(text, entities, func(r rune) bool { return r == '\n' })
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []Entity) (string, []Entity) {
	return trimAdjust(text, entities, isSpace)
}

func trimAdjust(text string, entities []Entity, cut func(rune) bool) (string, []Entity) {
	trimmed := strings.TrimLeftFunc(text, cut)
	leading := UTF16Len(text[:len(text)-len(trimmed)])
	trimmed = strings.TrimRightFunc(trimmed, cut)
	if trimmed == text {
		return text, entities
	}
	if trimmed == "" {
		return trimmed, nil
	}
	return trimmed, clipEntities(entities, leading, leading+UTF16Len(trimmed))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
