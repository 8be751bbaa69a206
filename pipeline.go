package tgmarkup

// DefaultMaxMessageLength is Telegram's limit for a text message, in UTF-16
// code units.
const DefaultMaxMessageLength = 4096

// Messages parses markup and splits the result into chunks that fit in one
// message each.
//
// Chunks are cut after a newline where possible; entities crossing a cut are
// clipped into both chunks. Leading and trailing newlines are stripped from
// every chunk and empty chunks are dropped. maxMessageLength <= 0 means
// DefaultMaxMessageLength.
func Messages(markup string, syntax Syntax, maxMessageLength int, opts ...Option) ([]TextChunk, error) {
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxMessageLength
	}

	res, err := Parse(markup, syntax, opts...)
	if err != nil {
		return nil, err
	}

	var result []TextChunk
	for _, chunk := range SplitEntities(res.Text, res.Entities, maxMessageLength) {
		chunkText, chunkEntities := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if chunkText != "" {
			result = append(result, TextChunk{Text: chunkText, Entities: chunkEntities})
		}
	}
	return result, nil
}
