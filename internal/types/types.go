package types

import "fmt"

// Type 表示消息实体的格式类型，取值与 Bot API 的 MessageEntity.type 一致
type Type string

const (
	Bold          Type = "bold"
	Italic        Type = "italic"
	Underline     Type = "underline"
	Strikethrough Type = "strikethrough"
	Code          Type = "code" // monowidth string
	Pre           Type = "pre"  // monowidth block
	Spoiler       Type = "spoiler"
	TextLink      Type = "text_link"
	CustomEmoji   Type = "custom_emoji"
	Blockquote    Type = "blockquote"
)

// Entity 表示一个格式化区间
//
// Offset and Length are in UTF-16 code units. Only the field matching Type
// is meaningful: Language for pre, URL for text_link, CustomEmojiID for
// custom_emoji, Collapsed for blockquote.
type Entity struct {
	Type          Type   `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID int64  `json:"custom_emoji_id,omitempty,string"`
	Collapsed     bool   `json:"collapsed,omitempty"`
}

// End returns the offset one past the last code unit covered by e.
func (e Entity) End() int {
	return e.Offset + e.Length
}

func (e Entity) String() string {
	switch e.Type {
	case Pre:
		if e.Language != "" {
			return fmt.Sprintf("%s(%d,%d,%q)", e.Type, e.Offset, e.Length, e.Language)
		}
	case TextLink:
		return fmt.Sprintf("%s(%d,%d,%q)", e.Type, e.Offset, e.Length, e.URL)
	case CustomEmoji:
		return fmt.Sprintf("%s(%d,%d,%d)", e.Type, e.Offset, e.Length, e.CustomEmojiID)
	case Blockquote:
		if e.Collapsed {
			return fmt.Sprintf("%s(%d,%d,collapsed)", e.Type, e.Offset, e.Length)
		}
	}
	return fmt.Sprintf("%s(%d,%d)", e.Type, e.Offset, e.Length)
}

// UnclosedTag 记录解析结束时仍未闭合的标签
type UnclosedTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (u UnclosedTag) String() string {
	return fmt.Sprintf("<%s> (x%d)", u.Name, u.Count)
}
