package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Роли участников чата
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Типы блоков содержимого
const (
	BlockText  = "text"
	BlockImage = "image"
)

// ChatSession снимок одной сессии чата.
type ChatSession struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Sync      *SyncState `json:"sync,omitempty"`
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Messages  []Message  `json:"messages"`
}

// Message одно сообщение чата.
// Content разбирается в MessageContent один раз при десериализации,
// дальше код работает только с закрытым набором вариантов.
type Message struct {
	Timestamp time.Time      `json:"timestamp,omitempty"`
	Content   MessageContent `json:"-"`
	Role      string         `json:"role"`
}

// MessageContent закрытый вариант содержимого сообщения: TextContent или BlockContent.
type MessageContent interface {
	messageContent()
}

// TextContent простое текстовое содержимое.
type TextContent struct {
	Text string
}

// BlockContent список структурированных блоков (текст, изображения).
type BlockContent struct {
	Blocks []ContentBlock
}

func (TextContent) messageContent()  {}
func (BlockContent) messageContent() {}

// ContentBlock один блок структурированного содержимого.
type ContentBlock struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// Text создаёт текстовое содержимое
func Text(s string) MessageContent {
	return TextContent{Text: s}
}

// Blocks создаёт блочное содержимое
func Blocks(blocks ...ContentBlock) MessageContent {
	return BlockContent{Blocks: blocks}
}

type messageJSON struct {
	Timestamp time.Time       `json:"timestamp,omitempty"`
	Content   json.RawMessage `json:"content"`
	Role      string          `json:"role"`
}

// MarshalJSON пишет TextContent строкой, BlockContent массивом блоков.
func (m Message) MarshalJSON() ([]byte, error) {
	var content any
	switch c := m.Content.(type) {
	case TextContent:
		content = c.Text
	case BlockContent:
		content = c.Blocks
	case nil:
		content = ""
	default:
		return nil, fmt.Errorf("unsupported message content %T", m.Content)
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message content: %w", err)
	}

	return json.Marshal(messageJSON{
		Timestamp: m.Timestamp,
		Content:   raw,
		Role:      m.Role,
	})
}

// UnmarshalJSON принимает содержимое в любом из встречающихся видов:
// строка, массив блоков (строки или объекты), вложенный объект.
func (m *Message) UnmarshalJSON(data []byte) error {
	var aux messageJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	content, err := ParseMessageContent(aux.Content)
	if err != nil {
		return err
	}

	m.Timestamp = aux.Timestamp
	m.Role = aux.Role
	m.Content = content
	return nil
}

// ParseMessageContent нормализует сырое JSON содержимое сообщения.
func ParseMessageContent(raw json.RawMessage) (MessageContent, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return TextContent{}, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to parse message content: %w", err)
	}

	switch v := value.(type) {
	case string:
		return TextContent{Text: v}, nil
	case []any:
		blocks := make([]ContentBlock, 0, len(v))
		for _, item := range v {
			blocks = append(blocks, toBlock(item))
		}
		return BlockContent{Blocks: blocks}, nil
	case map[string]any:
		return BlockContent{Blocks: []ContentBlock{toBlock(v)}}, nil
	default:
		// Числа и bool встречаются в старых снимках
		return TextContent{Text: fmt.Sprint(v)}, nil
	}
}

func toBlock(item any) ContentBlock {
	obj, ok := item.(map[string]any)
	if !ok {
		return ContentBlock{Type: BlockText, Text: flatten(item)}
	}

	blockType, _ := obj["type"].(string)
	if blockType == "" {
		blockType = BlockText
	}

	block := ContentBlock{Type: blockType}
	if blockType == BlockImage {
		if source, ok := obj["source"].(map[string]any); ok {
			block.MediaType, _ = source["media_type"].(string)
		}
		return block
	}

	block.Text = flatten(obj)
	return block
}

// flatten сводит вложенную структуру к плоскому тексту.
func flatten(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n\n")
	case map[string]any:
		for _, key := range []string{"text", "content", "value"} {
			if inner, ok := v[key]; ok {
				return flatten(inner)
			}
		}
		return ""
	default:
		return fmt.Sprint(v)
	}
}
