package hotelapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// bookingFieldKeys поля формы бронирования, ошибки которых показываются раньше прочих
var bookingFieldKeys = []string{"room", "email", "phone", "check_in", "check_out"}

// FieldError сообщения об ошибках одного поля тела ответа
type FieldError struct {
	Field    string
	Messages []string
}

// parseFieldErrors разбирает тело ошибки, сохраняя порядок ключей документа.
// Возвращает false, если тело не является JSON объектом или массивом.
func parseFieldErrors(data []byte) ([]FieldError, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, false
	}

	switch data[0] {
	case '[':
		var raw json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, false
		}
		return []FieldError{{Messages: messagesFrom(raw)}}, true
	case '{':
	default:
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}

	var fields []FieldError
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		fields = append(fields, FieldError{Field: key, Messages: messagesFrom(raw)})
	}

	return fields, true
}

// messagesFrom извлекает строки из значения поля: строки и числа,
// а также элементы массива первого уровня. Вложенные объекты пропускаются.
func messagesFrom(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil
	}

	if msg, ok := scalarMessage(value); ok {
		return []string{msg}
	}

	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	var messages []string
	for _, item := range items {
		if msg, ok := scalarMessage(item); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

func scalarMessage(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func firstMessage(fields []FieldError, key string) string {
	for _, f := range fields {
		if f.Field == key && len(f.Messages) > 0 {
			return f.Messages[0]
		}
	}
	return ""
}

func joinedMessages(fields []FieldError, key string) string {
	for _, f := range fields {
		if f.Field == key && len(f.Messages) > 0 {
			return strings.Join(f.Messages, " ")
		}
	}
	return ""
}

func firstAnyMessage(fields []FieldError) string {
	for _, f := range fields {
		if len(f.Messages) > 0 {
			return f.Messages[0]
		}
	}
	return ""
}
