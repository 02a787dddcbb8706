package raynaservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Envelope ответ поставщика, нормализованный по регистру ключей.
// Поставщик отдает то statuscode/result, то StatusCode/Result.
type Envelope struct {
	StatusCode int
	Result     json.RawMessage
	Error      string
	Message    string
	URL        string
	TicketURL  string
}

// ParseEnvelope разбирает тело ответа поставщика
func ParseEnvelope(data []byte) (*Envelope, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	env := &Envelope{
		Result:    fields.get("result"),
		Error:     fields.text("error"),
		Message:   fields.text("message"),
		URL:       fields.text("url"),
		TicketURL: fields.text("ticketURL"),
	}
	if raw := fields.get("statuscode"); raw != nil {
		env.StatusCode = parseInt(raw)
	}
	return env, nil
}

// HasResult возвращает true, если result присутствует и не null
func (e *Envelope) HasResult() bool {
	trimmed := bytes.TrimSpace(e.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ErrorText сообщение об ошибке поставщика, если есть
func (e *Envelope) ErrorText() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// object JSON-объект с поиском ключей без учета регистра
type object map[string]json.RawMessage

func decodeObject(data []byte) (object, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}
	return object(raw), nil
}

func (o object) get(key string) json.RawMessage {
	if v, ok := o[key]; ok {
		return v
	}
	for k, v := range o {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

// text возвращает строковое значение ключа; не-строки возвращаются как JSON-текст
func (o object) text(key string) string {
	raw := bytes.TrimSpace(o.get(key))
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// parseInt принимает как число, так и строку ("200")
func parseInt(raw json.RawMessage) int {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			return int(v)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

// firstTicketURL ищет ссылку на билет: url, ticketURL, затем result[0].ticketURL / result.ticketURL
func firstTicketURL(env *Envelope) string {
	if env.URL != "" {
		return env.URL
	}
	if env.TicketURL != "" {
		return env.TicketURL
	}
	if !env.HasResult() {
		return ""
	}

	trimmed := bytes.TrimSpace(env.Result)
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil || len(items) == 0 {
			return ""
		}
		first, err := decodeObject(items[0])
		if err != nil {
			return ""
		}
		return first.text("ticketURL")
	case '{':
		obj, err := decodeObject(trimmed)
		if err != nil {
			return ""
		}
		return obj.text("ticketURL")
	default:
		return ""
	}
}

// decodeStatusResult разбирает {status, message} с любым регистром ключей
func decodeStatusResult(raw json.RawMessage) (*StatusResult, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	res := &StatusResult{Message: obj.text("message")}
	if s := obj.get("status"); s != nil {
		res.Status = parseInt(s)
	}
	return res, nil
}
