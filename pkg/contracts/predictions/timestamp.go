package predictions

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// layouts aceitos para datas vindas da API, em ordem de tentativa
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Timestamp representa a data de uma partida.
// Aceita string RFC3339, string ISO sem fuso (tratada como UTC) ou epoch em milissegundos.
// Valores que não puderem ser interpretados ficam em Raw e a decodificação não falha.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// Valid indica se a data foi interpretada
func (t Timestamp) Valid() bool { return !t.Time.IsZero() }

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed
				return nil
			}
		}
		t.Raw = s
		return nil
	}

	if ms, err := strconv.ParseFloat(string(data), 64); err == nil {
		t.Time = time.UnixMilli(int64(ms)).UTC()
		return nil
	}
	t.Raw = string(data)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case t.Valid():
		return json.Marshal(t.Time.Format(time.RFC3339))
	case t.Raw != "":
		return json.Marshal(t.Raw)
	default:
		return []byte("null"), nil
	}
}
