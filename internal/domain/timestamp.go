package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Timestamp is a time read leniently from JSON: null, "" or an unparsable
// value decode to the zero time instead of failing the enclosing document.
// Product snapshots persisted in the wishlist blob rely on this.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*t = Timestamp{}
		return nil
	}

	var parsed time.Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		*t = Timestamp{}
		return nil
	}

	*t = Timestamp{Time: parsed}
	return nil
}
