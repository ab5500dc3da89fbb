package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Image is an attached photo: the raw bytes plus a directly displayable
// data URI derived from them. Seeded/demo records may carry only the URI.
type Image struct {
	Data    []byte `json:"-"`
	MIME    string `json:"mime,omitempty"`
	DataURI string `json:"data_uri,omitempty"`
}
