package entity

import (
	"bytes"
	"encoding/json"
)

const (
	ProfileKeyID     = "id"
	ProfileKeyName   = "name"
	ProfileKeyEmail  = "email"
	ProfileKeyStatus = "status"
)

type ProfileField struct {
	Key   string
	Value any
}

// Profile is an ordered, read-only view of a User meant for display.
type Profile []ProfileField

// MarshalJSON encodes the profile as an object whose keys keep display order.
func (p Profile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
