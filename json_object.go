package moneymanager

import (
	"encoding/json"
	"fmt"
	"slices"
)

// object builds a ledger JSON object member by member, so that ids come
// first and histories last in every stored document.
type object struct {
	buf []byte
	err error
}

// set appends a member. After a failure set does nothing and MarshalJSON
// reports the first error.
func (o *object) set(key string, value any) {
	if o.err != nil {
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("encoding %s: %w", key, err)
		return
	}
	k, _ := json.Marshal(key)
	if len(o.buf) == 0 {
		o.buf = append(o.buf, '{')
	} else {
		o.buf = append(o.buf, ',')
	}
	o.buf = append(append(append(o.buf, k...), ':'), v...)
}

// MarshalJSON returns the members set so far as a JSON object.
func (o *object) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	if len(o.buf) == 0 {
		return []byte("{}"), nil
	}
	return append(slices.Clip(o.buf), '}'), nil
}
