package model

import (
	"encoding/json"
	"sort"

	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// EntityMap holds the slots extracted from one utterance. Keys are only
// present when extraction succeeded; values are normalized strings
// ("HH:MM" times, capitalized names).
type EntityMap map[types.SlotKey]string

func (m EntityMap) Get(key types.SlotKey) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m EntityMap) Has(key types.SlotKey) bool {
	_, ok := m[key]
	return ok
}

// RawText returns the original utterance carried alongside the extracted
// slots, if the dispatcher recorded it.
func (m EntityMap) RawText() string {
	return m[types.SlotRawText]
}

func (m EntityMap) Clone() EntityMap {
	cloned := make(EntityMap, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

// Keys returns the slot keys in deterministic order.
func (m EntityMap) Keys() []types.SlotKey {
	keys := make([]types.SlotKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// JSON serializes the map for the history log. Marshalling a flat
// string map cannot fail, so the error is dropped.
func (m EntityMap) JSON() string {
	raw, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
