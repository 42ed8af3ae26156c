package models

import "sort"

// KeyValuePair is one entry of a KeyValueList, encoded as a {"key", "value"}
// wire object.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KeyValueList is an ordered sequence of string pairs. The wire format is an
// array of {"key", "value"} objects rather than a JSON object, so duplicate
// keys are tolerated and insertion order survives the round trip.
type KeyValueList []KeyValuePair

// NewKeyValueList builds a list from explicit pairs, preserving their order.
func NewKeyValueList(pairs ...KeyValuePair) KeyValueList {
	return KeyValueList(pairs)
}

// KeyValueListFromMap builds a list from a map. Go map iteration order is not
// defined, so entries are sorted by key for determinism; use NewKeyValueList
// when the order matters.
func KeyValueListFromMap(m map[string]string) KeyValueList {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list := make(KeyValueList, 0, len(m))
	for _, k := range keys {
		list = append(list, KeyValuePair{Key: k, Value: m[k]})
	}
	return list
}

// Get returns the value of the first pair with the given key.
func (l KeyValueList) Get(key string) (string, bool) {
	for _, p := range l {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
