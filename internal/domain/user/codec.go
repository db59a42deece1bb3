package user

import "encoding/json"

// The three preference lists live as JSON-encoded text both on the user row
// and in the snapshot file. Decoding is tolerant: malformed input yields an
// empty list rather than an error, so a corrupt column or file never blocks
// login.

// EncodeIDs serializes an ID list as a JSON array, never empty-string.
func EncodeIDs(ids []int64) string {
	if len(ids) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeIDs parses a JSON ID array.
func DecodeIDs(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	var ids []int64
	if err := json.Unmarshal([]byte(s), &ids); err != nil || ids == nil {
		return []int64{}
	}
	return ids
}

// EncodeItems serializes shopping-list items as a JSON array.
func EncodeItems(items []ShoppingItem) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeItems parses shopping-list JSON.
func DecodeItems(s string) []ShoppingItem {
	if s == "" {
		return []ShoppingItem{}
	}
	var items []ShoppingItem
	if err := json.Unmarshal([]byte(s), &items); err != nil || items == nil {
		return []ShoppingItem{}
	}
	return items
}
