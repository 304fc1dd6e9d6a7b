package util

import "github.com/goccy/go-json"

// StructToJSON renders data for CLI output. Values that can't be encoded
// render as an empty string.
func StructToJSON(data interface{}) string {
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(raw)
}
