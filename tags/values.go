// Package tags scans encoded struct tag option lists into key/value pairs.
package tags

import "github.com/viant/parsly"

// Values represents an encoded option list, e.g. "base=hex,width=5,fill='*'".
type Values string

// MatchPairs scans coma separated key=value pairs, reporting each to onMatch;
// a key without '=' is reported with an empty value.
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}
