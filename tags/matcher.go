package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// matchPair consumes one pair from the cursor. The value may be quoted with
// single quotes to carry a coma or whitespace, e.g. fill=','.
func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	var tokens []*parsly.Token

	eqIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte("="))
	comaIndex := bytes.Index(cursor.Input[cursor.Pos:], []byte(","))
	if eqIndex == -1 {
		tokens = append(tokens, comaTerminatorMatcher)
	} else if comaIndex == -1 || eqIndex < comaIndex {
		tokens = append(tokens, eqTerminatorMatcher)
	} else {
		tokens = append(tokens, comaTerminatorMatcher)
	}

	match := cursor.MatchAfterOptional(whitespaceMatcher, tokens...)
	switch match.Code {
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	case eqTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1] //exclude =
		match = cursor.MatchAny(quotedMatcher, comaTerminatorMatcher)
		switch match.Code {
		case quotedToken:
			value = match.Text(cursor)
			value = value[1 : len(value)-1]
			cursor.MatchAny(comaTerminatorMatcher)
		case comaTerminatorToken:
			value = match.Text(cursor)
			value = value[:len(value)-1]
		default:
			if cursor.Pos < len(cursor.Input) {
				value = string(cursor.Input[cursor.Pos:])
				cursor.Pos = len(cursor.Input)
			}
		}
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if key == "" {
		key = strings.TrimSpace(value)
		value = ""
	}
	return strings.TrimSpace(key), value
}
