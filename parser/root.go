package parser

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/steinlib"
)

// MagicHeader starts the first line of every STEINLIB file.
const MagicHeader = "33D32945"

// CommentMarker starts a comment line.
const CommentMarker = "#"

// rootKind identifies a token recognized outside of sections.
type rootKind int8

const (
	headerToken rootKind = iota
	sectionToken
	eofToken
)

func (k rootKind) String() string {
	switch k {
	case headerToken:
		return "header"
	case sectionToken:
		return "section"
	case eofToken:
		return "eof"
	}
	return fmt.Sprintf("rootKind(%d)", int8(k))
}

// rootToken is a rule for a line outside of sections.
type rootToken struct {
	kind     rootKind
	callback string
	pattern  *regexp.Regexp
}

var rootTokens = [...]rootToken{
	headerToken:  {headerToken, steinlib.HeaderCallback, regexp.MustCompile(`(?i)^` + MagicHeader + `\s+(.+)$`)},
	sectionToken: {sectionToken, steinlib.SectionCallback, regexp.MustCompile(`(?i)^SECTION\s+(\w+)$`)},
	eofToken:     {eofToken, steinlib.EOFCallback, regexp.MustCompile(`(?i)^EOF$`)},
}

// classify tests a line against a root token. Arguments of root tokens are
// delivered as strings, without numeric conversion.
func classify(kind rootKind, line string) (steinlib.Captures, bool) {
	m := rootTokens[kind].pattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	args := make(steinlib.Captures, len(m)-1)
	for i, s := range m[1:] {
		args[i] = steinlib.Str(s)
	}
	return args, true
}
