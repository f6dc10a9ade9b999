package dlit

import (
	"regexp"
	"strings"
)

// scanMode is one of the five lexical modes the HTML scanner tracks across
// fragment boundaries. See spec.md §4.1.
type scanMode int

const (
	modeText scanMode = iota
	modeTag
	modeAttrDQ
	modeAttrSQ
	modeComment
	modeRaw
)

var (
	// Recognizes the opening of a comment or an element's start tag from
	// TEXT. Group 1 is the comment marker, group 2 the tag name.
	reTextBoundary = regexp.MustCompile(`<(?:(!--)|([a-zA-Z][-.:0-9_a-zA-Z]*))`)

	// Recognizes, from inside an opening tag, either its close (`>`) or
	// the next attribute-name token with an optional `=` after it
	// (whitespace allowed on either side of the `=`). Group 1 is the
	// attribute name; group 2 is non-empty when the name was followed by
	// `=`.
	reTagToken = regexp.MustCompile(`>|([^\s"'>=/]+)(\s*=\s*)?`)

	reCommentEnd = regexp.MustCompile(`-->`)
)

var rawElements = map[string]bool{"script": true, "style": true, "textarea": true}

func rawCloseRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(name))
}

// htmlScanner walks a sequence of static template fragments, carrying HTML
// parser state across the boundary where each dynamic value will be
// spliced in, and builds a single annotated HTML string plus the ordered
// list of raw attribute-name tokens (spec.md §4.1). A name is recorded for
// every attribute whose value is quoted, whether or not the quoted value
// holds an interpolation, and for every `name=` that directly precedes an
// interpolation. A quoted attribute with no interpolation therefore also
// compiles to an ATTRIBUTE descriptor, one that consumes no values.
type htmlScanner struct {
	mode   scanMode
	rawTag string // current raw element name, valid when mode == modeRaw

	pendingAttrName string // most recent attribute-name token while mode == modeTag
	attrNamePushed  bool   // whether pendingAttrName was already recorded for its binding run

	attrNames []string
	out       strings.Builder
}

func newHTMLScanner() *htmlScanner {
	return &htmlScanner{mode: modeText}
}

// processFragment consumes one static fragment, writing its (possibly
// rewritten) text to sc.out, then writes the correct marker for the
// dynamic value that follows it. last is true for the final fragment,
// which has no following value and so gets no marker.
func (sc *htmlScanner) processFragment(s string, last bool) {
	pos := 0
	// attrValueNow becomes true iff this fragment ends exactly after an
	// attribute name's unquoted "=", which only happens when the value
	// in source was a bare interpolation: `name=${x}`.
	attrValueNow := false

	for pos < len(s) {
		switch sc.mode {
		case modeText:
			loc := reTextBoundary.FindStringSubmatchIndex(s[pos:])
			if loc == nil {
				sc.out.WriteString(s[pos:])
				pos = len(s)
				continue
			}
			sc.out.WriteString(s[pos : pos+loc[1]])
			if loc[2] != -1 {
				sc.mode = modeComment
			} else {
				name := strings.ToLower(s[pos+loc[4] : pos+loc[5]])
				if rawElements[name] {
					sc.mode = modeRaw
					sc.rawTag = name
				} else {
					sc.mode = modeTag
					sc.pendingAttrName = ""
				}
			}
			pos += loc[1]

		case modeTag:
			loc := reTagToken.FindStringSubmatchIndex(s[pos:])
			if loc == nil {
				sc.out.WriteString(s[pos:])
				pos = len(s)
				continue
			}
			matched := s[pos+loc[0] : pos+loc[1]]
			if matched == ">" {
				sc.out.WriteString(matched)
				sc.mode = modeText
				sc.pendingAttrName = ""
				sc.attrNamePushed = false
				pos += loc[1]
				continue
			}
			hasEquals := loc[4] != -1
			if loc[2] != -1 {
				sc.pendingAttrName = s[pos+loc[2] : pos+loc[3]]
				sc.attrNamePushed = false
			}
			end := pos + loc[1]
			attrValueNow = false

			switch {
			case hasEquals && end < len(s) && (s[end] == '"' || s[end] == '\''):
				// Attribute name + '=' + opening quote: splice
				// ATTR_SUFFIX onto the name now, since the quote has
				// definitely opened.
				sc.out.WriteString(s[pos : pos+loc[2]])
				sc.out.WriteString(s[pos+loc[2] : pos+loc[3]])
				sc.out.WriteString(attrSuffix)
				sc.out.WriteString(s[pos+loc[3] : end+1])
				if !sc.attrNamePushed {
					sc.attrNames = append(sc.attrNames, sc.pendingAttrName)
					sc.attrNamePushed = true
				}
				if s[end] == '"' {
					sc.mode = modeAttrDQ
				} else {
					sc.mode = modeAttrSQ
				}
				pos = end + 1
				continue

			case hasEquals && end == len(s):
				// Unquoted value position: `name=` ends the fragment
				// right where the interpolation sits, e.g. `.foo=${x}`.
				sc.out.WriteString(s[pos : pos+loc[2]])
				sc.out.WriteString(s[pos+loc[2] : pos+loc[3]])
				sc.out.WriteString(attrSuffix)
				sc.out.WriteString(s[pos+loc[3] : end])
				sc.attrNames = append(sc.attrNames, sc.pendingAttrName)
				attrValueNow = true
				pos = end
				continue
			}

			sc.out.WriteString(s[pos:end])
			pos = end

		case modeAttrDQ, modeAttrSQ:
			quote := byte('"')
			if sc.mode == modeAttrSQ {
				quote = '\''
			}
			idx := strings.IndexByte(s[pos:], quote)
			if idx == -1 {
				sc.out.WriteString(s[pos:])
				pos = len(s)
				continue
			}
			sc.out.WriteString(s[pos : pos+idx+1])
			sc.mode = modeTag
			pos += idx + 1

		case modeComment:
			loc := reCommentEnd.FindStringIndex(s[pos:])
			if loc == nil {
				sc.out.WriteString(s[pos:])
				pos = len(s)
				continue
			}
			sc.out.WriteString(s[pos : pos+loc[1]])
			sc.mode = modeText
			pos += loc[1]

		case modeRaw:
			loc := rawCloseRegexp(sc.rawTag).FindStringIndex(s[pos:])
			if loc == nil {
				sc.out.WriteString(s[pos:])
				pos = len(s)
				continue
			}
			sc.out.WriteString(s[pos : pos+loc[0]])
			sc.mode = modeText
			sc.rawTag = ""
			pos += loc[0]
		}
	}

	if last {
		return
	}

	switch {
	case attrValueNow:
		sc.out.WriteString(mark)
	case sc.mode == modeAttrDQ || sc.mode == modeAttrSQ:
		sc.out.WriteString(mark)
	case sc.mode == modeText:
		sc.out.WriteString(nodeMarker)
	default: // modeComment, modeRaw, or modeTag outside an attribute value (e.g. a binding between attributes)
		sc.out.WriteString(mark)
	}
}

// scanHTML runs the full scanner over a TemplateResult's static fragments
// and returns the annotated HTML source plus the ordered attrNames list
// (spec.md §4.1). Scanning never fails: a regex miss simply leaves the
// scanner in its current mode (spec.md §7).
func scanHTML(strs []string, typ ResultType) (string, []string) {
	sc := newHTMLScanner()
	n := len(strs) - 1
	for i, frag := range strs {
		sc.processFragment(frag, i == n)
	}
	out := sc.out.String()
	if typ == SVGResult {
		out = "<svg>" + out + "</svg>"
	}
	return out, sc.attrNames
}
