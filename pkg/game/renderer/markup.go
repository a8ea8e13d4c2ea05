package renderer

import (
	"regexp"

	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/engine/world"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys come from markup.
var dynamicGet = gotext.Get

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of text drawn in one style
type Segment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits a message into styled segments.
//
//	CELL{2:3}         a cell name
//	ACTION{Play}      a control name
//	GT{KEY}           a translated string
//	LABEL_ON_CYCLE{}  a classification, translated and coloured by label
//	SUBTLE{text}      de-emphasised text
//
// Unknown functions are kept as plain text.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		seg := Segment{Text: content, Style: StyleNormal}
		switch function {
		case "CELL":
			seg.Style = StyleChecker
		case "ACTION":
			seg.Style = StyleAction
		case "SUBTLE":
			seg.Style = StyleSubtle
		case "GT":
			seg.Text = dynamicGet(content)
		default:
			if l, ok := labelByKey[function]; ok {
				seg.Text = dynamicGet(function)
				seg.Style = LabelStyle(l)
			} else {
				seg.Text = msg[match[0]:match[1]]
			}
		}

		segments = append(segments, seg)
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}

	return segments
}

// PlainText returns msg with all markup removed
func PlainText(msg string) string {
	out := ""
	for _, seg := range ParseMarkup(msg) {
		out += seg.Text
	}
	return out
}

// LabelMarkup returns the markup that displays l
func LabelMarkup(l world.Label) string {
	return l.Key() + "{}"
}

var labelByKey = func() map[string]world.Label {
	m := make(map[string]world.Label)
	for _, l := range world.AllLabels() {
		m[l.Key()] = l
	}
	return m
}()
