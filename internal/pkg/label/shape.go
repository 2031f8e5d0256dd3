package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

const (
	lri = '\u2066' // left-to-right isolate
	pdi = '\u2069' // pop directional isolate
	lam = 'ل'
)

// forms holds the presentation forms of one Arabic letter. A letter without
// initial/medial forms only joins to the letter before it.
type forms struct{ iso, fin, ini, med rune }

func (f forms) dual() bool { return f.ini != 0 }

var arabicForms = map[rune]forms{
	0x0621: {0xFE80, 0, 0, 0},
	0x0622: {0xFE81, 0xFE82, 0, 0},
	0x0623: {0xFE83, 0xFE84, 0, 0},
	0x0624: {0xFE85, 0xFE86, 0, 0},
	0x0625: {0xFE87, 0xFE88, 0, 0},
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	0x0627: {0xFE8D, 0xFE8E, 0, 0},
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	0x0629: {0xFE93, 0xFE94, 0, 0},
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	0x062F: {0xFEA9, 0xFEAA, 0, 0},
	0x0630: {0xFEAB, 0xFEAC, 0, 0},
	0x0631: {0xFEAD, 0xFEAE, 0, 0},
	0x0632: {0xFEAF, 0xFEB0, 0, 0},
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	0x0640: {0x0640, 0x0640, 0x0640, 0x0640},
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	0x0648: {0xFEED, 0xFEEE, 0, 0},
	0x0649: {0xFEEF, 0xFEF0, 0, 0},
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},
	0x067E: {0xFB56, 0xFB57, 0xFB58, 0xFB59},
	0x0686: {0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D},
	0x0698: {0xFB8A, 0xFB8B, 0, 0},
	0x06A9: {0xFB8E, 0xFB8F, 0xFB90, 0xFB91},
	0x06AF: {0xFB92, 0xFB93, 0xFB94, 0xFB95},
	0x06CC: {0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF},
}

// lamAlef maps the alef that follows a lam to the ligature's isolated and final forms.
var lamAlef = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

// HasRTL reports whether s contains right-to-left script.
func HasRTL(s string) bool {
	for _, r := range s {
		if isRTL(r) {
			return true
		}
	}
	return false
}

// IsolateNumbers wraps each numeric run of right-to-left text in LRI/PDI so
// the digits keep their left-to-right order. Other text is returned as is.
func IsolateNumbers(s string) string {
	if !HasRTL(s) || strings.ContainsRune(s, lri) {
		return s
	}

	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(rs); {
		if !unicode.IsDigit(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}

		j := i
		for j < len(rs) && (unicode.IsDigit(rs[j]) ||
			(isNumberSeparator(rs[j]) && j+1 < len(rs) && unicode.IsDigit(rs[j+1]))) {
			j++
		}
		if j < len(rs) && rs[j] == '%' {
			j++
		}

		b.WriteRune(lri)
		b.WriteString(string(rs[i:j]))
		b.WriteRune(pdi)
		i = j
	}
	return b.String()
}

// Shape converts logical-order text into the glyph sequence to draw left to
// right: Arabic letters take their joined presentation forms and runs are
// reordered for a right-to-left paragraph. Text without RTL characters is
// returned unchanged.
func Shape(s string) string {
	if !HasRTL(s) {
		return s
	}
	return string(reorder(join([]rune(s))))
}

// join replaces Arabic letters with their contextual forms.
func join(in []rune) []rune {
	out := make([]rune, 0, len(in))

	for i := 0; i < len(in); i++ {
		r := in[i]
		f, ok := arabicForms[r]
		if !ok {
			out = append(out, r)
			continue
		}

		prevConn := false
		if p := neighbour(in, i, -1); p >= 0 {
			pf, ok := arabicForms[in[p]]
			prevConn = ok && pf.dual()
		}

		next := neighbour(in, i, 1)
		if r == lam && next >= 0 {
			if lig, ok := lamAlef[in[next]]; ok {
				if prevConn {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				out = append(out, in[i+1:next]...)
				i = next
				continue
			}
		}

		nextConn := false
		if next >= 0 {
			nf, ok := arabicForms[in[next]]
			nextConn = ok && nf.fin != 0
		}

		right := prevConn && f.fin != 0
		left := nextConn && f.dual()
		switch {
		case right && left:
			out = append(out, f.med)
		case right:
			out = append(out, f.fin)
		case left:
			out = append(out, f.ini)
		default:
			out = append(out, f.iso)
		}
	}
	return out
}

// neighbour finds the closest non-transparent rune from i in direction step.
func neighbour(in []rune, i, step int) int {
	for j := i + step; j >= 0 && j < len(in); j += step {
		if isTransparent(in[j]) {
			continue
		}
		return j
	}
	return -1
}

// reorder lays out a right-to-left paragraph in visual order. Levels come
// from the Unicode bidi algorithm; runs are emitted last to first and RTL
// runs are reversed with mirrored brackets. Formatting controls are dropped.
func reorder(in []rune) []rune {
	var p bidi.Paragraph
	if _, err := p.SetString(string(in), bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return stripControls(in)
	}
	o, err := p.Order()
	if err != nil {
		return stripControls(in)
	}

	out := make([]rune, 0, len(in))
	for i := o.NumRuns() - 1; i >= 0; i-- {
		run := o.Run(i)
		seg := run.String()
		if run.Direction() == bidi.RightToLeft {
			seg = bidi.ReverseString(seg)
		}
		out = append(out, stripControls([]rune(seg))...)
	}
	return out
}

func stripControls(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if !isControl(r) {
			out = append(out, r)
		}
	}
	return out
}

func isRTL(r rune) bool {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.R, bidi.AL:
		return true
	}
	return false
}

func isTransparent(r rune) bool {
	p, _ := bidi.LookupRune(r)
	return p.Class() == bidi.NSM
}

func isControl(r rune) bool {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.BN, bidi.LRO, bidi.RLO, bidi.LRE, bidi.RLE, bidi.PDF, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return r == '\u200e' || r == '\u200f'
}

func isNumberSeparator(r rune) bool {
	switch r {
	case '.', ',', ':', '/', '-', '٫', '٬':
		return true
	}
	return false
}
