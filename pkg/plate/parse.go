package plate

import (
	"regexp"
	"strings"
)

// DefaultSeparators are the serial separator characters accepted between the
// two digit groups: ASCII hyphen, U+2212 minus sign and U+30FC long vowel
// mark. OCR engines frequently confuse the three on plate photos.
const DefaultSeparators = "-−ー"

// Parser extracts a Record from normalized OCR text. It tries three
// strategies in strict order:
//
//  1. full pattern with a separated serial (品川 500 あ 12-34),
//  2. full pattern with a plain 4-digit serial (品川 500 あ 1234),
//  3. per-field recovery: region by catalog containment, hiragana by first
//     kana, then a single numeric sub-pattern (separated serial, 4 digits,
//     or a bare 3-digit classification — whichever matches first).
//
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	regions  []string
	full     *regexp.Regexp
	plain    *regexp.Regexp
	numSep   *regexp.Regexp
	numFour  *regexp.Regexp
	numThree *regexp.Regexp
	hiragana *regexp.Regexp
}

// NewParser builds a Parser over the given ordered region catalog and serial
// separator set. Empty arguments fall back to DefaultRegions and
// DefaultSeparators.
func NewParser(regions []string, separators string) *Parser {
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	if separators == "" {
		separators = DefaultSeparators
	}
	sep := separatorClass(separators)
	// OCR engines emit both ASCII and full-width digits on plate photos, so
	// digit classes cover both (Go's \d is ASCII-only).
	const dgt = `[0-9０-９]`
	return &Parser{
		regions: regions,
		// region: up to 5 non-digit non-space runes directly before the
		// 3-digit classification. OCR noise touching the region name is
		// absorbed into the capture on purpose.
		full:     regexp.MustCompile(`([^0-9０-９\s]{1,5})\s*(` + dgt + `{3})\s*([あ-ん])\s*(` + dgt + `{1,2}` + sep + dgt + `{2})`),
		plain:    regexp.MustCompile(`([^0-9０-９\s]{1,5})\s*(` + dgt + `{3})\s*([あ-ん])\s*(` + dgt + `{4})`),
		numSep:   regexp.MustCompile(dgt + `{1,2}` + sep + dgt + `{2}`),
		numFour:  regexp.MustCompile(dgt + `{4}`),
		numThree: regexp.MustCompile(dgt + `{3}`),
		hiragana: regexp.MustCompile(`[あ-ん]`),
	}
}

// NewDefaultParser is NewParser with the built-in catalog and separators.
func NewDefaultParser() *Parser {
	return NewParser(nil, "")
}

// Regions returns the catalog the parser consults, in lookup order.
func (p *Parser) Regions() []string {
	out := make([]string, len(p.regions))
	copy(out, p.regions)
	return out
}

// Parse extracts a Record from OCR text. It never fails: text that matches
// nothing yields a Record with only FullText set. Deterministic and free of
// side effects.
func (p *Parser) Parse(text string) Record {
	clean := normalizeSpace(text)
	rec := Record{FullText: clean}

	if m := p.full.FindStringSubmatch(clean); m != nil {
		rec.Region = m[1]
		rec.Classification = m[2]
		rec.Hiragana = m[3]
		rec.Number = m[4]
		return rec
	}

	if m := p.plain.FindStringSubmatch(clean); m != nil {
		rec.Region = m[1]
		rec.Classification = m[2]
		rec.Hiragana = m[3]
		rec.Number = joinSerial(m[4])
		return rec
	}

	// Partial recovery: fields are filled independently and are not required
	// to be adjacent or mutually consistent.
	for _, region := range p.regions {
		if strings.Contains(clean, region) {
			rec.Region = region
			break
		}
	}
	if h := p.hiragana.FindString(clean); h != "" {
		rec.Hiragana = h
	}
	// Only one numeric sub-pattern may fire per parse.
	if m := p.numSep.FindString(clean); m != "" {
		rec.Number = m
	} else if m := p.numFour.FindString(clean); m != "" {
		rec.Number = joinSerial(m)
	} else if m := p.numThree.FindString(clean); m != "" {
		rec.Classification = m
	}
	return rec
}

// joinSerial formats a 4-digit serial as two hyphen-separated digit pairs.
// Rune-based: full-width digits are multi-byte.
func joinSerial(digits string) string {
	r := []rune(digits)
	return string(r[:2]) + "-" + string(r[2:])
}

// separatorClass builds a regexp character class matching exactly the given
// separator runes.
func separatorClass(seps string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range seps {
		switch r {
		case '-', ']', '\\', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}
