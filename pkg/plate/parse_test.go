package plate

import "testing"

func TestParseFullPattern(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("品川 500 あ 12-34")
	if rec.Region != "品川" || rec.Classification != "500" || rec.Hiragana != "あ" || rec.Number != "12-34" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.FullText != "品川 500 あ 12-34" {
		t.Fatalf("full_text mismatch: %q", rec.FullText)
	}
}

func TestParseSeparatorVariantsKeptVerbatim(t *testing.T) {
	p := NewDefaultParser()
	cases := map[string]string{
		"品川 500 あ 12-34": "12-34",
		"品川 500 あ 12−34": "12−34", // U+2212
		"品川 500 あ 12ー34": "12ー34", // U+30FC
	}
	for in, want := range cases {
		rec := p.Parse(in)
		if rec.Number != want {
			t.Fatalf("input %q: number %q, want %q", in, rec.Number, want)
		}
		if rec.Region != "品川" || rec.Classification != "500" || rec.Hiragana != "あ" {
			t.Fatalf("input %q: unexpected record %+v", in, rec)
		}
	}
}

func TestParseFourDigitSerialSynthesis(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("品川 500 あ 1234")
	if rec.Number != "12-34" {
		t.Fatalf("expected synthesized 12-34 got %q", rec.Number)
	}
	if rec.Region != "品川" || rec.Classification != "500" || rec.Hiragana != "あ" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseSingleDigitLeadingSerial(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("横浜 330 さ 1-23")
	if rec.Number != "1-23" || rec.Region != "横浜" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseFullPatternWinsOverPartial(t *testing.T) {
	// The text also contains 横浜 and the catalog-first 品川 appears inside a
	// noisy run, but the full pattern must be the one that answers: the region
	// capture absorbs adjacent noise, proving the first tier produced it.
	p := NewDefaultParser()
	rec := p.Parse("横浜 ノイズ品川 500 あ 12-34")
	if rec.Region != "ノイズ品川" {
		t.Fatalf("expected greedy full-pattern region got %q", rec.Region)
	}
	if rec.Classification != "500" || rec.Hiragana != "あ" || rec.Number != "12-34" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParsePartialRecovery(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("ノイズ 横浜 ノイズ あ 12-34")
	if rec.Region != "横浜" {
		t.Fatalf("region containment failed: %+v", rec)
	}
	if rec.Hiragana != "あ" {
		t.Fatalf("hiragana recovery failed: %+v", rec)
	}
	if rec.Number != "12-34" {
		t.Fatalf("number recovery failed: %+v", rec)
	}
	if rec.Classification != "" {
		t.Fatalf("classification should stay empty: %+v", rec)
	}
}

func TestParseClassificationOnlyFallback(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("580")
	if rec.Classification != "580" {
		t.Fatalf("expected classification 580 got %q", rec.Classification)
	}
	if rec.Number != "" || rec.Region != "" || rec.Hiragana != "" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseNumericLadderStopsAtFirstMatch(t *testing.T) {
	// 4-digit serial and a separate 3-digit run: only the serial is taken.
	p := NewDefaultParser()
	rec := p.Parse("あ 1234 580")
	if rec.Number != "12-34" {
		t.Fatalf("expected 12-34 got %q", rec.Number)
	}
	if rec.Classification != "" {
		t.Fatalf("classification should stay empty once a serial matched: %+v", rec)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("")
	want := Record{}
	if rec != want {
		t.Fatalf("expected all-empty record got %+v", rec)
	}
}

func TestParseWhitespaceOnlyInput(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("  \n\t ")
	if rec != (Record{}) {
		t.Fatalf("expected all-empty record got %+v", rec)
	}
}

func TestParseIdempotent(t *testing.T) {
	p := NewDefaultParser()
	a := p.Parse("ノイズ 横浜 ノイズ あ 12-34")
	b := p.Parse("ノイズ 横浜 ノイズ あ 12-34")
	if a != b {
		t.Fatalf("parse not deterministic: %+v vs %+v", a, b)
	}
}

func TestParseCatalogOrderBreaksTies(t *testing.T) {
	p := NewParser([]string{"堺", "大阪"}, "")
	rec := p.Parse("大阪と堺のあいだ")
	if rec.Region != "堺" {
		t.Fatalf("expected first-listed region 堺 got %q", rec.Region)
	}
}

func TestParseNormalizesFullText(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("品川\n500  あ\t12-34")
	if rec.FullText != "品川 500 あ 12-34" {
		t.Fatalf("full_text not normalized: %q", rec.FullText)
	}
	if rec.Number != "12-34" {
		t.Fatalf("pattern should match across collapsed whitespace: %+v", rec)
	}
}

func TestParseFullWidthDigits(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("品川 ５００ あ １２-３４")
	if rec.Classification != "５００" || rec.Number != "１２-３４" {
		t.Fatalf("full-width digits not matched: %+v", rec)
	}
	if rec.Region != "品川" || rec.Hiragana != "あ" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseFullWidthSerialSynthesis(t *testing.T) {
	p := NewDefaultParser()
	rec := p.Parse("品川 500 あ １２３４")
	if rec.Number != "１２-３４" {
		t.Fatalf("expected rune-safe synthesis got %q", rec.Number)
	}
}

func TestParseCustomSeparatorSet(t *testing.T) {
	// A parser restricted to the ASCII hyphen must not treat ー as a separator.
	p := NewParser(nil, "-")
	rec := p.Parse("品川 500 あ 12ー34")
	if rec.Number == "12ー34" {
		t.Fatalf("ー should not be accepted by a hyphen-only parser: %+v", rec)
	}
}
