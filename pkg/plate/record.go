package plate

// Record is the structured form of a Japanese vehicle license plate.
// All fields default to the empty string; consumers rely on every key being
// present in the JSON form, so no omitempty.
type Record struct {
	// Region is the place of registration printed on the plate (e.g. 品川).
	Region string `json:"region"`
	// Classification is the 3-digit vehicle category code.
	Classification string `json:"classification"`
	// Hiragana is the single kana character identifying the usage class.
	Hiragana string `json:"hiragana"`
	// Number is the serial in NN-NN form. When matched with a separator the
	// original separator character is kept verbatim.
	Number string `json:"number"`
	// FullText is the normalized OCR text the record was parsed from.
	FullText string `json:"full_text"`
}
