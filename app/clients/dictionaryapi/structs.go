package dictionaryapi

// WordEntry holds one dictionary record from an API response
type WordEntry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Origin    string     `json:"origin"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic holds a single pronunciation variant
type Phonetic struct {
	Text  string  `json:"text"`
	Audio *string `json:"audio"`
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition holds a single sense of a meaning
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// PhoneticText returns the entry transcription, falling back to the
// first non-empty variant from the phonetics list
func (e WordEntry) PhoneticText() string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}
