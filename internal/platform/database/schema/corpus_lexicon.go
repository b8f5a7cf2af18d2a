package schema

// CorpusLexiconTable represents the 'corpus.lexicon' table
type CorpusLexiconTable struct {
	Table            string
	ID               string
	StrongNumber     string
	GreekHeadword    string
	HebrewHeadword   string
	Pronunciation    string
	Definition       string
	Definition2      string
	PartOfSpeech     string
	Derivation       string
	LegacyDefinition string
	Script           string
	CreatedAt        string
}

// CorpusLexicon is the schema definition for corpus.lexicon
var CorpusLexicon = CorpusLexiconTable{
	Table:            "corpus.lexicon",
	ID:               "id",
	StrongNumber:     "strongnumber",
	GreekHeadword:    "greekheadword",
	HebrewHeadword:   "hebrewheadword",
	Pronunciation:    "pronunciation",
	Definition:       "definition",
	Definition2:      "definition2",
	PartOfSpeech:     "partofspeech",
	Derivation:       "derivation",
	LegacyDefinition: "legacydefinition",
	Script:           "script",
	CreatedAt:        "createdat",
}

func (t CorpusLexiconTable) Columns() []string {
	return []string{
		t.ID, t.StrongNumber, t.GreekHeadword, t.HebrewHeadword, t.Pronunciation,
		t.Definition, t.Definition2, t.PartOfSpeech, t.Derivation, t.LegacyDefinition,
		t.Script, t.CreatedAt,
	}
}
