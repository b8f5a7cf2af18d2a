package schema

// CorpusWordTable represents the 'corpus.word' table
type CorpusWordTable struct {
	Table         string
	ID            string
	VerseID       string
	WordOrder     string
	StrongNumber  string
	GreekText     string
	GreekGrammar  string
	HebrewText    string
	HebrewGrammar string
	Gloss         string
	Script        string
	CreatedAt     string
	UpdatedAt     string
}

// CorpusWord is the schema definition for corpus.word
var CorpusWord = CorpusWordTable{
	Table:         "corpus.word",
	ID:            "id",
	VerseID:       "verseid",
	WordOrder:     "wordorder",
	StrongNumber:  "strongnumber",
	GreekText:     "greektext",
	GreekGrammar:  "greekgrammar",
	HebrewText:    "hebrewtext",
	HebrewGrammar: "hebrewgrammar",
	Gloss:         "gloss",
	Script:        "script",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CorpusWordTable) Columns() []string {
	return []string{
		t.ID, t.VerseID, t.WordOrder, t.StrongNumber, t.GreekText, t.GreekGrammar,
		t.HebrewText, t.HebrewGrammar, t.Gloss, t.Script, t.CreatedAt, t.UpdatedAt,
	}
}
