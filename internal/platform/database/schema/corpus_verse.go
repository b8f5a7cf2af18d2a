package schema

// CorpusVerseTable represents the 'corpus.verse' table
type CorpusVerseTable struct {
	Table           string
	ID              string
	ChapterID       string
	VerseNumber     string
	TranslationText string
	CreatedAt       string
	UpdatedAt       string
}

// CorpusVerse is the schema definition for corpus.verse
var CorpusVerse = CorpusVerseTable{
	Table:           "corpus.verse",
	ID:              "id",
	ChapterID:       "chapterid",
	VerseNumber:     "versenumber",
	TranslationText: "translationtext",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

func (t CorpusVerseTable) Columns() []string {
	return []string{t.ID, t.ChapterID, t.VerseNumber, t.TranslationText, t.CreatedAt, t.UpdatedAt}
}
