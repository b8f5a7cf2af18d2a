package schema

// CorpusChapterTable represents the 'corpus.chapter' table
type CorpusChapterTable struct {
	Table         string
	ID            string
	BookID        string
	ChapterNumber string
	CreatedAt     string
	UpdatedAt     string
}

// CorpusChapter is the schema definition for corpus.chapter
var CorpusChapter = CorpusChapterTable{
	Table:         "corpus.chapter",
	ID:            "id",
	BookID:        "bookid",
	ChapterNumber: "chapternumber",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CorpusChapterTable) Columns() []string {
	return []string{t.ID, t.BookID, t.ChapterNumber, t.CreatedAt, t.UpdatedAt}
}
