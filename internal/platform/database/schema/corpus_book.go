package schema

// CorpusBookTable represents the 'corpus.book' table
type CorpusBookTable struct {
	Table        string
	ID           string
	Name         string
	Abbreviation string
	Testament    string
	CreatedAt    string
}

// CorpusBook is the schema definition for corpus.book
var CorpusBook = CorpusBookTable{
	Table:        "corpus.book",
	ID:           "id",
	Name:         "name",
	Abbreviation: "abbreviation",
	Testament:    "testament",
	CreatedAt:    "createdat",
}

func (t CorpusBookTable) Columns() []string {
	return []string{t.ID, t.Name, t.Abbreviation, t.Testament, t.CreatedAt}
}
