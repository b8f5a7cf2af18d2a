package schema

// DisplayConfigTable represents the 'display.config' table
type DisplayConfigTable struct {
	Table                  string
	ID                     string
	ViewerToken            string
	Name                   string
	ShowGreek              string
	ShowHebrew             string
	ShowTranslation        string
	ShowStrongs            string
	ShowGrammar            string
	ShowPronunciation      string
	ShowWordOrder          string
	PrimaryRole            string
	SecondaryRole          string
	Arrangement            string
	GreekFontScale         string
	HebrewFontScale        string
	TranslationFontScale   string
	StrongsFontScale       string
	GrammarFontScale       string
	PronunciationFontScale string
	CardPadding            string
	CardSpacing            string
	Theme                  string
	CreatedAt              string
	UpdatedAt              string
}

// DisplayConfig is the schema definition for display.config
var DisplayConfig = DisplayConfigTable{
	Table:                  "display.config",
	ID:                     "id",
	ViewerToken:            "viewertoken",
	Name:                   "name",
	ShowGreek:              "showgreek",
	ShowHebrew:             "showhebrew",
	ShowTranslation:        "showtranslation",
	ShowStrongs:            "showstrongs",
	ShowGrammar:            "showgrammar",
	ShowPronunciation:      "showpronunciation",
	ShowWordOrder:          "showwordorder",
	PrimaryRole:            "primaryrole",
	SecondaryRole:          "secondaryrole",
	Arrangement:            "arrangement",
	GreekFontScale:         "greekfontscale",
	HebrewFontScale:        "hebrewfontscale",
	TranslationFontScale:   "translationfontscale",
	StrongsFontScale:       "strongsfontscale",
	GrammarFontScale:       "grammarfontscale",
	PronunciationFontScale: "pronunciationfontscale",
	CardPadding:            "cardpadding",
	CardSpacing:            "cardspacing",
	Theme:                  "theme",
	CreatedAt:              "createdat",
	UpdatedAt:              "updatedat",
}

func (t DisplayConfigTable) Columns() []string {
	return []string{
		t.ID, t.ViewerToken, t.Name,
		t.ShowGreek, t.ShowHebrew, t.ShowTranslation, t.ShowStrongs, t.ShowGrammar,
		t.ShowPronunciation, t.ShowWordOrder,
		t.PrimaryRole, t.SecondaryRole, t.Arrangement,
		t.GreekFontScale, t.HebrewFontScale, t.TranslationFontScale, t.StrongsFontScale,
		t.GrammarFontScale, t.PronunciationFontScale,
		t.CardPadding, t.CardSpacing, t.Theme, t.CreatedAt, t.UpdatedAt,
	}
}
