package domain

const (
	LangEnglish   = "english"
	LangHindi     = "hindi"
	LangTamil     = "tamil"
	LangMalayalam = "malayalam"
)

type Templates struct {
	Welcome     string
	Help        string
	Reservation string
	Room        string
	Services    string
	Goodbye     string
}

// LanguageProfile holds the canned replies for one supported language.
type LanguageProfile struct {
	Code      string
	Name      string
	Greeting  string
	Templates Templates
}
