package i18n

type Language string

const (
	Thai    Language = "th"
	English Language = "en"
)

// Languages is ordered; the first entry is the default.
var Languages = []Language{Thai, English}

// StorageKey is the persisted preference entry holding the two-letter code.
const StorageKey = "tiew.language"

func DefaultLanguage() Language { return Languages[0] }

func ParseLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

func (l Language) Label() string {
	switch l {
	case Thai:
		return "ไทย"
	case English:
		return "English"
	default:
		return string(l)
	}
}
