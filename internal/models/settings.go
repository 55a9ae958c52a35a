package models

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

type Language string

const (
	LangNorwegian Language = "no"
	LangEnglish   Language = "en"
)

// Settings holds the three persisted application-wide scalars. Plan and
// profile have hard-coded defaults; an empty Language means "never chosen"
// and triggers device-locale detection on startup.
type Settings struct {
	Language      Language  `json:"language,omitempty"`
	Plan          Plan      `json:"plan"`
	ActiveProfile ProfileID `json:"profile"`
}

func DefaultSettings() Settings {
	return Settings{
		Plan:          PlanFree,
		ActiveProfile: ProfilePrivate,
	}
}

// NormalizePlan coerces an untrusted stored value; anything but "pro" is free.
func NormalizePlan(v Plan) Plan {
	if v == PlanPro {
		return PlanPro
	}
	return PlanFree
}

func NormalizeLanguage(v Language) Language {
	if v == LangEnglish {
		return LangEnglish
	}
	return LangNorwegian
}

func NormalizeProfile(v ProfileID) ProfileID {
	if v == ProfileWork {
		return ProfileWork
	}
	return ProfilePrivate
}
