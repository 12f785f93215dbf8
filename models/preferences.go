package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type Language string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
	LanguageJA Language = "ja"
)

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageZH || l == LanguageJA
}
