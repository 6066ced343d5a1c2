package handler

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Locales выбирает локаль форматирования цен по заголовку Accept-Language
type Locales struct {
	supported []language.Tag
	matcher   language.Matcher
}

func NewLocales(ids []string) *Locales {
	supported := make([]language.Tag, 0, len(ids))
	for _, id := range ids {
		tag, err := language.Parse(id)
		if err != nil {
			logrus.Warnf("skipping locale %q: %v", id, err)
			continue
		}
		supported = append(supported, tag)
	}
	if len(supported) == 0 {
		supported = append(supported, language.AmericanEnglish)
	}

	return &Locales{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Default - первая настроенная локаль
func (l *Locales) Default() language.Tag {
	return l.supported[0]
}

func (l *Locales) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return l.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return l.Default()
	}
	_, idx, conf := l.matcher.Match(tags...)
	if conf == language.No {
		return l.Default()
	}
	return l.supported[idx]
}
