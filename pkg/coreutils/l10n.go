/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import (
	"github.com/erni27/imcache"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translations: key → language → translated value
type Translations map[string]map[language.Tag]string

func GetCatalogFromTranslations(translations Translations) catalog.Catalog {
	cat := catalog.NewBuilder()
	for key, langToValue := range translations {
		for lang, value := range langToValue {
			if err := cat.SetString(lang, key, value); err != nil {
				// notest
				panic(err)
			}
		}
	}
	return cat
}

// Localizer resolves message keys (field titles, category labels)
// against a translations catalog. Printers are built once per language
// and kept in a cache.
type Localizer struct {
	cat      catalog.Catalog
	printers imcache.Cache[language.Tag, *message.Printer]
}

func NewLocalizer(translations Translations) *Localizer {
	return &Localizer{cat: GetCatalogFromTranslations(translations)}
}

// Localize returns the translation of key for lang. Keys without a
// translation are returned as is.
func (l *Localizer) Localize(lang language.Tag, key string) string {
	printer, ok := l.printers.Get(lang)
	if !ok {
		printer = message.NewPrinter(lang, message.Catalog(l.cat))
		l.printers.Set(lang, printer, imcache.WithNoExpiration())
	}
	return printer.Sprintf(key)
}
