// Package i18n translates kit messages from YAML or JSON catalogs.
//
// A catalog maps a language to domains, a domain to source messages and a
// message to its translation. Plural-aware translations list the forms "zero",
// "one" and "other":
//
//	de:
//	  kit/types:
//	    "Only a boolean value is allowed.": "Nur ein boolescher Wert ist erlaubt."
//	  kit/mutators:
//	    "The given value must have at least {{length}} character.":
//	      one: "Der Wert muss mindestens {{length}} Zeichen haben."
//	      other: "Der Wert muss mindestens {{length}} Zeichen haben."
//
// Translator implements text.Localizer, so it can be passed in text.Options when
// rendering messages. Requested languages are matched against the catalog with
// golang.org/x/text/language: "de-AT" falls back to "de", and every message
// falls back to the default language and finally to the source message.
//
// Catalogs are loaded through a TranslationAdapter: MapAdapter for in-memory
// data, FileAdapter for a single file, DirectoryAdapter for a directory and
// FSAdapter for an fs.FS such as embed.FS.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter(nil, "translations"))
//	if err != nil {
//	    return err
//	}
//	msg := ferr.Message(text.Options{Localizer: tr, Language: "de"})
package i18n
