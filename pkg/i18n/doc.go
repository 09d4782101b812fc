// Package i18n provides locale-keyed message catalogs.
//
// A Catalog is loaded once from an Adapter (in-memory map, single file or an
// fs.FS glob such as an embedded directory) and then only read. Templates are
// resolved through a linear fallback chain that always terminates:
//
//	requested locale ("ja-jp") -> base language ("ja") -> default locale ("en")
//
// T falls back to the key itself and Td to a caller supplied default, so a
// caller always gets a string back.
//
// # Usage
//
//	catalog, err := i18n.New(ctx, i18n.NewFileAdapter("./messages.yaml"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//	msg := catalog.T("ja-JP", "greeting", "name", "Aiko")
//
// The built-in catalog with the error envelope and validation messages is
// available through Default.
//
// # HTTP
//
// Middleware stores the request locale in the context; DefaultLangExtractor
// reads the "lang" query parameter and cookie and negotiates Accept-Language
// with golang.org/x/text/language:
//
//	mux := i18n.Middleware(i18n.DefaultLangExtractor(catalog.Languages()))(router)
//
// Handlers then call catalog.Tc(r.Context(), key).
package i18n
