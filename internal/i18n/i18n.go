// Package i18n translates user-facing labels and formats dates for the
// configured locale. Messages are keyed by their canonical English text;
// placeholders use the %(name)s form.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator turns canonical English strings into localized ones.
type Translator interface {
	Translate(msg string, opts ...Option) string
	LongDate(t time.Time) string
}

// Option adjusts a single Translate call.
type Option func(*request)

type request struct {
	args    map[string]string
	context string
}

// Context disambiguates identical English strings, e.g. "Done" the
// adjective versus a verb.
func Context(c string) Option {
	return func(r *request) {
		r.context = c
	}
}

// Args supplies values for %(name)s placeholders.
func Args(args map[string]string) Option {
	return func(r *request) {
		r.args = args
	}
}

// contextSeparator joins context and message the way gettext does.
const contextSeparator = "\x04"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
}

var matcher = language.NewMatcher(supported)

// CatalogTranslator is a Translator backed by an x/text message catalog.
type CatalogTranslator struct {
	printer *message.Printer
	dates   dateFormat
	tag     language.Tag
}

// New returns a translator for locale. Unsupported locales fall back to English.
func New(locale string) *CatalogTranslator {
	tag := supported[0]
	if parsed, err := language.Parse(locale); err == nil {
		_, index, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[index]
		}
	}

	return &CatalogTranslator{
		printer: message.NewPrinter(tag, message.Catalog(builtin)),
		dates:   dateFormats[tag],
		tag:     tag,
	}
}

// Language returns the tag the translator resolved to.
func (t *CatalogTranslator) Language() language.Tag {
	return t.tag
}

// Translate localizes msg, falling back to the English text.
func (t *CatalogTranslator) Translate(msg string, opts ...Option) string {
	var req request
	for _, opt := range opts {
		opt(&req)
	}

	key := catalogKey(req.context, msg)
	out := t.printer.Sprintf(key)
	if req.context != "" {
		out = strings.TrimPrefix(out, req.context+contextSeparator)
	}

	return substitute(out, req.args)
}

// LongDate formats t as a long date, e.g. "October 15, 2026".
func (t *CatalogTranslator) LongDate(at time.Time) string {
	return t.dates.format(at)
}

// catalogKey encodes placeholders so the printer does not read them as verbs.
func catalogKey(context, msg string) string {
	msg = strings.ReplaceAll(msg, "%", "%%")
	msg = strings.ReplaceAll(msg, "%%(", "{(")
	msg = placeholderBraces(msg)
	if context != "" {
		return context + contextSeparator + msg
	}
	return msg
}

// placeholderBraces rewrites "{(name)s" into "{name}".
func placeholderBraces(msg string) string {
	var b strings.Builder
	for {
		start := strings.Index(msg, "{(")
		if start < 0 {
			b.WriteString(msg)
			return b.String()
		}
		end := strings.Index(msg[start:], ")s")
		if end < 0 {
			b.WriteString(msg)
			return b.String()
		}
		b.WriteString(msg[:start])
		b.WriteString("{" + msg[start+2:start+end] + "}")
		msg = msg[start+end+2:]
	}
}

func substitute(msg string, args map[string]string) string {
	for name, value := range args {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// builtin holds every translation shipped with the binary.
var builtin = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, entry := range entries {
		key := catalogKey(entry.context, entry.msg)
		mustSet(b, language.English, key, catalogKey("", entry.msg))
		for tag, translated := range entry.translations {
			mustSet(b, tag, key, catalogKey("", translated))
		}
	}
	return b
}()

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: %s %q: %v", tag, key, err))
	}
}
