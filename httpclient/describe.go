package httpclient

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const fieldListKey = "%[1]d fields: %[2]s"

// The first entry is the fallback for unmatched languages.
var supportedLanguages = []language.Tag{language.German, language.English}

var fieldListCatalog = buildFieldListCatalog()

func buildFieldListCatalog() *catalog.Builder {
	builder := catalog.NewBuilder()

	_ = builder.Set(language.German, fieldListKey,
		plural.Selectf(1, "%d", "=1", "Feld: %[2]s", "other", "Felder: %[2]s"))
	_ = builder.Set(language.English, fieldListKey,
		plural.Selectf(1, "%d", "=1", "field: %[2]s", "other", "fields: %[2]s"))

	return builder
}

type describer struct {
	printer *message.Printer
}

func newDescriber(tag language.Tag) *describer {
	matcher := language.NewMatcher(supportedLanguages)
	_, index, _ := matcher.Match(tag)

	return &describer{
		printer: message.NewPrinter(supportedLanguages[index], message.Catalog(fieldListCatalog)),
	}
}

// describe builds the error description from an error body. The fallback is
// returned as is when the body is not the expected JSON shape; the decode
// error is returned alongside so callers can log it.
func (d *describer) describe(fallback string, body []byte) (string, error) {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return fallback, err
	}

	description := errResp.Message
	if description == "" {
		description = fallback
	}

	if len(errResp.Arguments) > 0 {
		description += " " + d.fieldList(errResp.Arguments)
	}

	return description, nil
}

func (d *describer) fieldList(arguments []string) string {
	return d.printer.Sprintf(fieldListKey, len(arguments), strings.Join(arguments, ", "))
}
