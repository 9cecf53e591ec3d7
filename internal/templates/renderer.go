package templates

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholders recognised in templates.
const (
	PlaceholderName      = "${name}"
	PlaceholderNameLower = "${name_lower}"
)

// Render substitutes every ${name} with name and every ${name_lower} with
// the lower-cased name. Both tokens are matched in a single pass, so text
// coming from name is never substituted again. No other syntax is
// interpreted.
func Render(text, name string) string {
	r := strings.NewReplacer(
		PlaceholderName, name,
		PlaceholderNameLower, cases.Lower(language.Und).String(name),
	)
	return r.Replace(text)
}

// RenderFile renders a template of the store and writes it to dest,
// overwriting any existing file.
func (s *Store) RenderFile(kind Kind, role Role, name, dest string) error {
	text, err := s.Read(kind, role)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, []byte(Render(text, name)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
