package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/width"

	"github.com/roach88/specdoc/internal/model"
	"github.com/roach88/specdoc/internal/spec"
)

// ListContacts returns all contacts sorted by id.
func ListContacts(s *spec.Spec) []model.Contact {
	contacts := slices.Clone(s.Contacts)
	slices.SortStableFunc(contacts, func(a, b model.Contact) int {
		return int(a.ID) - int(b.ID)
	})
	return contacts
}

// WriteContacts prints one contact per line: the id padded to three
// columns, the name padded to the widest name plus one, then the email.
func WriteContacts(w io.Writer, contacts []model.Contact) error {
	nameWidth := 0
	for _, c := range contacts {
		nameWidth = max(nameWidth, displayWidth(c.Name))
	}

	for _, c := range contacts {
		id := fmt.Sprintf("%-3d", c.ID)
		name := c.Name + strings.Repeat(" ", nameWidth+1-displayWidth(c.Name))
		if _, err := fmt.Fprintf(w, "%s %s %s\n", id, name, c.EmailOrEmpty()); err != nil {
			return err
		}
	}
	return nil
}

// displayWidth counts terminal columns, treating wide and fullwidth runes
// as two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
