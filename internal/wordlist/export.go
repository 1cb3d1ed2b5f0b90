package wordlist

import (
	"fmt"
	"time"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
)

// Export renders a single list as a standalone JSON document.
func Export(l domain.WordList, indent bool) ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("id", l.ID)
	set("name", l.Name)
	set("color", string(l.Color))
	set("createdAt", l.CreatedAt.UTC().Format(time.RFC3339))
	set("wordCount", len(l.Words))
	set("words", l.Words)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", l.ID, err)
	}

	if indent {
		return pretty.Pretty(doc), nil
	}
	return doc, nil
}
