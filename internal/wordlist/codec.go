package wordlist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/alexander-akhmetov/signdeck/internal/debug"
	"github.com/alexander-akhmetov/signdeck/internal/domain"
)

// record is the stored shape of a WordList. Field names match the format
// written by earlier versions, so existing blobs keep loading.
type record struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Words     []string `json:"words"`
	Color     string   `json:"color"`
	CreatedAt string   `json:"createdAt"`
}

// Encode serializes the whole collection.
func Encode(lists []domain.WordList) ([]byte, error) {
	records := make([]record, 0, len(lists))
	for _, l := range lists {
		records = append(records, record{
			ID:        l.ID,
			Name:      l.Name,
			Words:     l.Words,
			Color:     string(l.Color),
			CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode word lists: %w", err)
	}
	return data, nil
}

// Decode reads a stored collection on a best-effort basis. Anything that is
// not a JSON array yields no lists. Elements without an id, with a blank name
// or without usable words are skipped, and only the first of several
// elements sharing an id is kept. Colors outside the palette are replaced by
// the first palette color and unparseable timestamps become the zero time.
func Decode(data []byte) []domain.WordList {
	if !gjson.ValidBytes(data) {
		debug.Logf("wordlist: stored blob is not valid JSON (%d bytes), starting empty", len(data))
		return nil
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		debug.Logf("wordlist: stored blob is %s, not an array, starting empty", root.Type)
		return nil
	}

	var lists []domain.WordList
	seen := make(map[string]bool)
	root.ForEach(func(_, el gjson.Result) bool {
		l, ok := decodeOne(el)
		if !ok {
			debug.Logf("wordlist: skipping malformed entry %.80s", el.Raw)
			return true
		}
		if seen[l.ID] {
			debug.Logf("wordlist: skipping duplicate id %s", l.ID)
			return true
		}
		seen[l.ID] = true
		lists = append(lists, l)
		return true
	})
	return lists
}

func decodeOne(el gjson.Result) (domain.WordList, bool) {
	if !el.IsObject() {
		return domain.WordList{}, false
	}

	// Ids were numeric timestamps in some older blobs; accept either form.
	id := strings.TrimSpace(el.Get("id").String())
	name := strings.TrimSpace(el.Get("name").String())
	if id == "" || name == "" {
		return domain.WordList{}, false
	}

	var words []string
	for _, w := range el.Get("words").Array() {
		if w.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(w.Str); s != "" {
			words = append(words, s)
		}
	}
	if len(words) == 0 {
		return domain.WordList{}, false
	}

	color := parseColor(el.Get("color").String())
	if !color.Valid() {
		color = domain.Palette[0]
	}

	var createdAt time.Time
	if raw := el.Get("createdAt").String(); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			createdAt = t
		}
	}

	return domain.WordList{
		ID:        id,
		Name:      name,
		Words:     words,
		Color:     color,
		CreatedAt: createdAt,
	}, true
}

// parseColor accepts both palette names and the "bg-<name>-500" class names
// written by the browser version.
func parseColor(raw string) domain.Color {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "bg-") {
		raw = strings.TrimPrefix(raw, "bg-")
		if i := strings.LastIndex(raw, "-"); i > 0 {
			raw = raw[:i]
		}
	}
	return domain.Color(raw)
}
