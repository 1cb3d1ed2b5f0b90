package wordlist

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/alexander-akhmetov/signdeck/internal/domain"
)

// maxSuggestionDistance bounds how far a name may be from the query to be
// offered as a suggestion.
const maxSuggestionDistance = 3

// Resolve finds a list by exact id, unique id prefix, or case-insensitive
// name, in that order. A prefix shared by several ids that is not also a
// list name returns a *domain.AmbiguousError. A miss returns a
// *domain.NotFoundError that may carry the closest list name as a suggestion.
func (s *Store) Resolve(ref string) (domain.WordList, error) {
	ref = strings.TrimSpace(ref)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(ref); idx >= 0 {
		return s.lists[idx].Clone(), nil
	}

	var prefixed []int
	if ref != "" {
		for i := range s.lists {
			if strings.HasPrefix(s.lists[i].ID, ref) {
				prefixed = append(prefixed, i)
			}
		}
		if len(prefixed) == 1 {
			return s.lists[prefixed[0]].Clone(), nil
		}
	}

	for i := range s.lists {
		if strings.EqualFold(s.lists[i].Name, ref) {
			return s.lists[i].Clone(), nil
		}
	}

	if len(prefixed) > 1 {
		names := make([]string, len(prefixed))
		for i, idx := range prefixed {
			names[i] = s.lists[idx].Name
		}
		return domain.WordList{}, &domain.AmbiguousError{Kind: "word list", Ref: ref, Matches: names}
	}

	return domain.WordList{}, &domain.NotFoundError{
		Kind:       "word list",
		Ref:        ref,
		Suggestion: s.suggest(ref),
	}
}

// ShortIDs maps every list id to its shortest prefix of at least minLen
// characters that no other id in lists starts with. A prefix never ends in
// a hyphen. Each value resolves back to its list through Resolve.
func ShortIDs(lists []domain.WordList, minLen int) map[string]string {
	out := make(map[string]string, len(lists))
	for i, l := range lists {
		n := minLen
		for j, other := range lists {
			if i != j {
				n = max(n, commonPrefixLen(l.ID, other.ID)+1)
			}
		}
		for n > 0 && n < len(l.ID) && l.ID[n-1] == '-' {
			n++
		}
		out[l.ID] = l.ID[:min(n, len(l.ID))]
	}
	return out
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// suggest returns the list name closest to ref, or "" if none is close.
func (s *Store) suggest(ref string) string {
	query := strings.ToLower(ref)
	best, bestDist := "", maxSuggestionDistance+1
	for _, l := range s.lists {
		d := levenshtein.ComputeDistance(query, strings.ToLower(l.Name))
		if d < bestDist {
			best, bestDist = l.Name, d
		}
	}
	return best
}
