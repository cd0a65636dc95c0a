package ingredient

import "strings"

// TagSet is an ordered collection of unique tokens. Uniqueness is judged
// case-insensitively; the casing of the first occurrence is kept. Insertion
// order is preserved and reflects user entry order.
type TagSet struct {
	tokens []string
	index  map[string]int
}

// NewTagSet returns an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{index: make(map[string]int)}
}

// Add cleans the token and appends it unless an equivalent token (ignoring
// case) is already present. It reports whether the set changed.
func (s *TagSet) Add(token string) bool {
	tok := CleanToken(token)
	if tok == "" {
		return false
	}
	key := strings.ToLower(tok)
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.tokens)
	s.tokens = append(s.tokens, tok)
	return true
}

// AddAll adds each token in order and reports how many were newly added.
func (s *TagSet) AddAll(tokens []string) int {
	added := 0
	for _, tok := range tokens {
		if s.Add(tok) {
			added++
		}
	}
	return added
}

// Contains reports whether an equivalent token is present, ignoring case.
func (s *TagSet) Contains(token string) bool {
	_, ok := s.index[strings.ToLower(CleanToken(token))]
	return ok
}

// Remove deletes the token matching the argument (ignoring case) and reports
// whether anything was removed.
func (s *TagSet) Remove(token string) bool {
	key := strings.ToLower(CleanToken(token))
	pos, ok := s.index[key]
	if !ok {
		return false
	}
	s.tokens = append(s.tokens[:pos], s.tokens[pos+1:]...)
	delete(s.index, key)
	for k, p := range s.index {
		if p > pos {
			s.index[k] = p - 1
		}
	}
	return true
}

// RemoveLast deletes the most recently added token and returns it.
func (s *TagSet) RemoveLast() (string, bool) {
	if len(s.tokens) == 0 {
		return "", false
	}
	last := s.tokens[len(s.tokens)-1]
	s.Remove(last)
	return last, true
}

// Tokens returns a copy of the tokens in insertion order.
func (s *TagSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of tokens.
func (s *TagSet) Len() int { return len(s.tokens) }

// String serializes the set as a comma-joined list, the authoritative form
// submitted with queries.
func (s *TagSet) String() string {
	return strings.Join(s.tokens, ", ")
}
