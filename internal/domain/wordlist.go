package domain

import "strings"

// WordList is the session-scoped saved-words list. It preserves insertion
// order, deduplicates case-insensitively, and lives only in memory — nothing
// is persisted across sessions. It is not safe for concurrent use; a list
// belongs to a single interactive session.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList returns an empty saved-words list.
func NewWordList() *WordList {
	return &WordList{index: make(map[string]int)}
}

// Add appends a word unless an equivalent entry already exists.
// It reports whether the word was added.
func (l *WordList) Add(word string) bool {
	key := normalize(word)
	if key == "" {
		return false
	}
	if _, ok := l.index[key]; ok {
		return false
	}
	l.index[key] = len(l.words)
	l.words = append(l.words, strings.TrimSpace(word))
	return true
}

// Remove deletes a word, matching case-insensitively.
// It reports whether anything was removed.
func (l *WordList) Remove(word string) bool {
	key := normalize(word)
	pos, ok := l.index[key]
	if !ok {
		return false
	}
	l.words = append(l.words[:pos], l.words[pos+1:]...)
	delete(l.index, key)
	for k, p := range l.index {
		if p > pos {
			l.index[k] = p - 1
		}
	}
	return true
}

// Contains reports whether an equivalent word is saved.
func (l *WordList) Contains(word string) bool {
	_, ok := l.index[normalize(word)]
	return ok
}

// Words returns the saved words in insertion order. The slice is a copy.
func (l *WordList) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len returns the number of saved words.
func (l *WordList) Len() int {
	return len(l.words)
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
