package models

import "strings"

// Note is the free-text note attached to one activity, kept as ordered
// lines of text.
type Note struct {
	ActivityID string   `json:"activity_id"`
	Content    []string `json:"content"`
}

// Text joins the note lines into a single editable string.
func (n *Note) Text() string {
	return strings.Join(n.Content, "\n")
}

// SetText replaces the note content with the lines of the given string.
func (n *Note) SetText(text string) {
	if text == "" {
		n.Content = nil
		return
	}
	n.Content = strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
