package models

import (
	"strings"
	"unicode/utf8"
)

type Review struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Rating  int    `json:"rating" bson:"rating"`
	Date    string `json:"date" bson:"date"`
	Comment string `json:"comment" bson:"comment"`
	Avatar  string `json:"avatar" bson:"avatar"`
}

// AvatarFor derives the one-character avatar shown next to a review: the
// uppercased first rune of the reviewer's name, or "?" for an empty name.
func AvatarFor(name string) string {
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
