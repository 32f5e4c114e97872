package utils

import (
	"github.com/abadojack/whatlanggo"
)

var whatLangOpts = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Hin: true,
	},
}

// DetectResponseLang picks the bundle language for user facing strings
// from the text of the question itself.
func DetectResponseLang(query string) string {
	info := whatlanggo.DetectWithOptions(query, whatLangOpts)
	if info.Lang == whatlanggo.Hin {
		return "hi"
	}
	return "en"
}
