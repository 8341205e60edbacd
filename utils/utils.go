package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

func ContainsInt(targetInt int, sliceOfInts []int) bool {
	for i := range sliceOfInts {
		if sliceOfInts[i] == targetInt {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// Title capitalizes each word of the given string, e.g. monday -> Monday, new york city -> New York City
func Title(value string) string {
	return titleCaser.String(value)
}

// Normalize lower-cases the input and removes surrounding whitespace
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Separator returns a line of dashes used to split the sections of the output
func Separator(width int) string {
	return strings.Repeat("-", width)
}
