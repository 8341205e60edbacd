package prompt

import (
	"strings"

	"bikeshare/domain/entities/selection"
	"bikeshare/utils"
)

// ParseCity classifies the input as one of the given cities, case-insensitive.
// False is returned for any other input
func ParseCity(input string, cities []string) (string, bool) {
	city := utils.Normalize(input)
	if !utils.ContainsString(city, cities) {
		return "", false
	}
	return city, true
}

// ParseChoices parses a comma separated list of names, case-insensitive.
// "all" returns a nil slice. A single name that is not in validNames rejects the whole input.
// Repeated names are kept once, in the order they were first written
func ParseChoices(input string, validNames []string) ([]string, bool) {
	normalized := utils.Normalize(input)
	if normalized == selection.All {
		return nil, true
	}

	var choices []string
	for _, token := range strings.Split(normalized, ",") {
		choice := strings.TrimSpace(token)
		if !utils.ContainsString(choice, validNames) {
			return nil, false
		}
		if !utils.ContainsString(choice, choices) {
			choices = append(choices, choice)
		}
	}
	return choices, true
}
