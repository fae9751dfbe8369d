package calendar

import (
	"fmt"
	"regexp"
	"strings"
)

// Name is one --calendar argument: a calendar summary (or regular
// expression) plus an optional explicit color after '#'.
type Name struct {
	Name  string
	Color string
}

// ParseName splits a "name#color" calendar argument.
func ParseName(arg string) (Name, error) {
	parts := strings.Split(arg, "#")
	switch len(parts) {
	case 1:
		return Name{Name: parts[0], Color: "default"}, nil
	case 2:
		return Name{Name: parts[0], Color: parts[1]}, nil
	}
	return Name{}, fmt.Errorf("cannot parse calendar name: %q", arg)
}

// Select picks the calendars matching the given names out of all. An exact
// summary match wins over regex matches and selects only that entry;
// otherwise every calendar whose summary matches the name as a
// case-insensitive regex is selected. Matched calendars get the name's
// color as their ColorSpec. With no names, all calendars are selected.
func Select(all []*Info, names []Name) []*Info {
	if len(names) == 0 {
		return all
	}

	var selected []*Info
	for _, name := range names {
		var matches []*Info
		re, reErr := regexp.Compile("(?i)" + name.Name)

		for _, cal := range all {
			if name.Name == cal.Summary {
				// exact match tosses out any regex matches
				cal.ColorSpec = colorSpec(name.Color)
				matches = []*Info{cal}
				break
			}
			if reErr == nil && re.MatchString(cal.Summary) {
				cal.ColorSpec = colorSpec(name.Color)
				matches = append(matches, cal)
			}
		}
		selected = append(selected, matches...)
	}
	return selected
}

func colorSpec(color string) string {
	if color == "default" {
		return ""
	}
	return color
}
