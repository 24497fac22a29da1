package gmdocs

import (
	"sort"
	"strings"
)

// CleanConstant normalises a constant read from a table row. It reports
// false when the row is not a real constant and must be discarded.
//
// The name loses one layer of surrounding backticks and then one layer
// of surrounding bold markers. Names starting with a backslash are
// escaping artifacts. Blank secondary descriptors are dropped; when the
// description is blank the alphabetically first remaining descriptor is
// promoted into it.
func CleanConstant(c *Constant) bool {
	c.Name = stripMarker(c.Name, "`")
	c.Name = stripMarker(c.Name, "**")

	if c.Name == "" || strings.HasPrefix(c.Name, `\`) {
		return false
	}

	for k, v := range c.SecondaryDescriptors {
		if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
			delete(c.SecondaryDescriptors, k)
		}
	}

	if strings.TrimSpace(c.Description) == "" && len(c.SecondaryDescriptors) > 0 {
		keys := make([]string, 0, len(c.SecondaryDescriptors))
		for k := range c.SecondaryDescriptors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		c.Description = c.SecondaryDescriptors[keys[0]]
		delete(c.SecondaryDescriptors, keys[0])
	}

	if len(c.SecondaryDescriptors) == 0 {
		c.SecondaryDescriptors = nil
	}
	return true
}

func stripMarker(s, marker string) string {
	if len(s) >= 2*len(marker) && strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) {
		return s[len(marker) : len(s)-len(marker)]
	}
	return s
}
