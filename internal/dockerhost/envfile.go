package dockerhost

import (
	"fmt"
	"sort"
	"strings"
)

// EnvFile renders environment variables as the content of a container
// .env file: one NAME="value" line per variable, sorted by name, double
// quotes in values escaped.
func EnvFile(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value := strings.ReplaceAll(vars[name], `"`, `\"`)
		fmt.Fprintf(&b, "%s=\"%s\"\n", name, value)
	}
	return b.String()
}
