package dockerhost

import (
	"strconv"
	"strings"
)

// UsedHostPorts parses the output of `docker ps --format '{{.Ports}}'`
// into the set of host ports currently bound. Entries without a host
// binding (no "->") and unparseable fragments are ignored.
func UsedHostPorts(psOutput string) map[int]bool {
	used := make(map[int]bool)
	for _, line := range strings.Split(psOutput, "\n") {
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			host, _, found := strings.Cut(part, "->")
			if !found {
				continue
			}
			portStr := host[strings.LastIndex(host, ":")+1:]
			port, err := strconv.Atoi(portStr)
			if err != nil {
				continue
			}
			used[port] = true
		}
	}
	return used
}

// NextFreePort returns the smallest port >= base not present in used.
func NextFreePort(used map[int]bool, base int) int {
	port := base
	for used[port] {
		port++
	}
	return port
}
