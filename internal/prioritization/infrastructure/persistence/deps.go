// Package persistence implements task.Repository for SQLite (local working
// list) and Postgres (server mode). Dependencies are stored as comma-joined
// text, round-tripping the input form the engine already accepts.
package persistence

import (
	"strconv"
	"strings"
)

func encodeDeps(deps []int64) string {
	if len(deps) == 0 {
		return ""
	}
	parts := make([]string, 0, len(deps))
	for _, dep := range deps {
		parts = append(parts, strconv.FormatInt(dep, 10))
	}
	return strings.Join(parts, ",")
}

func decodeDeps(raw string) []int64 {
	if raw == "" {
		return nil
	}
	deps := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			deps = append(deps, id)
		}
	}
	return deps
}
