package handler

import (
	"log/slog"
	"net/url"
	"sort"
	"strings"
)

// Permit picks scope[key] entries for the permitted keys out of a submitted
// form. A key that was not submitted maps to nil. Any other scope[...] key is
// dropped and logged at debug level.
func Permit(log *slog.Logger, values url.Values, scope string, keys ...string) map[string]*string {
	permitted := make(map[string]*string, len(keys))
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
		permitted[k] = nil
		if vs, ok := values[scope+"["+k+"]"]; ok && len(vs) > 0 {
			v := vs[0]
			permitted[k] = &v
		}
	}

	var dropped []string
	prefix := scope + "["
	for k := range values {
		if !strings.HasPrefix(k, prefix) || !strings.HasSuffix(k, "]") {
			continue
		}
		inner := k[len(prefix) : len(k)-1]
		if !allowed[inner] {
			dropped = append(dropped, inner)
		}
	}
	if len(dropped) > 0 && log != nil {
		sort.Strings(dropped)
		log.Debug("unpermitted parameters", "scope", scope, "keys", dropped)
	}
	return permitted
}
