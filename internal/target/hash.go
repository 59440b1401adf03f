package target

import "regexp"

// Content-hashed resource filenames look like <name>-<hash>.<ext> where the
// hash is a run of at least eight lowercase hex characters (for example
// added-icon-611425ee.svg). Anything else is left untouched.
var hashSuffix = regexp.MustCompile(`^(.+)-[0-9a-f]{8,}(\.[^.]+)$`)

// StripHash rewrites a content-hashed filename to <name>.<ext>. Filenames
// that do not carry a hash segment are returned unchanged.
func StripHash(name string) string {
	m := hashSuffix.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[1] + m[2]
}
