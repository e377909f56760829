package albums

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

	windowsDeviceNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM0": {}, "COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
		"COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT0": {}, "LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {},
		"LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}
)

/*
SecureFilename turns a client supplied filename into one that is safe to use
as the last segment of a storage key. Accented characters are folded to
ASCII, anything else non-ASCII is dropped, path separators become
underscores, and the result contains only letters, digits, underscores,
dots and dashes. Leading and trailing dots and underscores are removed, so
traversal names such as "../../etc" cannot survive. The result may be empty.
*/
func SecureFilename(filename string) string {
	decomposed := norm.NFKD.String(filename)

	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}

		if r == '/' || r == '\\' {
			return ' '
		}

		return r
	}, decomposed)

	result := strings.Join(strings.Fields(ascii), "_")
	result = unsafeFilenameChars.ReplaceAllString(result, "")
	result = strings.Trim(result, "._")

	if result == "" {
		return result
	}

	base := strings.ToUpper(strings.Split(result, ".")[0])
	if _, reserved := windowsDeviceNames[base]; reserved {
		result = "_" + result
	}

	return result
}
