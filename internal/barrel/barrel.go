// Package barrel patches export-aggregator ("barrel") files.
//
// Patching is textual and line based. Nothing here parses module syntax: a
// fixed marker line anchors insertion and a trailing-comma heuristic keeps
// destructured blocks well formed.
package barrel

import (
	"fmt"
	"os"
	"strings"
)

// CommonMarker closes the import block that re-exports the .Common barrel.
const CommonMarker = "} from './.Common';"

const (
	crlf = "\r\n"
	lf   = "\n"
)

// LineEnding returns "\r\n" when text contains a CRLF and "\n" otherwise.
func LineEnding(text string) string {
	if strings.Contains(text, crlf) {
		return crlf
	}
	return lf
}

// AppendExport appends an export statement for name at the end of text:
//
//	export {
//		<name>
//	} from './<name>';
//
// The block is always LF terminated. Existing content is not inspected.
func AppendExport(text, name string) string {
	return text + "\nexport {\n\t" + name + "\n} from './" + name + "';\n"
}

// InsertIntoBlock inserts "  <name>," right before the first line equal to
// marker. A preceding line without a trailing comma gets one, so every
// identifier line of the block but the last keeps ending in a comma. Text
// without the marker is returned unchanged.
func InsertIntoBlock(text, name, marker string) string {
	eol := LineEnding(text)
	lines := strings.Split(text, eol)

	at := -1
	for i, line := range lines {
		if line == marker {
			at = i
			break
		}
	}
	if at < 0 {
		return text
	}

	if at > 0 && !strings.HasSuffix(lines[at-1], ",") {
		lines[at-1] += ","
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, "  "+name+",")
	out = append(out, lines[at:]...)

	return strings.Join(out, eol)
}

// PatchFile rewrites path with patch applied to its content. The whole file
// is read, transformed and written back; concurrent writers are not
// coordinated.
func PatchFile(path string, patch func(string) string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading barrel %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading barrel %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(patch(string(data))), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing barrel %s: %w", path, err)
	}
	return nil
}
