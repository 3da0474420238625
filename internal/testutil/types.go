// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strings"
)

// Object returns the text of a deterministic JSON object with the given
// nesting depth and number of members per object. Members cycle through
// strings, integers, Booleans, null, and (while depth > 1) nested objects.
// Strings include escape sequences and multi-byte characters.
func Object(depth, width int) string {
	var sb strings.Builder
	writeObject(&sb, depth, width, 0)
	return sb.String()
}

var sampleStrings = []string{
	`plain text`,
	`line one\nline two`,
	`say \"hi\"`,
	`caf\u00e9 \ud83d\ude00`,
	"na\u00efve \u65e5\u672c",
	`C:\\path\\to\\file`,
}

func writeObject(sb *strings.Builder, depth, width, seed int) {
	sb.WriteByte('{')
	for i := range width {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, `"k%d_%d": `, depth, i)
		switch k := seed + i; k % 5 {
		case 0:
			fmt.Fprintf(sb, `"%s"`, sampleStrings[k%len(sampleStrings)])
		case 1:
			fmt.Fprintf(sb, "%d", (k*7919)%100003-50000)
		case 2:
			if k%2 == 0 {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		case 3:
			sb.WriteString("null")
		case 4:
			if depth > 1 {
				writeObject(sb, depth-1, width, k+1)
			} else {
				sb.WriteString(`""`)
			}
		}
	}
	sb.WriteByte('}')
}
