package log

import (
	"fmt"
	"strings"
)

func formatPropertyID(id int32) string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// FormatEvent renders an event as a single human-readable line.
func FormatEvent(event Event) string {
	var b strings.Builder
	b.WriteString(event.Timestamp.Format("15:04:05.000000"))
	b.WriteString(" ")
	b.WriteString(shortID(event.LoadID))
	b.WriteString(" ")
	b.WriteString(event.Category.String())

	if event.Namespace != "" {
		fmt.Fprintf(&b, " [%s]", event.Namespace)
	}

	switch event.Category {
	case CategoryLoadStarted:
		if event.Source != "" {
			fmt.Fprintf(&b, " %s", event.Source)
		}
	case CategoryPropertyAccepted, CategoryPropertyRejected:
		fmt.Fprintf(&b, " %s", formatPropertyID(event.PropertyID))
	case CategoryLoadFinished:
		fmt.Fprintf(&b, " properties=%d", event.Count)
	}

	for _, msg := range event.Messages {
		b.WriteString("\n    ")
		b.WriteString(strings.ReplaceAll(msg, "\n", "\n    "))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
