package signal

import (
	"fmt"
	"strings"
)

// headline summarizes a scoring in one line for logs and pick records.
func headline(tier string, confidence int, top []Result) string {
	var drivers []string
	for _, r := range top {
		if r.Score > neutral {
			drivers = append(drivers, r.Name)
		}
		if len(drivers) == 3 {
			break
		}
	}

	label := strings.ReplaceAll(tier, "_", " ")
	if len(drivers) == 0 {
		return fmt.Sprintf("%s at %d confidence, no signal above neutral", label, confidence)
	}
	return fmt.Sprintf("%s at %d confidence, driven by %s", label, confidence, strings.Join(drivers, ", "))
}
