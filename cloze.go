package cardtext

import (
	"regexp"
	"strconv"
)

// clozeRe matches {{cN::...}} markers; group 1 is the ordinal. The hidden
// content may span newlines and is matched non-greedily so adjacent
// markers stay separate.
var clozeRe = regexp.MustCompile(`(?s)\{\{c(\d+)::.+?\}\}`)

// ClozeNumbers returns the distinct cloze-deletion ordinals in the text.
// An ordinal outside the uint16 range is skipped.
func ClozeNumbers(text string) map[uint16]bool {
	nums := make(map[uint16]bool, 4)
	for _, m := range clozeRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseUint(m[1], 10, 16)
		if err != nil {
			continue
		}
		nums[uint16(n)] = true
	}
	return nums
}
