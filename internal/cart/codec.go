package cart

import (
	"encoding/json"
	"fmt"
)

// The persisted slot value is a JSON array of lines, unversioned. Anything
// that does not decode into that shape is treated as corrupt and discarded.

func encodeLines(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(lines)
}

func decodeLines(data []byte) ([]Line, error) {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	for i, l := range lines {
		if l.ID == "" {
			return nil, fmt.Errorf("line %d has no product id", i)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("line %d has non-positive quantity %d", i, l.Quantity)
		}
		if _, ok := seen[l.ID]; ok {
			return nil, fmt.Errorf("duplicate line for product %q", l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	return lines, nil
}
