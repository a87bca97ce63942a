package metadata

// CleaningData records a known-dirty CRC for a plugin plus the cleaning
// utility and record counts a cleaning pass reported (spec.md §3). A
// plugin is reported dirty iff its CRC matches a recorded CRC for that
// plugin name.
type CleaningData struct {
	CRC                   uint32
	Utility               string
	ITMCount              int
	DeletedReferenceCount int
	DeletedNavmeshCount   int
	Info                  []MessageContent
	Condition             string
}

// HasCondition reports whether this cleaning entry is conditional.
func (c CleaningData) HasCondition() bool {
	return c.Condition != ""
}

// Key is the dirty CRC, the set-key defined in spec.md §4.2
// ("cleaning_data keys on CRC").
func (c CleaningData) Key() uint32 {
	return c.CRC
}

func mergeCleaningSet(a, b []CleaningData) []CleaningData {
	seen := make(map[uint32]int, len(a)+len(b))
	result := make([]CleaningData, 0, len(a)+len(b))
	for _, c := range a {
		seen[c.Key()] = len(result)
		result = append(result, c)
	}
	for _, c := range b {
		if i, ok := seen[c.Key()]; ok {
			result[i] = c
			continue
		}
		seen[c.Key()] = len(result)
		result = append(result, c)
	}
	return result
}
