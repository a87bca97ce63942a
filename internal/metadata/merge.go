package metadata

// MergeMetadata implements spec.md §4.2: scalars take other's value when
// other has one set, otherwise keep self; sets union by their defined
// keys; messages concatenate with self first. The receiver is treated as
// "self" (typically the masterlist entry) and the argument as "other"
// (typically the userlist entry) — this orientation is the contract for
// masterlist+userlist composition (spec.md §4.3 GetPluginMetadata).
//
// merge(x, empty) == x and merge(empty, x) == x hold because every
// scalar/set/message rule above is a no-op against an empty operand.
func (p PluginMetadata) MergeMetadata(other PluginMetadata) PluginMetadata {
	// An empty operand leaves the other side exactly as it was (nil
	// slices stay nil), so the identity laws hold value for value.
	if other.IsEmpty() {
		return p
	}
	if p.IsEmpty() {
		other.Name = p.Name
		return other
	}

	result := p

	if other.HasGroup {
		result.Group = other.Group
		result.HasGroup = true
	}
	if other.EnabledSet {
		result.Enabled = other.Enabled
		result.EnabledSet = true
	}
	result.Priority = p.Priority.Merge(other.Priority)
	result.GlobalPriority = p.GlobalPriority.Merge(other.GlobalPriority)

	result.LoadAfter = mergeFileSet(p.LoadAfter, other.LoadAfter)
	result.Requirements = mergeFileSet(p.Requirements, other.Requirements)
	result.Incompatibilities = mergeFileSet(p.Incompatibilities, other.Incompatibilities)
	result.Tags = mergeTagSet(p.Tags, other.Tags)
	result.CleaningData = mergeCleaningSet(p.CleaningData, other.CleaningData)
	result.Locations = mergeLocationSet(p.Locations, other.Locations)
	result.Messages = mergeMessages(p.Messages, other.Messages)

	return result
}
