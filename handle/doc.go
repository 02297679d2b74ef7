// Package handle provides the checked handle table behind the bridge's
// opaque tokens.
//
// Callers of the bridge hold handles as capabilities; they never see
// the resource itself. The table converts what would otherwise be an
// unchecked pointer-lifetime hazard into a checked lookup: a handle is
// live from Insert until Remove, and any use afterward is a lookup
// miss, never undefined behavior.
//
// # Handle Assignment
//
// Handles are int64, assigned from a monotonic counter starting at 1.
// Handle 0 is reserved as the failure sentinel. Slots are never reused,
// so a stale handle cannot silently alias a newer resource.
//
//	table := handle.NewTable[*myResource]()
//
//	h := table.Insert(res)        // non-zero handle
//	res, ok := table.Get(h)       // ok while live
//	res, ok = table.Remove(h)     // caller now owns res
//	_, ok = table.Get(h)          // !ok forever after
//
// # Cleanup
//
// Remove hands the value back to the caller, who runs its destructor.
// Close destroys everything still live (values implementing Destroyer)
// as a backstop against leaked handles.
package handle
