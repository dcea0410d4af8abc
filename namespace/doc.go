// Package namespace decides which debug namespaces are active.
//
// A [Filter] is configured from an enable-spec: a comma or whitespace
// separated list of patterns where `*` matches any run of characters and a
// leading `-` marks an exclusion. Exclusions always win over inclusions, and
// a namespace matching no inclusion is disabled:
//
//	f := namespace.NewFilter()
//	f.Enable("api:*,-api:debug")
//
//	f.Enabled("api:users") // true
//	f.Enabled("api:debug") // false
//	f.Enabled("worker")    // false
//
// [Filter.Disable] turns the current state back into an equivalent spec and
// clears it, so a spec can be saved and restored:
//
//	saved := f.Disable()
//	f.Enable(saved)
//
// Every call to [Filter.Enable] bumps [Filter.Version], which lets callers
// cache the result of [Filter.Enabled] and only recompute it after the
// configuration changes.
package namespace
