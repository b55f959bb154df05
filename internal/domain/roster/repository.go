package roster

// Roster is the authoritative list of valid employee identities. It is loaded
// once at startup and treated as read-only for the life of the process, so no
// context or error plumbing appears on the lookup path.
type Roster interface {
	// Validate reports whether an exact-match (ID, Name) record exists.
	// Both fields compare with plain string equality: case-sensitive, no
	// trimming.
	Validate(employeeID, name string) bool

	// Count returns the number of loaded employees.
	Count() int
}
