package roster

// Employee is an immutable identity record from the master roster. Both
// fields are kept as raw strings; matching is exact and case-sensitive.
type Employee struct {
	ID   string
	Name string
}
