package domain

// Group is a permission group a sender inherits. Weight orders a sender's
// memberships, highest first.
type Group struct {
	Name   string
	Weight int
}
