package ports

// IDGenerator produces collision-resistant identifiers for new products and
// sessions. Generation never fails: implementations degrade to a
// deterministic timestamp-plus-random-suffix form when the strong source is
// unavailable.
type IDGenerator interface {
	NewID() string
}
