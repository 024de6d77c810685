package services

// fakeIntegrityError stands in for a foreign key violation reported by go-pg.
type fakeIntegrityError struct{}

func (fakeIntegrityError) Error() string { return "ERROR #23503 violates foreign key constraint" }
func (fakeIntegrityError) Field(k byte) string { return "" }
func (fakeIntegrityError) IntegrityViolation() bool { return true }
