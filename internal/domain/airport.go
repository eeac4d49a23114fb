package domain

// Airport is shared reference data. Airports are not owned by anyone; any
// authenticated user may create or delete them.
type Airport struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	ShortForm string `json:"short_form" db:"short_form"`
}
