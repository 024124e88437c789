package domain

// Profile holds the trainer's own identity, stamped onto every generated
// workout document. It is a singleton: there is exactly one profile,
// created empty on first use and overwritten wholesale on save.
type Profile struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	// CREF is the Brazilian physical-education professional license id.
	CREF string `json:"cref"`
	Age  string `json:"age"`
}
