package add_note

// AddNoteRequest HTTP request model
type AddNoteRequest struct {
	NoteText string `json:"noteText"`
}
