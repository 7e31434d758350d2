package change_status

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}
