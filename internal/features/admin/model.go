package admin

// ReportEditRequest for PATCH /admin/reports/:id. Omitted fields are left
// unchanged. RemoveImages holds indices into the current evidenceBase64.
type ReportEditRequest struct {
	Description    *string        `json:"description"`
	CorruptionType *string        `json:"corruptionType"`
	Location       *LocationPatch `json:"location"`
	EvidenceLinks  []string       `json:"evidenceLinks"`
	RemoveImages   []int          `json:"removeImages"`
}

// LocationPatch edits the address text only; coordinates are fixed
type LocationPatch struct {
	Address *string `json:"address"`
}

// ActionRequest for PUT /admin/reports/:id/action
type ActionRequest struct {
	ActionTaken string `json:"actionTaken" binding:"max=2000"`
}
