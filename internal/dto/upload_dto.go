package dto

// ProofUploadResponse returns the stored-artifact reference the workflow
// requires at submission and resubmission time.
type ProofUploadResponse struct {
	ProofRef  string `json:"proof_ref"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}
