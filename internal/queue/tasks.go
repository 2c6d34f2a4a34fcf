package queue

const TypeContentIngest = "content:ingest"

// ContentIngestPayload points the worker at a spooled upload. The original
// filename carries the company/role encoding, so it travels separately
// from the spool path.
type ContentIngestPayload struct {
	SpoolPath string `json:"spool_path"`
	FileName  string `json:"file_name"`
}
