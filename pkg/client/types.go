package client

// Major category heads. Minor heads are constrained by the major head; see
// the catalog package for the lookup table.
const (
	MajorPersonal     = "Personal"
	MajorProfessional = "Professional"
)

// Identity holds the fields returned by a successful OTP validation.
// Together with the mobile number they form a session.
type Identity struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// TagOption is one entry of the server's tag catalog.
type TagOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TagRef is how tags appear on the wire in search and upload payloads.
// Ad-hoc tags travel as their plain text, not a catalog id.
type TagRef struct {
	TagName string `json:"tag_name"`
}

// SearchTerm wraps the free-text query, mirroring the server's
// DataTables-style request shape.
type SearchTerm struct {
	Value string `json:"value"`
}

// SearchQuery is the complete filter payload for /searchDocumentEntry.
// Every field is always present on the wire; empty filters are sent as
// empty strings (or an empty tags list), never omitted.
type SearchQuery struct {
	MajorHead  string     `json:"major_head"`
	MinorHead  string     `json:"minor_head"`
	FromDate   string     `json:"from_date"`
	ToDate     string     `json:"to_date"`
	Tags       []TagRef   `json:"tags"`
	UploadedBy string     `json:"uploaded_by"`
	Start      int        `json:"start"`
	Length     int        `json:"length"`
	FilterID   string     `json:"filterId"`
	Search     SearchTerm `json:"search"`
}

// DocumentRecord is one search result. Records are owned by the server and
// read-only to this client; they live only as a snapshot of one response.
type DocumentRecord struct {
	FileName        string `json:"file_name"`
	FileURL         string `json:"file_url"`
	FileType        string `json:"file_type"`
	UploadedBy      string `json:"uploaded_by"`
	DocumentRemarks string `json:"document_remarks"`
}

// DocumentMeta is the JSON "data" part of an upload request.
type DocumentMeta struct {
	MajorHead       string   `json:"major_head"`
	MinorHead       string   `json:"minor_head"`
	DocumentDate    string   `json:"document_date"` // DD-MM-YYYY
	DocumentRemarks string   `json:"document_remarks"`
	Tags            []TagRef `json:"tags"`
	UserID          string   `json:"user_id"`
}
