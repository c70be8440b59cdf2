package cogmem

import "context"

// IngestOptions are the optional fields for IngestDocument.
type IngestOptions struct {
	// DocumentType hints what the text is, e.g. "README",
	// "architecture doc", "meeting notes". Omitted when empty.
	DocumentType string

	// ProjectID identifies the project the document belongs to.
	ProjectID string
}

// IngestDocument extracts memories from a document. Text may be up to 50K
// characters; see pkg/document for splitting larger inputs. The result
// carries "chunks_processed", "extracted", and a "memories" array.
func (c *Client) IngestDocument(ctx context.Context, text string, opts *IngestOptions) (Result, error) {
	if opts == nil {
		opts = &IngestOptions{}
	}

	payload := map[string]interface{}{
		"text": text,
	}
	if opts.DocumentType != "" {
		payload["document_type"] = opts.DocumentType
	}
	if opts.ProjectID != "" {
		payload["project_id"] = opts.ProjectID
	}

	return c.post(ctx, "ingest", payload)
}

// SaveSessionSummary saves a session summary (up to 2K characters).
// projectID may be empty for account-wide summaries.
func (c *Client) SaveSessionSummary(ctx context.Context, summary, projectID string) (Result, error) {
	payload := map[string]interface{}{
		"summary": summary,
	}
	if projectID != "" {
		payload["project_id"] = projectID
	}

	return c.post(ctx, "session-summary", payload)
}
