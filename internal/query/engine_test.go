package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

func sampleDocs() []client.DocumentRecord {
	return []client.DocumentRecord{
		{FileName: "invoice.pdf", FileType: "pdf", UploadedBy: "nathan"},
		{FileName: "receipt.pdf", FileType: "pdf", UploadedBy: "emily"},
		{FileName: "photo.png", FileType: "image", UploadedBy: "nathan"},
	}
}

func TestEngine_Query_FileNames(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(sampleDocs(), ".[].file_name", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"invoice.pdf", "receipt.pdf", "photo.png"}, result.Values)
	assert.Equal(t, 3, result.RawCount)
}

func TestEngine_Query_Select(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(sampleDocs(), `.[] | select(.file_type == "pdf") | .file_name`, false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"invoice.pdf", "receipt.pdf"}, result.Values)
}

func TestEngine_Query_Deduplicate(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(sampleDocs(), ".[].uploaded_by", true, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"nathan", "emily"}, result.Values)
	assert.Equal(t, 3, result.RawCount)
}

func TestEngine_Query_MaxResults(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(sampleDocs(), ".[].file_name", false, 2)
	require.NoError(t, err)
	assert.Len(t, result.Values, 2)
}

func TestEngine_Query_InvalidExpression(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Query(sampleDocs(), ".file_name[", false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")
}

func TestEngine_Query_RuntimeErrorHint(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(map[string]any{"docs": nil}, ".docs[]", false, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "the path may not exist")
}

func TestEngine_ValidateExpression(t *testing.T) {
	engine := NewEngine()

	assert.NoError(t, engine.ValidateExpression(".[] | .file_name"))
	assert.Error(t, engine.ValidateExpression(".name["))
}
