package payapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalize_APIListShape(t *testing.T) {
	raw := decode(t, `{"data": [], "page_info": {"has_next": false}}`)

	env := Normalize(raw, "list_payouts")

	got, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [],
		"metadata": {"type": "payouts", "count": 0, "tool": "list_payouts", "is_single_item": false},
		"page_info": {"has_next": false}
	}`, string(got))
}

func TestNormalize_APIListShape_WithRecordsAndCursors(t *testing.T) {
	raw := decode(t, `{
		"data": [{"id": "po_1"}, {"id": "po_2"}],
		"page_info": {"has_next": true, "next_cursor": "cur_abc"}
	}`)

	env := Normalize(raw, "list_payouts")

	assert.Len(t, env.Data, 2)
	assert.Equal(t, 2, env.Metadata.Count)
	assert.Equal(t, "payouts", env.Metadata.Type)
	assert.False(t, env.Metadata.IsSingleItem)
	assert.Empty(t, env.Metadata.OriginalFormat)
	assert.Equal(t, map[string]any{"has_next": true, "next_cursor": "cur_abc"}, env.PageInfo)
}

func TestNormalize_APISingleShape(t *testing.T) {
	raw := decode(t, `{"data": {"id": "py_456", "status": "succeeded"}}`)

	env := Normalize(raw, "retrieve_payment")

	got, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [{"id": "py_456", "status": "succeeded"}],
		"metadata": {"type": "payment", "count": 1, "tool": "retrieve_payment", "is_single_item": true}
	}`, string(got))
}

func TestNormalize_CustomShape(t *testing.T) {
	raw := decode(t, `{"payouts": [{"id": "po_789", "status": "pending"}], "count": 1}`)

	env := Normalize(raw, "get_recent_payouts")

	got, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": [{"id": "po_789", "status": "pending"}],
		"metadata": {"type": "payouts", "count": 1, "tool": "get_recent_payouts", "original_format": "custom", "is_single_item": false}
	}`, string(got))
}

func TestNormalize_UnknownShapeWrapsWholePayload(t *testing.T) {
	raw := decode(t, `{"available": 1200, "pending": 300, "currency": "usd"}`)

	env := Normalize(raw, "retrieve_balance")

	assert.Equal(t, []any{raw}, env.Data)
	assert.Equal(t, 1, env.Metadata.Count)
	assert.Equal(t, "balance", env.Metadata.Type)
	assert.Equal(t, "unknown", env.Metadata.OriginalFormat)
	assert.True(t, env.Metadata.IsSingleItem)
	assert.Nil(t, env.PageInfo)
}

func TestNormalize_BareTopLevelArray(t *testing.T) {
	raw := decode(t, `[{"id": "tx_1"}, {"id": "tx_2"}]`)

	env := Normalize(raw, "search_transactions")

	assert.Len(t, env.Data, 2)
	assert.Equal(t, "transactions", env.Metadata.Type)
	assert.False(t, env.Metadata.IsSingleItem)
}

func TestNormalize_CustomKeyMissingFallsBackToUnknown(t *testing.T) {
	// The tool has a known custom key, but this payload does not carry it.
	raw := decode(t, `{"status": "empty"}`)

	env := Normalize(raw, "get_recent_payouts")

	assert.Equal(t, []any{raw}, env.Data)
	assert.Equal(t, "unknown", env.Metadata.OriginalFormat)
	assert.True(t, env.Metadata.IsSingleItem)
}

func TestNormalize_UnknownToolDerivesTypeLabel(t *testing.T) {
	tests := []struct {
		tool string
		want string
	}{
		{"list_settlements", "settlements"},
		{"retrieve_mandate", "mandate"},
		{"create_checkout_session", "checkout_session"},
		{"get_fees", "fees"},
		{"weird", "weird"},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			env := Normalize(decode(t, `{"data": []}`), tt.tool)
			assert.Equal(t, tt.want, env.Metadata.Type)
		})
	}
}

func TestNormalize_EmptyListUnderCustomKey(t *testing.T) {
	raw := decode(t, `{"payouts": []}`)

	env := Normalize(raw, "get_recent_payouts")

	assert.Empty(t, env.Data)
	assert.Equal(t, 0, env.Metadata.Count)
	assert.Equal(t, "custom", env.Metadata.OriginalFormat)
}

func TestClassifyShape_DetectionOrder(t *testing.T) {
	// A "data" list wins over a custom key even for a custom-key tool.
	raw := decode(t, `{"data": [{"id": "po_1"}], "payouts": [{"id": "po_2"}]}`)
	shape := classifyShape(raw, "get_recent_payouts")
	assert.Equal(t, shapeAPIList, shape.kind)

	// Scalars classify as unknown.
	assert.Equal(t, shapeUnknown, classifyShape("plain string", "list_payouts").kind)
	assert.Equal(t, shapeUnknown, classifyShape(nil, "list_payouts").kind)
}
