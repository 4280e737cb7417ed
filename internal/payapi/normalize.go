package payapi

import "strings"

// The upstream API answers in several shapes: most endpoints wrap records in
// a "data" key (list or single object), a few legacy endpoints nest their
// records under an endpoint-specific key, and anything else is treated as a
// single opaque record. Normalize flattens all of them into one Envelope so
// every tool returns the same structure.

type shapeKind int

const (
	shapeAPIList shapeKind = iota
	shapeAPISingle
	shapeCustom
	shapeUnknown
)

// responseShape is the classified shape of an upstream payload.
type responseShape struct {
	kind    shapeKind
	listKey string // set for shapeCustom
}

// Envelope is the canonical response wrapper returned by every tool.
type Envelope struct {
	Data     []any    `json:"data"`
	Metadata Metadata `json:"metadata"`
	PageInfo any      `json:"page_info,omitempty"`
}

// Metadata describes the normalized records.
type Metadata struct {
	Type           string `json:"type"`
	Count          int    `json:"count"`
	Tool           string `json:"tool"`
	OriginalFormat string `json:"original_format,omitempty"`
	IsSingleItem   bool   `json:"is_single_item"`
}

// toolTypes maps a tool name to the record type label it returns.
var toolTypes = map[string]string{
	"list_payments":       "payments",
	"retrieve_payment":    "payment",
	"create_payment":      "payment",
	"cancel_payment":      "payment",
	"list_payouts":        "payouts",
	"retrieve_payout":     "payout",
	"get_recent_payouts":  "payouts",
	"list_refunds":        "refunds",
	"retrieve_refund":     "refund",
	"create_refund":       "refund",
	"list_customers":      "customers",
	"retrieve_customer":   "customer",
	"create_customer":     "customer",
	"list_disputes":       "disputes",
	"retrieve_dispute":    "dispute",
	"retrieve_balance":    "balance",
	"search_transactions": "transactions",
}

// customListKeys maps tools whose endpoints nest records under a custom key
// instead of the standard "data" wrapper.
var customListKeys = map[string]string{
	"get_recent_payouts":  "payouts",
	"search_transactions": "transactions",
}

// classifyShape is a pure classification of an upstream payload. Detection
// order: standard "data" wrapper (list, then single), then the tool's known
// custom list key, then unknown.
func classifyShape(raw any, toolName string) responseShape {
	switch obj := raw.(type) {
	case []any:
		// Bare top-level array, no wrapper at all.
		return responseShape{kind: shapeAPIList}
	case map[string]any:
		if v, ok := obj["data"]; ok {
			if _, isList := v.([]any); isList {
				return responseShape{kind: shapeAPIList}
			}
			return responseShape{kind: shapeAPISingle}
		}
		if key, ok := customListKeys[toolName]; ok {
			if _, isList := obj[key].([]any); isList {
				return responseShape{kind: shapeCustom, listKey: key}
			}
		}
		return responseShape{kind: shapeUnknown}
	default:
		return responseShape{kind: shapeUnknown}
	}
}

// Normalize converts an upstream payload into the canonical Envelope. It
// never fails: empty lists yield count 0, and payloads of no known shape
// are wrapped as a single record.
func Normalize(raw any, toolName string) *Envelope {
	shape := classifyShape(raw, toolName)
	env := &Envelope{
		Metadata: Metadata{
			Type: typeLabel(toolName),
			Tool: toolName,
		},
	}

	switch shape.kind {
	case shapeAPIList:
		if obj, ok := raw.(map[string]any); ok {
			env.Data = obj["data"].([]any)
			if pi, ok := obj["page_info"]; ok && pi != nil {
				env.PageInfo = pi
			}
		} else {
			env.Data = raw.([]any)
		}

	case shapeAPISingle:
		obj := raw.(map[string]any)
		env.Data = []any{obj["data"]}
		env.Metadata.IsSingleItem = true

	case shapeCustom:
		obj := raw.(map[string]any)
		env.Data = obj[shape.listKey].([]any)
		env.Metadata.OriginalFormat = "custom"

	case shapeUnknown:
		env.Data = []any{raw}
		env.Metadata.IsSingleItem = true
		env.Metadata.OriginalFormat = "unknown"
	}

	if env.Data == nil {
		env.Data = []any{}
	}
	env.Metadata.Count = len(env.Data)
	return env
}

// typeLabel resolves the record type label for a tool, falling back to a
// label derived from the tool name for tools not in the static table.
func typeLabel(toolName string) string {
	if label, ok := toolTypes[toolName]; ok {
		return label
	}
	name := toolName
	for _, prefix := range []string{"list_", "get_", "retrieve_", "create_", "cancel_", "search_", "update_", "delete_"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	if name == "" {
		return "result"
	}
	return name
}
