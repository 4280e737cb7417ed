package server

import "encoding/json"

// Tool schemas are hand-written to pass strict MCP client validation; the
// Go SDK's auto-generated schemas use patterns like "type": ["null",
// "object"] that some validators reject. Every tool accepts an optional
// "account" argument selecting among configured accounts.

// envelopeOutputSchema describes the canonical envelope every tool returns.
var envelopeOutputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"data": {
			"type": "array",
			"description": "Normalized records, always an array even for single-item responses",
			"items": {"type": "object", "additionalProperties": true}
		},
		"metadata": {
			"type": "object",
			"properties": {
				"type": {"type": "string", "description": "Record type label, e.g. payments or payout"},
				"count": {"type": "integer", "description": "Number of records in data"},
				"tool": {"type": "string", "description": "Name of the tool that produced this envelope"},
				"original_format": {"type": "string", "description": "Set to custom or unknown when the upstream shape was non-standard"},
				"is_single_item": {"type": "boolean", "description": "True when the upstream response was a single record"}
			},
			"required": ["type", "count", "tool", "is_single_item"]
		},
		"page_info": {
			"type": "object",
			"description": "Upstream pagination info, carried through verbatim when present",
			"additionalProperties": true
		}
	},
	"required": ["data", "metadata"],
	"additionalProperties": false
}`)

var listPaymentsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of payments to return"},
		"starting_after": {"type": "string", "description": "Cursor: return results after this payment ID"},
		"status": {"type": "string", "description": "Filter by status: pending, succeeded, failed, canceled"},
		"customer": {"type": "string", "description": "Filter to one customer ID"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var retrievePaymentInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"payment_id": {"type": "string", "description": "Payment ID, e.g. py_123"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["payment_id"],
	"additionalProperties": false
}`)

var createPaymentInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"amount": {"type": "integer", "description": "Amount in minor currency units"},
		"currency": {"type": "string", "description": "Three-letter ISO currency code"},
		"customer": {"type": "string", "description": "Customer ID to charge"},
		"payment_method": {"type": "string", "description": "Payment method ID"},
		"description": {"type": "string", "description": "Free-text description"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["amount", "currency"],
	"additionalProperties": false
}`)

var cancelPaymentInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"payment_id": {"type": "string", "description": "Payment ID to cancel"},
		"reason": {"type": "string", "description": "Cancellation reason"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["payment_id"],
	"additionalProperties": false
}`)

var listPayoutsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of payouts to return"},
		"starting_after": {"type": "string", "description": "Cursor: return results after this payout ID"},
		"status": {"type": "string", "description": "Filter by status: pending, in_transit, paid, failed"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var retrievePayoutInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"payout_id": {"type": "string", "description": "Payout ID, e.g. po_123"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["payout_id"],
	"additionalProperties": false
}`)

var getRecentPayoutsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"days": {"type": "integer", "description": "Look-back window in days (default: 7)"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var listRefundsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of refunds to return"},
		"starting_after": {"type": "string", "description": "Cursor: return results after this refund ID"},
		"payment": {"type": "string", "description": "Filter to refunds of one payment ID"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var retrieveRefundInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"refund_id": {"type": "string", "description": "Refund ID, e.g. re_123"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["refund_id"],
	"additionalProperties": false
}`)

var createRefundInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"payment": {"type": "string", "description": "Payment ID to refund"},
		"amount": {"type": "integer", "description": "Amount to refund in minor units (default: full amount)"},
		"reason": {"type": "string", "description": "Refund reason: duplicate, fraudulent, requested_by_customer"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["payment"],
	"additionalProperties": false
}`)

var listCustomersInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of customers to return"},
		"starting_after": {"type": "string", "description": "Cursor: return results after this customer ID"},
		"email": {"type": "string", "description": "Filter by exact email address"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var retrieveCustomerInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"customer_id": {"type": "string", "description": "Customer ID, e.g. cus_123"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["customer_id"],
	"additionalProperties": false
}`)

var createCustomerInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"email": {"type": "string", "description": "Customer email address"},
		"name": {"type": "string", "description": "Customer full name"},
		"description": {"type": "string", "description": "Free-text description"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["email"],
	"additionalProperties": false
}`)

var listDisputesInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"limit": {"type": "integer", "description": "Maximum number of disputes to return"},
		"starting_after": {"type": "string", "description": "Cursor: return results after this dispute ID"},
		"status": {"type": "string", "description": "Filter by status: needs_response, under_review, won, lost"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var retrieveDisputeInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"dispute_id": {"type": "string", "description": "Dispute ID, e.g. dp_123"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["dispute_id"],
	"additionalProperties": false
}`)

var retrieveBalanceInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"additionalProperties": false
}`)

var searchTransactionsInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"query": {"type": "string", "description": "Free-text search query"},
		"limit": {"type": "integer", "description": "Maximum number of transactions to return"},
		"account": {"type": "string", "description": "Configured account to use (default: first account)"}
	},
	"required": ["query"],
	"additionalProperties": false
}`)
