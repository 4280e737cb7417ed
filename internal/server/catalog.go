package server

import "encoding/json"

// toolDef declares one upstream operation as an MCP tool: its name, the
// HTTP call it maps to, and which arguments travel as path, query, or body
// parameters. Handlers are pure parameter marshaling; response handling is
// uniform across all tools (request, then normalize).
type toolDef struct {
	Name        string
	Description string
	Method      string
	Path        string // may contain {param} placeholders
	PathParams  []string
	QueryParams []string
	BodyParams  []string
	InputSchema json.RawMessage
}

// catalog lists every upstream operation in registration order.
var catalog = []toolDef{
	{
		Name:        "list_payments",
		Description: "List payments, most recent first. Supports cursor pagination via starting_after.",
		Method:      "GET",
		Path:        "/v1/payments",
		QueryParams: []string{"limit", "starting_after", "status", "customer"},
		InputSchema: listPaymentsInputSchema,
	},
	{
		Name:        "retrieve_payment",
		Description: "Retrieve a single payment by its ID.",
		Method:      "GET",
		Path:        "/v1/payments/{payment_id}",
		PathParams:  []string{"payment_id"},
		InputSchema: retrievePaymentInputSchema,
	},
	{
		Name:        "create_payment",
		Description: "Create a payment. Requires amount (minor units) and currency.",
		Method:      "POST",
		Path:        "/v1/payments",
		BodyParams:  []string{"amount", "currency", "customer", "payment_method", "description"},
		InputSchema: createPaymentInputSchema,
	},
	{
		Name:        "cancel_payment",
		Description: "Cancel a payment that has not been captured yet.",
		Method:      "POST",
		Path:        "/v1/payments/{payment_id}/cancel",
		PathParams:  []string{"payment_id"},
		BodyParams:  []string{"reason"},
		InputSchema: cancelPaymentInputSchema,
	},
	{
		Name:        "list_payouts",
		Description: "List payouts, most recent first. Supports cursor pagination via starting_after.",
		Method:      "GET",
		Path:        "/v1/payouts",
		QueryParams: []string{"limit", "starting_after", "status"},
		InputSchema: listPayoutsInputSchema,
	},
	{
		Name:        "retrieve_payout",
		Description: "Retrieve a single payout by its ID.",
		Method:      "GET",
		Path:        "/v1/payouts/{payout_id}",
		PathParams:  []string{"payout_id"},
		InputSchema: retrievePayoutInputSchema,
	},
	{
		Name:        "get_recent_payouts",
		Description: "Get payouts initiated in the last N days (default 7).",
		Method:      "GET",
		Path:        "/v1/payouts/recent",
		QueryParams: []string{"days"},
		InputSchema: getRecentPayoutsInputSchema,
	},
	{
		Name:        "list_refunds",
		Description: "List refunds, optionally filtered to one payment.",
		Method:      "GET",
		Path:        "/v1/refunds",
		QueryParams: []string{"limit", "starting_after", "payment"},
		InputSchema: listRefundsInputSchema,
	},
	{
		Name:        "retrieve_refund",
		Description: "Retrieve a single refund by its ID.",
		Method:      "GET",
		Path:        "/v1/refunds/{refund_id}",
		PathParams:  []string{"refund_id"},
		InputSchema: retrieveRefundInputSchema,
	},
	{
		Name:        "create_refund",
		Description: "Refund a payment, fully or partially.",
		Method:      "POST",
		Path:        "/v1/refunds",
		BodyParams:  []string{"payment", "amount", "reason"},
		InputSchema: createRefundInputSchema,
	},
	{
		Name:        "list_customers",
		Description: "List customers, optionally filtered by email.",
		Method:      "GET",
		Path:        "/v1/customers",
		QueryParams: []string{"limit", "starting_after", "email"},
		InputSchema: listCustomersInputSchema,
	},
	{
		Name:        "retrieve_customer",
		Description: "Retrieve a single customer by its ID.",
		Method:      "GET",
		Path:        "/v1/customers/{customer_id}",
		PathParams:  []string{"customer_id"},
		InputSchema: retrieveCustomerInputSchema,
	},
	{
		Name:        "create_customer",
		Description: "Create a customer record.",
		Method:      "POST",
		Path:        "/v1/customers",
		BodyParams:  []string{"email", "name", "description"},
		InputSchema: createCustomerInputSchema,
	},
	{
		Name:        "list_disputes",
		Description: "List disputes, most recent first.",
		Method:      "GET",
		Path:        "/v1/disputes",
		QueryParams: []string{"limit", "starting_after", "status"},
		InputSchema: listDisputesInputSchema,
	},
	{
		Name:        "retrieve_dispute",
		Description: "Retrieve a single dispute by its ID.",
		Method:      "GET",
		Path:        "/v1/disputes/{dispute_id}",
		PathParams:  []string{"dispute_id"},
		InputSchema: retrieveDisputeInputSchema,
	},
	{
		Name:        "retrieve_balance",
		Description: "Retrieve the current account balance.",
		Method:      "GET",
		Path:        "/v1/balance",
		InputSchema: retrieveBalanceInputSchema,
	},
	{
		Name:        "search_transactions",
		Description: "Search balance transactions with a free-text query.",
		Method:      "GET",
		Path:        "/v1/transactions/search",
		QueryParams: []string{"query", "limit"},
		InputSchema: searchTransactionsInputSchema,
	},
}

// registry is an insertion-ordered mapping of tool name to definition.
type registry struct {
	order []string
	defs  map[string]toolDef
}

func newRegistry(defs []toolDef) *registry {
	r := &registry{defs: make(map[string]toolDef, len(defs))}
	for _, def := range defs {
		if _, exists := r.defs[def.Name]; !exists {
			r.order = append(r.order, def.Name)
		}
		r.defs[def.Name] = def
	}
	return r
}

func (r *registry) get(name string) (toolDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// names returns tool names in registration order.
func (r *registry) names() []string {
	return r.order
}
