package easybill_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/easybill/easybill"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/stretchr/testify/require"
)

func decodeParams[T any](t *testing.T, raw string) T {
	t.Helper()

	var params T
	require.NoError(t, json.Unmarshal([]byte(raw), &params))

	return params
}

func bodyJSON(t *testing.T, req httpclient.Request) string {
	t.Helper()

	raw, err := json.Marshal(req.Body)
	require.NoError(t, err)

	return string(raw)
}

func TestCreateDocument_ReshapesCollections(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.CreateDocumentParams](t, `{
		"customer_id": 5,
		"title": "Rechnung",
		"document_date": "2026-10-19T00:00:00.000Z",
		"file_format_config_type": "zugferd2_2",
		"fixedcol_recurring_options": {"recurring_option": {}},
		"itemsFixedCol": {"itemsValues": [
			{"item": {"description": "Beratung", "quantity": 2, "single_price_net": 10000}},
			{"description": "Reise", "quantity": 1}
		]}
	}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/documents", req.Path)
	require.JSONEq(t, `{
		"customer_id": 5,
		"title": "Rechnung",
		"document_date": "2026-10-19",
		"file_format_config": [{"type": "zugferd2_2"}],
		"items": [
			{"description": "Beratung", "quantity": 2, "single_price_net": 10000},
			{"description": "Reise", "quantity": 1}
		]
	}`, bodyJSON(t, req))
}

func TestCreateDocument_KeepsRecurringOptions(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.CreateDocumentParams](t, `{
		"fixedcol_recurring_options": {"recurring_option": {"frequency": "MONTHLY", "interval": 1, "is_paid": false}}
	}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.JSONEq(t, `{
		"recurring_options": {"frequency": "MONTHLY", "interval": 1, "is_paid": false}
	}`, bodyJSON(t, req))
}

func TestCreateDocument_OmitsEmptyItems(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.CreateDocumentParams](t, `{"itemsFixedCol": {"itemsValues": []}}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.JSONEq(t, `{}`, bodyJSON(t, req))
}

func TestCreateDocument_TruncatesServiceDates(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.CreateDocumentParams](t, `{
		"service_date": {"type": "SERVICE", "date_from": "2026-10-01T00:00:00Z", "date_to": "2026-10-31T23:59:59Z"}
	}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.JSONEq(t, `{
		"service_date": {"type": "SERVICE", "date_from": "2026-10-01", "date_to": "2026-10-31"}
	}`, bodyJSON(t, req))
}

func TestUpdateDocument_PathQueryAndBody(t *testing.T) {
	t.Parallel()

	refresh := true
	params := easybill.UpdateDocumentParams{
		DocumentID: 7,
		DocumentInput: easybill.DocumentInput{
			DocumentFields: easybill.DocumentFields{Title: "Angebot"},
		},
		RefreshCustomerData: &refresh,
		ReasonForChange:     "typo",
	}

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, http.MethodPut, req.Method)
	require.Equal(t, "/documents/7", req.Path)
	require.Equal(t, map[string]any{"refresh_customer_data": true, "reason_for_change": "typo"}, req.Query)
	require.JSONEq(t, `{"title": "Angebot"}`, bodyJSON(t, req))
}

func TestUpdateDocument_OmitsEmptyReason(t *testing.T) {
	t.Parallel()

	req, err := easybill.UpdateDocumentParams{DocumentID: 7}.Request()

	require.NoError(t, err)
	require.Empty(t, req.Query)
}

func TestGetDocList_MergesPagingAndFilters(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.GetDocListParams](t, `{"limit": 50, "status": "DONE", "is_draft": "0"}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, "/documents", req.Path)
	require.Equal(t, map[string]any{
		"limit":    50,
		"page":     1,
		"status":   "DONE",
		"is_draft": "0",
	}, req.Query)
}

func TestDocumentActions(t *testing.T) {
	t.Parallel()

	id := easybill.DocumentIDParams{DocumentID: 3}
	useTemplate := false
	offset, limit := 1, 2

	tests := []struct {
		name   string
		params easybill.Params
		method string
		path   string
		query  map[string]any
	}{
		{"get", easybill.GetDocumentParams{DocumentIDParams: id}, http.MethodGet, "/documents/3", nil},
		{"delete", easybill.DeleteDocumentParams{DocumentIDParams: id}, http.MethodDelete, "/documents/3", nil},
		{
			"complete", easybill.CompleteDocumentParams{DocumentIDParams: id, ReasonForChange: "final"},
			http.MethodPut, "/documents/3/done", map[string]any{"reason_for_change": "final"},
		},
		{
			"complete without reason", easybill.CompleteDocumentParams{DocumentIDParams: id},
			http.MethodPut, "/documents/3/done", nil,
		},
		{
			"cancel", easybill.CancelDocumentParams{DocumentIDParams: id, UseTextFromTemplate: &useTemplate},
			http.MethodPost, "/documents/3/cancel", map[string]any{"use_text_from_template": false},
		},
		{"pdf", easybill.GetPDFParams{DocumentIDParams: id}, http.MethodGet, "/documents/3/pdf", nil},
		{
			"jpeg", easybill.DownloadJPEGParams{DocumentIDParams: id, Offset: &offset, Limit: &limit},
			http.MethodGet, "/documents/3/jpg", map[string]any{"offset": 1, "limit": 2},
		},
		{
			"convert", easybill.ConvertDocumentParams{DocumentIDParams: id, Type: "INVOICE", PDFTemplate: "DE"},
			http.MethodPost, "/documents/3/INVOICE", map[string]any{"pdf_template": "DE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := tt.params.Request()

			require.NoError(t, err)
			require.Equal(t, tt.method, req.Method)
			require.Equal(t, tt.path, req.Path)

			if tt.query == nil {
				require.Empty(t, req.Query)
			} else {
				require.Equal(t, tt.query, req.Query)
			}
		})
	}
}

func TestSendDocument_PathAndBody(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.SendDocumentParams](t, `{
		"document_id": 9,
		"type": "email",
		"to": "kunde@example.com",
		"subject": "Ihre Rechnung",
		"date": "2026-10-19T10:00:00Z",
		"send_with_attachment": true
	}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/documents/9/send/email", req.Path)
	require.JSONEq(t, `{
		"to": "kunde@example.com",
		"subject": "Ihre Rechnung",
		"date": "2026-10-19",
		"send_with_attachment": true
	}`, bodyJSON(t, req))
}
