package easybill_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/easybill/easybill"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_RequiresLastOrCompanyName(t *testing.T) {
	t.Parallel()

	_, err := easybill.CreateCustomerParams{}.Request()

	require.ErrorIs(t, err, easybill.ErrInvalidParams)
}

func TestCreateCustomer_TypeGoesToQuery(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.CreateCustomerParams](t, `{
		"company_name": "Muster GmbH",
		"emails": ["info@muster.example"],
		"cash_discount": 2.5,
		"type": "SUPPLIER"
	}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/customers", req.Path)
	require.Equal(t, map[string]any{"type": "SUPPLIER"}, req.Query)
	require.JSONEq(t, `{
		"company_name": "Muster GmbH",
		"emails": ["info@muster.example"],
		"cash_discount": 2.5
	}`, bodyJSON(t, req))
}

func TestUpdateCustomer_Path(t *testing.T) {
	t.Parallel()

	params := easybill.UpdateCustomerParams{
		CustomerFields: easybill.CustomerFields{City: "Berlin"},
		CustomerID:     12,
	}

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, http.MethodPut, req.Method)
	require.Equal(t, "/customers/12", req.Path)
	require.Nil(t, req.Query)
	require.JSONEq(t, `{"city": "Berlin"}`, bodyJSON(t, req))
}

func TestCustomerLookups(t *testing.T) {
	t.Parallel()

	get, err := easybill.GetCustomerParams{CustomerID: 4}.Request()
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, get.Method)
	require.Equal(t, "/customers/4", get.Path)

	del, err := easybill.DeleteCustomerParams{CustomerID: 4}.Request()
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, del.Method)
	require.Equal(t, "/customers/4", del.Path)
}

func TestGetCustomerList_Filters(t *testing.T) {
	t.Parallel()

	params := decodeParams[easybill.GetCustomerListParams](t, `{"page": 3, "country": "DE", "group_id": "1,2"}`)

	req, err := params.Request()

	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"page":     3,
		"limit":    100,
		"country":  "DE",
		"group_id": "1,2",
	}, req.Query)
}

func TestCreateCustomer_ValidatesFields(t *testing.T) {
	t.Parallel()

	client := easybill.New("key")

	tests := []struct {
		name   string
		params easybill.CreateCustomerParams
	}{
		{"iban", easybill.CreateCustomerParams{
			CustomerFields: easybill.CustomerFields{LastName: "Muster", BankIBAN: "DE00370400440532013000"},
		}},
		{"email", easybill.CreateCustomerParams{
			CustomerFields: easybill.CustomerFields{LastName: "Muster", Emails: []string{"not-an-email"}},
		}},
		{"country", easybill.CreateCustomerParams{
			CustomerFields: easybill.CustomerFields{LastName: "Muster", Country: "DEU"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.Prepare(tt.params)

			require.ErrorIs(t, err, easybill.ErrInvalidParams)
		})
	}
}
