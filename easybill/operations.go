package easybill

import (
	"fmt"
	"slices"
)

const (
	ResourceDocument        = "document"
	ResourceCustomer        = "customer"
	ResourceCustomerGroup   = "customerGroup"
	ResourceDiscount        = "discount"
	ResourceDocumentPayment = "documentPayment"
	ResourceSEPAPayment     = "sepaPayment"
)

// Operation describes one API call. NewParams returns a fresh, zero valued
// parameter object that callers fill, usually by decoding JSON into it.
type Operation struct {
	Resource  string
	Name      string
	Action    string
	NewParams func() Params
}

//nolint:gochecknoglobals
var operations = []Operation{
	{ResourceDocument, "createDocument", "Create document", func() Params { return &CreateDocumentParams{} }},
	{ResourceDocument, "updateDocument", "Update document", func() Params { return &UpdateDocumentParams{} }},
	{ResourceDocument, "getDocList", "Fetch documents list", func() Params { return &GetDocListParams{} }},
	{ResourceDocument, "getDocument", "Fetch document", func() Params { return &GetDocumentParams{} }},
	{ResourceDocument, "deleteDocument", "Delete document", func() Params { return &DeleteDocumentParams{} }},
	{ResourceDocument, "completeDocument", "Complete document", func() Params { return &CompleteDocumentParams{} }},
	{ResourceDocument, "cancelDocument", "Cancel document", func() Params { return &CancelDocumentParams{} }},
	{ResourceDocument, "sendDocument", "Send document", func() Params { return &SendDocumentParams{} }},
	{ResourceDocument, "getPdf", "Fetch pdf document", func() Params { return &GetPDFParams{} }},
	{ResourceDocument, "downloadJpeg", "Download document as JPEG", func() Params { return &DownloadJPEGParams{} }},
	{ResourceDocument, "convertDocument", "Convert document", func() Params { return &ConvertDocumentParams{} }},

	{ResourceCustomer, "createCustomer", "Create customer", func() Params { return &CreateCustomerParams{} }},
	{ResourceCustomer, "updateCustomer", "Update customer", func() Params { return &UpdateCustomerParams{} }},
	{ResourceCustomer, "getCustomer", "Fetch customer", func() Params { return &GetCustomerParams{} }},
	{ResourceCustomer, "deleteCustomer", "Delete customer", func() Params { return &DeleteCustomerParams{} }},
	{ResourceCustomer, "getCustomerList", "Fetch customer list", func() Params { return &GetCustomerListParams{} }},

	{ResourceCustomerGroup, "getCustomerGroups", "Fetch customer groups", func() Params {
		return &GetCustomerGroupsParams{}
	}},
	{ResourceCustomerGroup, "createCustomerGroup", "Create customer group", func() Params {
		return &CreateCustomerGroupParams{}
	}},
	{ResourceCustomerGroup, "getCustomerGroup", "Fetch customer group", func() Params {
		return &GetCustomerGroupParams{}
	}},
	{ResourceCustomerGroup, "updateCustomerGroup", "Update customer group", func() Params {
		return &UpdateCustomerGroupParams{}
	}},
	{ResourceCustomerGroup, "deleteCustomerGroup", "Delete customer group", func() Params {
		return &DeleteCustomerGroupParams{}
	}},

	{ResourceDiscount, "getDiscountsPosition", "Fetch position discounts", func() Params {
		return &GetDiscountsParams{Target: DiscountPosition}
	}},
	{ResourceDiscount, "createDiscountPosition", "Create position discount", func() Params {
		return &CreateDiscountParams{Target: DiscountPosition}
	}},
	{ResourceDiscount, "getDiscountPosition", "Fetch position discount", func() Params {
		return &GetDiscountParams{Target: DiscountPosition}
	}},
	{ResourceDiscount, "updateDiscountPosition", "Update position discount", func() Params {
		return &UpdateDiscountParams{Target: DiscountPosition}
	}},
	{ResourceDiscount, "deleteDiscountPosition", "Delete position discount", func() Params {
		return &DeleteDiscountParams{Target: DiscountPosition}
	}},
	{ResourceDiscount, "getDiscountsPositionGroup", "Fetch position group discounts", func() Params {
		return &GetDiscountsParams{Target: DiscountPositionGroup}
	}},
	{ResourceDiscount, "createDiscountPositionGroup", "Create position group discount", func() Params {
		return &CreateDiscountParams{Target: DiscountPositionGroup}
	}},
	{ResourceDiscount, "getDiscountPositionGroup", "Fetch position group discount", func() Params {
		return &GetDiscountParams{Target: DiscountPositionGroup}
	}},
	{ResourceDiscount, "updateDiscountPositionGroup", "Update position group discount", func() Params {
		return &UpdateDiscountParams{Target: DiscountPositionGroup}
	}},
	{ResourceDiscount, "deleteDiscountPositionGroup", "Delete position group discount", func() Params {
		return &DeleteDiscountParams{Target: DiscountPositionGroup}
	}},

	{ResourceDocumentPayment, "getDocumentPayments", "Fetch document payments", func() Params {
		return &GetDocumentPaymentsParams{}
	}},
	{ResourceDocumentPayment, "createDocumentPayment", "Create document payment", func() Params {
		return &CreateDocumentPaymentParams{}
	}},
	{ResourceDocumentPayment, "getDocumentPayment", "Fetch document payment", func() Params {
		return &GetDocumentPaymentParams{}
	}},
	{ResourceDocumentPayment, "deleteDocumentPayment", "Delete document payment", func() Params {
		return &DeleteDocumentPaymentParams{}
	}},

	{ResourceSEPAPayment, "getSepaPayments", "Fetch SEPA payments", func() Params { return &GetSEPAPaymentsParams{} }},
	{ResourceSEPAPayment, "createSepaPayment", "Create SEPA payment", func() Params { return &CreateSEPAPaymentParams{} }},
	{ResourceSEPAPayment, "getSepaPayment", "Fetch SEPA payment", func() Params { return &GetSEPAPaymentParams{} }},
	{ResourceSEPAPayment, "updateSepaPayment", "Update SEPA payment", func() Params { return &UpdateSEPAPaymentParams{} }},
	{ResourceSEPAPayment, "deleteSepaPayment", "Delete SEPA payment", func() Params { return &DeleteSEPAPaymentParams{} }},
}

// Operations returns every registered operation in registration order.
func Operations() []Operation {
	return slices.Clone(operations)
}

// Resources returns the resource names in registration order.
func Resources() []string {
	var resources []string

	for _, op := range operations {
		if !slices.Contains(resources, op.Resource) {
			resources = append(resources, op.Resource)
		}
	}

	return resources
}

func Lookup(resource, name string) (Operation, error) {
	for _, op := range operations {
		if op.Resource == resource && op.Name == name {
			return op, nil
		}
	}

	return Operation{}, fmt.Errorf("%w: %s/%s", ErrUnknownOperation, resource, name)
}
