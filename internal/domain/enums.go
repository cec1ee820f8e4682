package domain

// ItemField names a semantic line-item column a pattern can populate.
type ItemField string

const (
	FieldCode            ItemField = "code"
	FieldDescription     ItemField = "description"
	FieldQuantity        ItemField = "quantity"
	FieldUnit            ItemField = "unit"
	FieldUnitPrice       ItemField = "unit_price"
	FieldDiscountPercent ItemField = "discount_percent"
	FieldNetUnitPrice    ItemField = "net_unit_price"
	FieldTotalPrice      ItemField = "total_price"
)

// NumericItemFields lists the fields parsed with the fixed decimal-point
// convention. Everything else is taken verbatim from the capture group.
var NumericItemFields = map[ItemField]bool{
	FieldQuantity:        true,
	FieldUnit:            true,
	FieldUnitPrice:       true,
	FieldDiscountPercent: true,
	FieldNetUnitPrice:    true,
	FieldTotalPrice:      true,
}

// ValidationSeverity classifies a rule violation.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// MetadataField names a header field a profile can extract.
type MetadataField string

const (
	MetadataInvoiceNumber MetadataField = "invoice_number"
	MetadataDate          MetadataField = "date"
	MetadataTotalAmount   MetadataField = "total_amount"
)
