package constants

// Nama koleksi (doctype) yang dikenal RecordStore.
const (
	DocTypeLead  = "CRM Lead"
	DocTypeSales = "CRM Sales"
	DocTypeUser  = "User"
)

// Aksi permission
const (
	ActionRead  = "read"
	ActionWrite = "write"
)
