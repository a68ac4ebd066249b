package model

type ListColumn struct {
	Label   string `json:"label"`
	Type    string `json:"type"`
	Key     string `json:"key"`
	Options string `json:"options,omitempty"`
	Width   string `json:"width"`
}

type ListViewData struct {
	Columns []ListColumn `json:"columns"`
	Rows    []string     `json:"rows"`
}

// DefaultListData: konfigurasi kolom list view CRM Sales untuk frontend.
// Selalu mengembalikan salinan baru.
func DefaultListData() ListViewData {
	return ListViewData{
		Columns: []ListColumn{
			{Label: "Name", Type: "Data", Key: "nama", Width: "12rem"},
			{Label: "User ID", Type: "Link", Key: "user_id", Options: "User", Width: "12rem"},
			{Label: "Cabang", Type: "Data", Key: "cabang", Width: "12rem"},
			{Label: "Pincab", Type: "Link", Key: "pincab", Options: "CRM Sales", Width: "12rem"},
			{Label: "Last Modified", Type: "Datetime", Key: "modified", Width: "8rem"},
		},
		Rows: []string{
			"name",
			"nama",
			"user_id",
			"cabang",
			"pincab",
			"modified",
		},
	}
}
