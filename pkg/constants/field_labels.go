package constants

// Human-readable labels for activity log sentences, keyed by column name.
var fieldLabels = map[string]string{
	"status":                "Status",
	"customer_name":         "Customer Name",
	"description":           "Description",
	"project_type":          "Project Type",
	"service_type":          "Service Type",
	"boq_cost":              "BOQ Cost",
	"requester_name":        "BM Name",
	"department":            "Department",
	"date_request_received": "Date Request Received",
	"target_days":           "Target Days",
	"sent_out_date":         "Sent Out Date",
	"team_member_involved":  "Team Member Involved",
	"comment":               "Comment",
}

func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
