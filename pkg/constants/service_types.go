package constants

// CustomIDPrefix is the business prefix of every human-readable request id:
// GBB_SDA_MMYY_SLUG_NNN.
const CustomIDPrefix = "GBB_SDA"

// FallbackServiceSlug is used for service types missing from the slug table.
const FallbackServiceSlug = "OT"

const (
	ServiceInternet          = "Internet Service"
	ServiceLeaseLine         = "Lease line"
	ServiceDarkFibre         = "Dark Fibre"
	ServiceNetworkMonitoring = "Network Monitoring"
	ServiceOthersConnect     = "Others - Connectivity (Renewal, Upgrade, IT Device, IP Addresses, Consultation, Support etc)"
	ServiceCollocation       = "Collocation"
	ServiceCrossConnection   = "Cross Connection"
	ServiceCollocationRenew  = "Collocation & Cross-connect Renewal"
	ServiceECS               = "ECS"
	ServiceDisasterRecovery  = "Disaster Recovery"
	ServiceBackup            = "Backup Service"
	ServiceObjectStorage     = "Object Storage"
	ServiceEmail             = "Email Service"
	ServiceOthersCloud       = "Others - Cloud (Renewal, Upgrade of Cloud Resources, IP Address, Licenses etc)"
	ServiceEDMS              = "Document Management System - EDMS"
	ServiceTraining          = "Capacity Building - Training"
	ServiceNetworkSecurity   = "Network Security"
	ServiceSecurityRenewal   = "Security Renewal"
)

var ServiceTypes = []string{
	ServiceInternet,
	ServiceLeaseLine,
	ServiceDarkFibre,
	ServiceNetworkMonitoring,
	ServiceOthersConnect,
	ServiceCollocation,
	ServiceCrossConnection,
	ServiceCollocationRenew,
	ServiceECS,
	ServiceDisasterRecovery,
	ServiceBackup,
	ServiceObjectStorage,
	ServiceEmail,
	ServiceOthersCloud,
	ServiceEDMS,
	ServiceTraining,
	ServiceNetworkSecurity,
	ServiceSecurityRenewal,
}

var serviceSlugs = map[string]string{
	ServiceInternet:          "IS",
	ServiceLeaseLine:         "LL",
	ServiceDarkFibre:         "DF",
	ServiceNetworkMonitoring: "NM",
	ServiceOthersConnect:     "OC",
	ServiceCollocation:       "CS",
	ServiceCrossConnection:   "CC",
	ServiceCollocationRenew:  "CR",
	ServiceECS:               "EC",
	ServiceDisasterRecovery:  "DR",
	ServiceBackup:            "BS",
	ServiceObjectStorage:     "OS",
	ServiceEmail:             "ES",
	ServiceOthersCloud:       "OR",
	ServiceEDMS:              "DM",
	ServiceTraining:          "CB",
	ServiceNetworkSecurity:   "NS",
	ServiceSecurityRenewal:   "SR",
}

// ServiceSlug maps a service type to the fixed 2-letter code used in custom
// ids.
func ServiceSlug(serviceType string) string {
	if slug, ok := serviceSlugs[serviceType]; ok {
		return slug
	}
	return FallbackServiceSlug
}

func IsValidServiceType(serviceType string) bool {
	_, ok := serviceSlugs[serviceType]
	return ok
}

// Legacy project type labels, retained for backward compatibility with old
// records. New logic never branches on them, but monthly reports still group
// by them.
var ProjectTypes = []string{
	"Cloud Service",
	"Connectivity (New & Upgrade)",
	"Multiple Services",
	"Data Center Set Up",
	"Security",
	"Service Relocation",
	"Colocation",
	"IP Address",
	"Review",
	"Power System",
}
