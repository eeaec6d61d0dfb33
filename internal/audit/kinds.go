package audit

// KindConfig parameterizes the generic recorder per entity kind: which
// fields are tracked for diffing, which nested sub-fields get flattened to
// dotted keys, which change types the kind accepts, and where its history
// lives.
type KindConfig struct {
	Kind          EntityKind
	Table         string
	StatusField   string
	TrackedFields []string
	NestedFields  []string
	AllowedTypes  []ChangeType
}

// Allows reports whether the kind accepts the given change-type tag.
func (c KindConfig) Allows(ct ChangeType) bool {
	for _, t := range c.AllowedTypes {
		if t == ct {
			return true
		}
	}
	return false
}

var baseChangeTypes = []ChangeType{
	ChangeCreate,
	ChangeUpdate,
	ChangeUpdateStatus,
	ChangeDelete,
}

var kindConfigs = map[EntityKind]KindConfig{
	KindOrder: {
		Kind:        KindOrder,
		Table:       "order_changes",
		StatusField: "flowStatus",
		TrackedFields: []string{
			"cargoName", "cargoWeight", "flowStatus",
			"priceSales", "pricePurchase",
			"driverId", "vehicleNumber",
			"loadingAddress", "unloadingAddress",
		},
		NestedFields: []string{"metadata.lat", "metadata.lng"},
		AllowedTypes: []ChangeType{
			ChangeCreate,
			ChangeUpdate,
			ChangeUpdateStatus,
			ChangeUpdatePrice,
			ChangeUpdatePriceSales,
			ChangeUpdatePricePurchase,
			ChangeUpdateDispatch,
			ChangeCancelDispatch,
			ChangeCancel,
			ChangeDelete,
		},
	},
	KindCompany: {
		Kind:          KindCompany,
		Table:         "company_changes",
		StatusField:   "status",
		TrackedFields: []string{"name", "businessNumber", "companyType", "status", "phone", "representative"},
		AllowedTypes:  baseChangeTypes,
	},
	KindDriver: {
		Kind:          KindDriver,
		Table:         "driver_changes",
		StatusField:   "status",
		TrackedFields: []string{"name", "phone", "vehicleNumber", "companyId", "status"},
		AllowedTypes:  baseChangeTypes,
	},
	KindUser: {
		Kind:          KindUser,
		Table:         "user_changes",
		StatusField:   "status",
		TrackedFields: []string{"name", "email", "accessLevel", "role", "status"},
		AllowedTypes:  baseChangeTypes,
	},
	KindAddress: {
		Kind:          KindAddress,
		Table:         "address_changes",
		StatusField:   "status",
		TrackedFields: []string{"alias", "roadAddress", "detailAddress", "companyId"},
		NestedFields:  []string{"metadata.lat", "metadata.lng"},
		AllowedTypes:  baseChangeTypes,
	},
	KindWarning: {
		Kind:          KindWarning,
		Table:         "warning_changes",
		StatusField:   "status",
		TrackedFields: []string{"content", "severity", "sortOrder"},
		AllowedTypes:  baseChangeTypes,
	},
}

// ConfigFor returns the per-kind configuration.
func ConfigFor(kind EntityKind) (KindConfig, bool) {
	cfg, ok := kindConfigs[kind]
	return cfg, ok
}

// Kinds lists every configured entity kind.
func Kinds() []EntityKind {
	kinds := make([]EntityKind, 0, len(kindConfigs))
	for k := range kindConfigs {
		kinds = append(kinds, k)
	}
	return kinds
}
