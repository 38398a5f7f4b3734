package domain

// ComponentSlots is the fixed number of storage slots each account component
// occupies on the execution substrate.
const ComponentSlots = 6

type StorageSlot struct {
	Index int
	Name  string
}

// ComponentLayout describes one account component: its storage schema and
// the procedures it exports to the ledger.
type ComponentLayout struct {
	Name       string
	Slots      []StorageSlot
	Procedures []string
}

// CompiledComponent is the deployable artifact produced by the compiler.
type CompiledComponent struct {
	Name     string
	Checksum string
}

// KycComponentLayout is the storage schema backing KycRecord.
func KycComponentLayout() ComponentLayout {
	return ComponentLayout{
		Name: "kyc",
		Slots: []StorageSlot{
			{Index: 0, Name: "status"},
			{Index: 1, Name: "data_hash"},
			{Index: 2, Name: "verified_at"},
			{Index: 3, Name: "expires_at"},
			{Index: 4, Name: "verifier"},
			{Index: 5, Name: "compliance_level"},
		},
		Procedures: []string{
			"verify_kyc_data",
			"get_kyc_status",
			"update_kyc_status",
			"verify_kyc_proof",
			"get_compliance_level",
			"update_compliance_level",
		},
	}
}

// AmlComponentLayout is the storage schema backing AmlRecord.
func AmlComponentLayout() ComponentLayout {
	return ComponentLayout{
		Name: "aml",
		Slots: []StorageSlot{
			{Index: 0, Name: "risk_level"},
			{Index: 1, Name: "risk_score"},
			{Index: 2, Name: "last_assessed_at"},
			{Index: 3, Name: "transaction_count"},
			{Index: 4, Name: "total_volume"},
			{Index: 5, Name: "suspicious_flags"},
		},
		Procedures: []string{
			"assess_aml_risk",
			"get_aml_status",
			"update_risk_score",
			"record_transaction",
			"get_transaction_stats",
			"check_suspicious_patterns",
		},
	}
}

// SanctionsComponentLayout is the storage schema backing SanctionsRecord.
func SanctionsComponentLayout() ComponentLayout {
	return ComponentLayout{
		Name: "sanctions",
		Slots: []StorageSlot{
			{Index: 0, Name: "status"},
			{Index: 1, Name: "last_screened_at"},
			{Index: 2, Name: "screening_hash"},
			{Index: 3, Name: "list_version"},
			{Index: 4, Name: "false_positive"},
			{Index: 5, Name: "manual_override"},
		},
		Procedures: []string{
			"screen_sanctions",
			"get_sanctions_status",
			"update_sanctions_status",
			"verify_screening_proof",
			"manual_override",
		},
	}
}
