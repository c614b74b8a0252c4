package entity

// SlotCategory names one attachment document category on a Machine or WorkLog.
// Files for a category are numbered 1..N where N is the stored slot counter;
// a counter of 0 means no files have been uploaded.
type SlotCategory string

// Machine attachment categories.
const (
	SlotPolicy        SlotCategory = "policy"        // wall-mounted operating policy
	SlotRegistration  SlotCategory = "registration"  // filing registration form
	SlotOperationCert SlotCategory = "operationCert" // operation certificate
	SlotLaborCert     SlotCategory = "laborCert"     // operator labor certificate
	SlotManual        SlotCategory = "manual"
	SlotInstruction   SlotCategory = "instruction" // work instruction booklet
	SlotInspection    SlotCategory = "inspection"  // acceptance inspection material
	SlotGasConfig     SlotCategory = "gasConfig"   // reference gas configuration
)

// WorkLog attachment categories.
const (
	SlotInstallRecord   SlotCategory = "installRecord"
	SlotDailyInspection SlotCategory = "dailyInspection"
	SlotCalibration     SlotCategory = "calibration"
	SlotVerification    SlotCategory = "verification"
	SlotConsumableSwap  SlotCategory = "consumableSwap"
	SlotGasSwap         SlotCategory = "gasSwap"
	SlotRepairRecord    SlotCategory = "repairRecord"
)

// MachineSlotCategories is the full set of categories valid on a Machine.
var MachineSlotCategories = []SlotCategory{
	SlotPolicy,
	SlotRegistration,
	SlotOperationCert,
	SlotLaborCert,
	SlotManual,
	SlotInstruction,
	SlotInspection,
	SlotGasConfig,
}

// WorkLogSlotCategories is the full set of categories valid on a WorkLog.
var WorkLogSlotCategories = []SlotCategory{
	SlotInstallRecord,
	SlotDailyInspection,
	SlotCalibration,
	SlotVerification,
	SlotConsumableSwap,
	SlotGasSwap,
	SlotRepairRecord,
}

// SlotCounts maps each attachment category to the number of uploaded files.
type SlotCounts map[SlotCategory]int

// Get returns the counter for a category, defaulting to 0.
func (s SlotCounts) Get(category SlotCategory) int {
	if s == nil {
		return 0
	}

	return s[category]
}

// Set stores the counter for a category. It does not touch the filesystem.
func (s SlotCounts) Set(category SlotCategory, n int) {
	s[category] = n
}

// ValidSlotCategory reports whether category belongs to the given set.
func ValidSlotCategory(category SlotCategory, set []SlotCategory) bool {
	for _, c := range set {
		if c == category {
			return true
		}
	}

	return false
}
