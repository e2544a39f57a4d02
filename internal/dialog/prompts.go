package dialog

// Recognized inputs at the action menu
const (
	ActionAddOperation = "Add operation"
	ActionFinalize     = "Finalize report"
)

const (
	promptStart          = "No report in progress. Send /start to begin a new shift report."
	greeting             = "Starting a new shift report."
	promptCrew           = "Enter the crew number:"
	promptWell           = "Enter the well / object:"
	promptField          = "Enter the field / location:"
	promptOpName         = "Enter the operation name:"
	promptOpStart        = "Enter the operation start time (HH:MM):"
	promptOpEnd          = "Enter the operation end time (HH:MM):"
	promptOpEquipment    = "Enter the equipment used:"
	promptOpRepresentati = "Enter the customer representative:"
	promptOpMaterials    = "Enter the materials used:"
	promptAction         = "Operation recorded. Add another operation or finalize the report."
	promptRetry          = "Something went wrong while saving. Please try again."
)

// actionKeyboard is the reply keyboard shown at the action menu
var actionKeyboard = [][]string{
	{ActionAddOperation},
	{ActionFinalize},
}
