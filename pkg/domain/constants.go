package domain

// Well-known triggers. Hosts raise these on objects in response to UI gestures.
const (
	// TriggerInit is raised once, right after an object's init has produced its view.
	TriggerInit = "init"
	// TriggerClose is raised when the host closes the tab showing an object.
	TriggerClose = "close"
	// TriggerFocus is raised when the host focuses an existing tab instead of opening a new one.
	TriggerFocus = "focus"
)

// DirectiveDestroy is the lifecycle directive that moves an object from live to destroyed.
// Behaviors listening for it still run before the transition happens.
const DirectiveDestroy = "destroy"
