package htmx

// SwapStrategy defines how htmx swaps content into the target element.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapDelete    SwapStrategy = "delete"
	SwapNone      SwapStrategy = "none"
)
