package recipe

// User-facing texts.
const (
	MsgPrompt     = "Please enter what you'd like to eat!"
	MsgLoading    = "Generating your recipe..."
	MsgSuccess    = "Recipe generated successfully!"
	MsgFallback   = "Recipe generated successfully, but no specific recipe text was returned from the webhook."
	MsgErrorToast = "Failed to generate recipe. Please check your connection or try again."
	MsgFailure    = "Failed to generate recipe. Please check your connection or try again later."
	MsgCopied     = "Recipe copied to clipboard!"
	MsgCopyFailed = "Failed to copy recipe."
)
