package scaffold

// Message constants
const (
	MsgFetching            = "Fetching data from %s"
	MsgGitignoreCreated    = "Created .gitignore for JavaScript"
	MsgUnexpectedStatus    = "Unexpected status %d from %s, writing the response anyway"
	MsgFormatOnSaveCreated = "Created ESLint VS Code formatOnSave config file"
	MsgInvalidSelection    = "Invalid selection"
)
