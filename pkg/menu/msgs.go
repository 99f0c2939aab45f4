package menu

// Message constants
const (
	MsgChooseCommand     = "Choose a Valk command"
	MsgChooseKeybindings = "Choose VS Code key bindings"
	MsgChooseConfigFile  = "Choose a file to generate"
	MsgInvalidSelection  = "Invalid selection"
)
