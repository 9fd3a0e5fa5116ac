package worldfile

type topLevelManifest struct {
	Format string   `toml:"format"`
	Type   string   `toml:"type"`
	Files  []string `toml:"files"`
}

// topLevelWorldData is every key in a complete GQW DATA file.
type topLevelWorldData struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
	World  world  `toml:"world"`
	Rooms  []room `toml:"room"`
	Items  []item `toml:"item"`
}

type world struct {
	Start string `toml:"start"`
}

type room struct {
	Label       string `toml:"label"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Sound       string `toml:"sound"`
	Exits       []exit `toml:"exits"`
}

type exit struct {
	Direction string `toml:"direction"`
	Dest      string `toml:"dest"`
}

type soundChange struct {
	Room string `toml:"room"`
	File string `toml:"file"`
}

type item struct {
	Label       string       `toml:"label"`
	Keyword     string       `toml:"keyword"`
	Name        string       `toml:"name"`
	Description string       `toml:"description"`
	Getable     bool         `toml:"getable"`
	Invisible   bool         `toml:"invisible"`
	Start       string       `toml:"start"`
	Actions     []itemAction `toml:"action"`
}

type itemAction struct {
	Verb string `toml:"verb"`

	// UseInRoom is either a string ("*" or a room label) or an array of room
	// labels.
	UseInRoom interface{} `toml:"use_in_room"`

	RequiresItem            string        `toml:"requires_item"`
	RequiresItemMessage     string        `toml:"requires_item_message"`
	OnceOnly                bool          `toml:"once_only"`
	AlreadyPerformedMessage string        `toml:"already_performed_message"`
	Message                 string        `toml:"message"`
	NewDescription          string        `toml:"new_description"`
	NewName                 string        `toml:"new_name"`
	ConsumeItem             bool          `toml:"consume_item"`
	RevealsItem             string        `toml:"reveals_item"`
	RevealsItemLocation     string        `toml:"reveals_item_location"`
	LeadsTo                 string        `toml:"leads_to"`
	AddExit                 *exit         `toml:"add_exit"`
	AddSound                []soundChange `toml:"add_sound"`
}
