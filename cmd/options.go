package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"itemmeta configuration YAML/JSON path"`

	Encode   *EncodeCmd   `command:"encode"   description:"Serialize attributes from a YAML/JSON mapping"`
	Decode   *DecodeCmd   `command:"decode"   description:"Print the attributes of serialized metadata"`
	Get      *GetCmd      `command:"get"      description:"Print one attribute of serialized metadata"`
	Set      *SetCmd      `command:"set"      description:"Set one attribute and re-serialize"`
	ToolCaps *ToolCapsCmd `command:"toolcaps" description:"Show, set or clear the tool capability override"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "encode":
		o.Encode = &EncodeCmd{}
	case "decode":
		o.Decode = &DecodeCmd{}
	case "get":
		o.Get = &GetCmd{}
	case "set":
		o.Set = &SetCmd{}
	case "toolcaps":
		o.ToolCaps = &ToolCapsCmd{}
	}
}
