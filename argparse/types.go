package argparse

// ArgType is the declared type of a registered option.
type ArgType int

const (
	Int ArgType = iota
	Double
	String
	Bool
	IntList
	DoubleList
	StringList
)

var argTypeNames = [...]string{
	Int:        "INT",
	Double:     "DOUBLE",
	String:     "STRING",
	Bool:       "BOOL",
	IntList:    "INT_LIST",
	DoubleList: "DOUBLE_LIST",
	StringList: "STRING_LIST",
}

func (t ArgType) String() string {
	if !t.valid() {
		return "UNKNOWN"
	}
	return argTypeNames[t]
}

// IsList reports whether t collects multiple values.
func (t ArgType) IsList() bool { return t >= IntList && t <= StringList }

func (t ArgType) valid() bool { return t >= Int && t <= StringList }

// placeholder is the value hint shown in help output. Booleans take none.
func (t ArgType) placeholder() string {
	switch {
	case t.IsList():
		return "VALUE1 VALUE2 ..."
	case t == Bool || !t.valid():
		return ""
	}
	return "VALUE"
}
