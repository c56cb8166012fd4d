package modelconfigs

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/modelrun/cmds"
	"github.com/reusee/modelrun/configs"
)

// Delimiter separates columns of exported tables.
type Delimiter rune

var _ configs.Configurable = Delimiter(0)

func (d Delimiter) ConfigExpr() string {
	return "delimiter"
}

const DefaultDelimiter Delimiter = '\t'

// ParseDelimiter accepts a single character, "tab", `\t` or "comma".
func ParseDelimiter(str string) (Delimiter, error) {
	switch str {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	}
	if utf8.RuneCountInString(str) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", str)
	}
	r, _ := utf8.DecodeRuneInString(str)
	return Delimiter(r), nil
}

var delimiterFlag Delimiter

func init() {
	cmds.Define("-delim", cmds.Func(func(str string) error {
		d, err := ParseDelimiter(str)
		if err != nil {
			return err
		}
		delimiterFlag = d
		return nil
	}).Desc("export delimiter: a single character, tab or comma").Args("value"))
	cmds.Define("-delim.", cmds.Func(func() {
		delimiterFlag = 0
	}).Desc("unset -delim"))
}

func (Module) Delimiter(
	loader configs.Loader,
) Delimiter {
	if delimiterFlag != 0 {
		return delimiterFlag
	}
	str := configs.First[string](loader, "delimiter")
	if str == "" {
		return DefaultDelimiter
	}
	d, err := ParseDelimiter(str)
	if err != nil {
		panic(fmt.Errorf("config delimiter: %w", err))
	}
	return d
}
