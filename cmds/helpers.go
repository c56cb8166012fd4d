package cmds

// Var defines a flag taking one argument. name followed by a dot resets it.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Args("value"))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("unset "+name))
	return &value
}

// Switch defines a boolean flag. name prefixed by ! turns it off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))
	return &value
}

// Collect defines a flag that may be repeated, appending each argument.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc).Args("value"))
	return &value
}
